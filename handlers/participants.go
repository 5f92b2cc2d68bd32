package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type createParticipantRequest struct {
	Name string `json:"name"`
}

// CreateParticipant registers a participant by name, returning the existing
// row when the name is already taken.
func (h *Handler) CreateParticipant(c echo.Context) error {
	var req createParticipantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	ctx := c.Request().Context()
	participant, err := h.store.ParticipantByName(ctx, name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if participant == nil {
		participant, err = h.store.CreateParticipant(ctx, name)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, participant)
}

// GetParticipant looks a participant up by name.
func (h *Handler) GetParticipant(c echo.Context) error {
	participant, err := h.store.ParticipantByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if participant == nil {
		return echo.NewHTTPError(http.StatusNotFound, "participant not found")
	}

	return c.JSON(http.StatusOK, participant)
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jwillison/gbupool/models"
)

// Teams returns the roster slice for one tier.
func (h *Handler) Teams(c echo.Context) error {
	tier := models.Tier(c.Param("tier"))
	if !tier.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "tier must be good, bad, or ugly")
	}

	teams, err := h.store.TeamsByTier(c.Request().Context(), tier)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, teams)
}

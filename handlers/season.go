package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CurrentSeason returns the active season, 404 before one exists.
func (h *Handler) CurrentSeason(c echo.Context) error {
	season, err := h.store.CurrentSeason(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}

	return c.JSON(http.StatusOK, season)
}

type picksStatusResponse struct {
	PicksRevealed bool      `json:"picksRevealed"`
	FirstGameDate time.Time `json:"firstGameDate"`
	Message       string    `json:"message"`
}

// PicksStatus tells the frontend whether picks are visible yet.
func (h *Handler) PicksStatus(c echo.Context) error {
	season, err := h.store.CurrentSeason(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}

	msg := "Picks will be revealed after the first game kicks off"
	if season.PicksRevealed {
		msg = "Picks are revealed!"
	}
	return c.JSON(http.StatusOK, picksStatusResponse{
		PicksRevealed: season.PicksRevealed,
		FirstGameDate: season.FirstGameDate,
		Message:       msg,
	})
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UpdateGames runs one refresh cycle on demand.
func (h *Handler) UpdateGames(c echo.Context) error {
	stats, err := h.updater.RefreshSeason(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

// FixScores rebuilds the season's standings and scores from the game log.
func (h *Handler) FixScores(c echo.Context) error {
	stats, err := h.updater.RepairSeason(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

// LockPicks freezes picks for the current season.
func (h *Handler) LockPicks(c echo.Context) error {
	return h.setSeasonFlag(c, func(seasonID int64) error {
		return h.store.SetPicksLocked(c.Request().Context(), seasonID, true)
	}, "picks locked")
}

// RevealPicks makes everyone's picks visible on the leaderboard.
func (h *Handler) RevealPicks(c echo.Context) error {
	return h.setSeasonFlag(c, func(seasonID int64) error {
		return h.store.SetPicksRevealed(c.Request().Context(), seasonID, true)
	}, "picks revealed")
}

// HidePicks hides picks again (used while testing reveal day).
func (h *Handler) HidePicks(c echo.Context) error {
	return h.setSeasonFlag(c, func(seasonID int64) error {
		return h.store.SetPicksRevealed(c.Request().Context(), seasonID, false)
	}, "picks hidden")
}

func (h *Handler) setSeasonFlag(c echo.Context, apply func(seasonID int64) error, message string) error {
	season, err := h.store.CurrentSeason(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}

	if err := apply(season.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// AdvanceWeek bumps the current season's week counter.
func (h *Handler) AdvanceWeek(c echo.Context) error {
	ctx := c.Request().Context()
	season, err := h.store.CurrentSeason(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}

	week, err := h.store.AdvanceWeek(ctx, season.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{"currentWeek": week})
}

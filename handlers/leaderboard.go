package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jwillison/gbupool/models"
)

type leaderboardResponse struct {
	Leaderboard   []models.LeaderboardRow `json:"leaderboard"`
	PicksRevealed bool                    `json:"picksRevealed"`
	Message       string                  `json:"message,omitempty"`
}

// Leaderboard returns every participant's score for the current season.
// Picked team names stay hidden until the season reveals picks.
func (h *Handler) Leaderboard(c echo.Context) error {
	ctx := c.Request().Context()
	season, err := h.store.CurrentSeason(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}

	rows, err := h.store.Leaderboard(ctx, season.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := leaderboardResponse{
		Leaderboard:   rows,
		PicksRevealed: season.PicksRevealed,
	}
	if !season.PicksRevealed {
		for i := range resp.Leaderboard {
			resp.Leaderboard[i].GoodTeam = ""
			resp.Leaderboard[i].BadTeam = ""
			resp.Leaderboard[i].UglyTeam1 = ""
			resp.Leaderboard[i].UglyTeam2 = ""
			resp.Leaderboard[i].UglyTeam3 = ""
		}
		resp.Message = "Team picks will be revealed after the first game starts!"
	}

	return c.JSON(http.StatusOK, resp)
}

// Standings returns the current season's team records.
func (h *Handler) Standings(c echo.Context) error {
	ctx := c.Request().Context()
	season, err := h.store.CurrentSeason(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}

	rows, err := h.store.SeasonStandings(ctx, season.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

// Games returns the current season's games, defaulting to the current week.
func (h *Handler) Games(c echo.Context) error {
	ctx := c.Request().Context()
	season, err := h.store.CurrentSeason(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}

	week := season.CurrentWeek
	if w := c.QueryParam("week"); w != "" {
		week, err = strconv.Atoi(w)
		if err != nil || week < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid week param")
		}
	}

	games, err := h.store.GamesForWeek(ctx, season.ID, week)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, games)
}

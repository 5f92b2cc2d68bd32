package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jwillison/gbupool/engine"
	"github.com/jwillison/gbupool/models"
)

type savePicksRequest struct {
	ParticipantID int64   `json:"participantID"`
	GoodTeam      int64   `json:"goodTeam"`
	BadTeam       int64   `json:"badTeam"`
	UglyTeams     []int64 `json:"uglyTeams"`
}

// SavePicks validates and stores a participant's draft for the current
// season, then materializes their initial score row.
func (h *Handler) SavePicks(c echo.Context) error {
	var req savePicksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ParticipantID == 0 || req.GoodTeam == 0 || req.BadTeam == 0 || len(req.UglyTeams) != 3 {
		return echo.NewHTTPError(http.StatusBadRequest, "picks need a participant, a good team, a bad team, and three ugly teams")
	}

	ctx := c.Request().Context()
	season, err := h.store.CurrentSeason(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}
	if season.PicksLocked {
		return echo.NewHTTPError(http.StatusBadRequest, "picks are locked for this season")
	}

	picks := &models.Picks{
		ParticipantID: req.ParticipantID,
		SeasonID:      season.ID,
		GoodTeamID:    req.GoodTeam,
		BadTeamID:     req.BadTeam,
		UglyTeam1ID:   req.UglyTeams[0],
		UglyTeam2ID:   req.UglyTeams[1],
		UglyTeam3ID:   req.UglyTeams[2],
	}

	ids := picks.TeamIDs()
	teams, err := h.store.TeamsByIDs(ctx, ids[:])
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := engine.ValidatePicks(picks, teams); err != nil {
		if errors.Is(err, engine.ErrInvalidPicks) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.store.SavePicks(ctx, picks); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.updater.ComputeScore(ctx, picks.ParticipantID, season.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// GetPicks returns one participant's picks for the current season.
func (h *Handler) GetPicks(c echo.Context) error {
	participantID, err := strconv.ParseInt(c.Param("participantID"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid participant id")
	}

	ctx := c.Request().Context()
	season, err := h.store.CurrentSeason(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if season == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active season")
	}

	picks, err := h.store.PicksFor(ctx, participantID, season.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if picks == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no picks for participant")
	}

	return c.JSON(http.StatusOK, picks)
}

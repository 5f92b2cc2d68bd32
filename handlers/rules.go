package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var scoringRules = []string{
	"2 points per regular season win",
	"0 points per regular season loss",
	"5 bonus points if a picked team makes the playoffs",
	"10 bonus points if a picked team makes the Super Bowl",
	"Pick 1 good team (top tier)",
	"Pick 1 bad team (middle tier)",
	"Pick 3 ugly teams (bottom tier)",
	"Picks lock before the first game of week 1",
}

// Rules returns the static scoring rules.
func (h *Handler) Rules(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"rules": scoringRules})
}

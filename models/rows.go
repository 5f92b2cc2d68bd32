package models

import "time"

// LeaderboardRow is a flat scan target for the leaderboard join: one
// participant's score plus their picked team names. Team name fields are
// blanked by the handler until the season reveals picks.
type LeaderboardRow struct {
	ParticipantID       int64     `bun:"participant_id" json:"participantID"`
	Name                string    `bun:"name" json:"name"`
	RegularSeasonPoints int       `bun:"regular_season_points" json:"regularSeasonPoints"`
	PlayoffPoints       int       `bun:"playoff_points" json:"playoffPoints"`
	SuperBowlPoints     int       `bun:"super_bowl_points" json:"superBowlPoints"`
	TotalPoints         int       `bun:"total_points" json:"totalPoints"`
	LastUpdated         time.Time `bun:"last_updated" json:"lastUpdated"`
	GoodTeam            string    `bun:"good_team" json:"goodTeam,omitempty"`
	BadTeam             string    `bun:"bad_team" json:"badTeam,omitempty"`
	UglyTeam1           string    `bun:"ugly_team_1" json:"uglyTeam1,omitempty"`
	UglyTeam2           string    `bun:"ugly_team_2" json:"uglyTeam2,omitempty"`
	UglyTeam3           string    `bun:"ugly_team_3" json:"uglyTeam3,omitempty"`
}

// StandingsRow is a flat scan target for the standings join: one team's
// record plus its roster identity.
type StandingsRow struct {
	TeamID        int64  `bun:"team_id" json:"teamID"`
	Team          string `bun:"team" json:"team"`
	City          string `bun:"city" json:"city"`
	Tier          Tier   `bun:"tier" json:"tier"`
	Wins          int    `bun:"wins" json:"wins"`
	Losses        int    `bun:"losses" json:"losses"`
	MadePlayoffs  bool   `bun:"made_playoffs" json:"madePlayoffs"`
	MadeSuperBowl bool   `bun:"made_super_bowl" json:"madeSuperBowl"`
}

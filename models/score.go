package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Score is a participant's derived point total for a season. Every field is
// recomputable from Picks and Standings alone; rows are overwritten whole.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:sc"`

	ID                  int64     `bun:"id,pk,autoincrement" json:"id"`
	ParticipantID       int64     `bun:"participant_id,notnull,unique:scores_no_dupes" json:"participantID"`
	SeasonID            int64     `bun:"season_id,notnull,unique:scores_no_dupes" json:"seasonID"`
	RegularSeasonPoints int       `bun:"regular_season_points,notnull,default:0" json:"regularSeasonPoints"`
	PlayoffPoints       int       `bun:"playoff_points,notnull,default:0" json:"playoffPoints"`
	SuperBowlPoints     int       `bun:"super_bowl_points,notnull,default:0" json:"superBowlPoints"`
	TotalPoints         int       `bun:"total_points,notnull,default:0" json:"totalPoints"`
	LastUpdated         time.Time `bun:"last_updated,notnull" json:"lastUpdated"`
}

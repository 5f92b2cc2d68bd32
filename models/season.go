package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Season holds the per-year pool state. The current season is the one with
// the highest year.
type Season struct {
	bun.BaseModel `bun:"table:seasons,alias:s"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Year          int       `bun:"year,notnull,unique" json:"year"`
	CurrentWeek   int       `bun:"current_week,notnull,default:1" json:"currentWeek"`
	PicksLocked   bool      `bun:"picks_locked,notnull,default:false" json:"picksLocked"`
	PicksRevealed bool      `bun:"picks_revealed,notnull,default:false" json:"picksRevealed"`
	FirstGameDate time.Time `bun:"first_game_date,notnull" json:"firstGameDate"`
}

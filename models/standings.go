package models

import "github.com/uptrace/bun"

// Standings is one team's win/loss record for a season, created lazily as a
// zero record the first time the team is touched.
type Standings struct {
	bun.BaseModel `bun:"table:standings,alias:st"`

	ID            int64 `bun:"id,pk,autoincrement" json:"id"`
	TeamID        int64 `bun:"team_id,notnull,unique:standings_no_dupes" json:"teamID"`
	SeasonID      int64 `bun:"season_id,notnull,unique:standings_no_dupes" json:"seasonID"`
	Wins          int   `bun:"wins,notnull,default:0" json:"wins"`
	Losses        int   `bun:"losses,notnull,default:0" json:"losses"`
	MadePlayoffs  bool  `bun:"made_playoffs,notnull,default:false" json:"madePlayoffs"`
	MadeSuperBowl bool  `bun:"made_super_bowl,notnull,default:false" json:"madeSuperBowl"`
}

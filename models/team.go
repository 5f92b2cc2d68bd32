package models

import "github.com/uptrace/bun"

// Tier is one of the three fixed draft pools a team belongs to for the season.
type Tier string

const (
	TierGood Tier = "good"
	TierBad  Tier = "bad"
	TierUgly Tier = "ugly"
)

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	return t == TierGood || t == TierBad || t == TierUgly
}

// Team represents an NFL team. Rows are seeded once and never mutated.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	Name       string `bun:"name,notnull,unique" json:"name"`
	City       string `bun:"city,notnull" json:"city"`
	Tier       Tier   `bun:"tier,notnull" json:"tier"`
	Conference string `bun:"conference,notnull" json:"conference"`
	Division   string `bun:"division,notnull" json:"division"`
}

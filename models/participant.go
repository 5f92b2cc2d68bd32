package models

import "github.com/uptrace/bun"

// Participant is a registered pool member, identified by name.
type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:pa"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull,unique" json:"name"`
}

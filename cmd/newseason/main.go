// cmd/newseason/main.go
// Creates the season row for a new pool year.
//
// Usage:
//
//	go run ./cmd/newseason -year 2025 -first-game 2025-09-04
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jwillison/gbupool/config"
	bundb "github.com/jwillison/gbupool/db"
	"github.com/jwillison/gbupool/models"
)

func main() {
	year := flag.Int("year", 0, "season year (required)")
	firstGame := flag.String("first-game", "", "date of the first game, YYYY-MM-DD (required)")
	flag.Parse()

	if *year == 0 || *firstGame == "" {
		log.Fatal("both -year and -first-game are required")
	}

	firstGameDate, err := time.Parse("2006-01-02", *firstGame)
	if err != nil {
		log.Fatal("first-game:", err)
	}

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	season := &models.Season{
		Year:          *year,
		CurrentWeek:   1,
		FirstGameDate: firstGameDate,
	}

	_, err = db.NewInsert().Model(season).
		On("CONFLICT (year) DO UPDATE SET first_game_date = EXCLUDED.first_game_date").
		Exec(context.Background())
	if err != nil {
		log.Fatal("insert season:", err)
	}

	fmt.Printf("season %d saved\n", *year)
}

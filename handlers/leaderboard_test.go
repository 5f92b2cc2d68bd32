package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jwillison/gbupool/engine"
	"github.com/jwillison/gbupool/models"
)

func leaderboardRows() []models.LeaderboardRow {
	return []models.LeaderboardRow{
		{
			ParticipantID: 7,
			Name:          "Maya",
			TotalPoints:   24,
			GoodTeam:      "Chiefs",
			BadTeam:       "Texans",
			UglyTeam1:     "Jets",
			UglyTeam2:     "Panthers",
			UglyTeam3:     "Titans",
		},
	}
}

func TestLeaderboardHidesPicksBeforeReveal(t *testing.T) {
	store := &stubStore{season: openSeason(), leaderboard: leaderboardRows()}
	h := New(store, &stubUpdater{})
	c, rec := newContext(t, http.MethodGet, "/api/leaderboard", "")

	if err := h.Leaderboard(c); err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}

	var resp leaderboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.PicksRevealed {
		t.Fatal("picksRevealed = true before reveal")
	}
	if resp.Message == "" {
		t.Fatal("missing reveal message")
	}
	row := resp.Leaderboard[0]
	if row.GoodTeam != "" || row.BadTeam != "" || row.UglyTeam1 != "" {
		t.Fatalf("team names leaked before reveal: %+v", row)
	}
	if row.TotalPoints != 24 {
		t.Fatalf("total = %d, want 24", row.TotalPoints)
	}
}

func TestLeaderboardShowsPicksAfterReveal(t *testing.T) {
	season := openSeason()
	season.PicksRevealed = true
	store := &stubStore{season: season, leaderboard: leaderboardRows()}
	h := New(store, &stubUpdater{})
	c, rec := newContext(t, http.MethodGet, "/api/leaderboard", "")

	if err := h.Leaderboard(c); err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}

	var resp leaderboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.PicksRevealed {
		t.Fatal("picksRevealed = false after reveal")
	}
	if resp.Leaderboard[0].GoodTeam != "Chiefs" {
		t.Fatalf("good team = %q, want Chiefs", resp.Leaderboard[0].GoodTeam)
	}
}

func TestUpdateGamesReturnsRefreshStats(t *testing.T) {
	updater := &stubUpdater{refreshStats: engine.RefreshStats{GamesFetched: 4, GamesApplied: 2}}
	h := New(&stubStore{season: openSeason()}, updater)
	c, rec := newContext(t, http.MethodPost, "/api/admin/update-games", "")

	if err := h.UpdateGames(c); err != nil {
		t.Fatalf("UpdateGames: %v", err)
	}
	if updater.refreshCalls != 1 {
		t.Fatalf("RefreshSeason called %d times", updater.refreshCalls)
	}

	var stats engine.RefreshStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.GamesFetched != 4 || stats.GamesApplied != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestFixScoresReturnsRepairStats(t *testing.T) {
	updater := &stubUpdater{repairStats: engine.RepairStats{GamesReplayed: 12}}
	h := New(&stubStore{season: openSeason()}, updater)
	c, rec := newContext(t, http.MethodPost, "/api/admin/fix-scores", "")

	if err := h.FixScores(c); err != nil {
		t.Fatalf("FixScores: %v", err)
	}
	if updater.repairCalls != 1 {
		t.Fatalf("RepairSeason called %d times", updater.repairCalls)
	}

	var stats engine.RepairStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.GamesReplayed != 12 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestLockPicksSetsSeasonFlag(t *testing.T) {
	store := &stubStore{season: openSeason()}
	h := New(store, &stubUpdater{})
	c, _ := newContext(t, http.MethodPost, "/api/admin/lock-picks", "")

	if err := h.LockPicks(c); err != nil {
		t.Fatalf("LockPicks: %v", err)
	}
	if len(store.lockedSet) != 1 || !store.lockedSet[0] {
		t.Fatalf("locked flags = %v, want [true]", store.lockedSet)
	}
}

func TestRevealAndHidePicks(t *testing.T) {
	store := &stubStore{season: openSeason()}
	h := New(store, &stubUpdater{})

	c, _ := newContext(t, http.MethodPost, "/api/admin/reveal-picks", "")
	if err := h.RevealPicks(c); err != nil {
		t.Fatalf("RevealPicks: %v", err)
	}
	c, _ = newContext(t, http.MethodPost, "/api/admin/hide-picks", "")
	if err := h.HidePicks(c); err != nil {
		t.Fatalf("HidePicks: %v", err)
	}

	want := []bool{true, false}
	if len(store.revealedSet) != 2 || store.revealedSet[0] != want[0] || store.revealedSet[1] != want[1] {
		t.Fatalf("revealed flags = %v, want %v", store.revealedSet, want)
	}
}

func TestAdvanceWeekBumpsCounter(t *testing.T) {
	store := &stubStore{season: openSeason(), week: 3}
	h := New(store, &stubUpdater{})
	c, rec := newContext(t, http.MethodPost, "/api/admin/advance-week", "")

	if err := h.AdvanceWeek(c); err != nil {
		t.Fatalf("AdvanceWeek: %v", err)
	}

	var resp map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["currentWeek"] != 4 {
		t.Fatalf("currentWeek = %d, want 4", resp["currentWeek"])
	}
}

func TestGamesRejectsBadWeekParam(t *testing.T) {
	h := New(&stubStore{season: openSeason()}, &stubUpdater{})
	c, _ := newContext(t, http.MethodGet, "/api/games?week=zero", "")

	err := h.Games(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

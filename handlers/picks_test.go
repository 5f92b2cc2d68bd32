package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func picksBody(good, bad int64, ugly [3]int64) string {
	return fmt.Sprintf(`{"participantID": 7, "goodTeam": %d, "badTeam": %d, "uglyTeams": [%d, %d, %d]}`,
		good, bad, ugly[0], ugly[1], ugly[2])
}

func TestSavePicksStoresAndScores(t *testing.T) {
	store := &stubStore{season: openSeason(), teams: poolTeams()}
	updater := &stubUpdater{}
	h := New(store, updater)
	c, _ := newContext(t, http.MethodPost, "/api/picks", picksBody(1, 3, [3]int64{4, 5, 6}))

	if err := h.SavePicks(c); err != nil {
		t.Fatalf("SavePicks: %v", err)
	}
	if store.savedPicks == nil {
		t.Fatal("picks were not saved")
	}
	if store.savedPicks.SeasonID != 1 || store.savedPicks.GoodTeamID != 1 {
		t.Fatalf("saved picks = %+v", store.savedPicks)
	}
	if updater.computeCalls != 1 {
		t.Fatalf("ComputeScore called %d times, want 1", updater.computeCalls)
	}
}

func TestSavePicksRejectsBadShape(t *testing.T) {
	h := New(&stubStore{season: openSeason(), teams: poolTeams()}, &stubUpdater{})
	c, _ := newContext(t, http.MethodPost, "/api/picks",
		`{"participantID": 7, "goodTeam": 1, "badTeam": 3, "uglyTeams": [4, 5]}`)

	err := h.SavePicks(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestSavePicksRejectsLockedSeason(t *testing.T) {
	season := openSeason()
	season.PicksLocked = true
	store := &stubStore{season: season, teams: poolTeams()}
	h := New(store, &stubUpdater{})
	c, _ := newContext(t, http.MethodPost, "/api/picks", picksBody(1, 3, [3]int64{4, 5, 6}))

	err := h.SavePicks(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
	if msg, _ := he.Message.(string); !strings.Contains(msg, "locked") {
		t.Fatalf("message = %v", he.Message)
	}
	if store.savedPicks != nil {
		t.Fatal("picks saved despite locked season")
	}
}

func TestSavePicksRejectsWrongTier(t *testing.T) {
	store := &stubStore{season: openSeason(), teams: poolTeams()}
	h := New(store, &stubUpdater{})
	// Bills are a good-tier team placed in the bad slot.
	c, _ := newContext(t, http.MethodPost, "/api/picks", picksBody(1, 2, [3]int64{4, 5, 6}))

	err := h.SavePicks(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if store.savedPicks != nil {
		t.Fatal("invalid picks were saved")
	}
}

func TestSavePicksRejectsDuplicateUglyTeams(t *testing.T) {
	store := &stubStore{season: openSeason(), teams: poolTeams()}
	h := New(store, &stubUpdater{})
	c, _ := newContext(t, http.MethodPost, "/api/picks", picksBody(1, 3, [3]int64{4, 4, 6}))

	err := h.SavePicks(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if store.savedPicks != nil {
		t.Fatal("duplicate picks were saved")
	}
}

func TestSavePicksWithoutSeason(t *testing.T) {
	h := New(&stubStore{}, &stubUpdater{})
	c, _ := newContext(t, http.MethodPost, "/api/picks", picksBody(1, 3, [3]int64{4, 5, 6}))

	err := h.SavePicks(c)
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}

package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun(RunRecord{Score: 10, Outcome: OutcomeGameOver}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	st, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 0 {
		t.Errorf("second store sees %d runs, expected 0", st.Runs)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	start := time.UnixMilli(1_700_000_000_000)

	saved, err := store.SaveRun(RunRecord{
		Score:     120,
		Length:    28,
		Ticks:     340,
		Outcome:   OutcomeGameOver,
		StartedAt: start,
		EndedAt:   start.Add(51 * time.Second),
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Error("SaveRun() did not assign an ID")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != saved.ID {
		t.Errorf("ID = %v, expected %v", got.ID, saved.ID)
	}
	if got.Score != 120 || got.Length != 28 || got.Ticks != 340 {
		t.Errorf("score/length/ticks = %d/%d/%d, expected 120/28/340", got.Score, got.Length, got.Ticks)
	}
	if got.Outcome != OutcomeGameOver {
		t.Errorf("Outcome = %q, expected %q", got.Outcome, OutcomeGameOver)
	}
	if !got.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, expected %v", got.StartedAt, start)
	}
	if got.Duration() != 51*time.Second {
		t.Errorf("Duration() = %v, expected 51s", got.Duration())
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.New()

	saved, err := store.SaveRun(RunRecord{ID: id, Outcome: OutcomeWon})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID != id {
		t.Errorf("ID = %v, expected %v", saved.ID, id)
	}

	if _, err := store.SaveRun(RunRecord{ID: id, Outcome: OutcomeWon}); err == nil {
		t.Error("saving a duplicate ID should fail")
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 50, 30, 20, 40} {
		if _, err := store.SaveRun(RunRecord{Score: score, Outcome: OutcomeGameOver}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	expected := []int{40, 20, 30}
	for i, want := range expected {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
	}

	// Non-positive limit falls back to 10
	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(all))
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if ok {
		t.Error("BestRun() on an empty ledger reported a run")
	}

	first, _ := store.SaveRun(RunRecord{Score: 90, Outcome: OutcomeGameOver})
	store.SaveRun(RunRecord{Score: 30, Outcome: OutcomeAbandoned})
	store.SaveRun(RunRecord{Score: 90, Outcome: OutcomeGameOver})

	best, ok, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if !ok {
		t.Fatal("BestRun() reported an empty ledger")
	}
	if best.ID != first.ID {
		t.Errorf("tie should go to the earliest run: got %v, expected %v", best.ID, first.ID)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Stats() on empty ledger = %+v, expected zero", st)
	}

	runs := []RunRecord{
		{Score: 100, Ticks: 200, Outcome: OutcomeGameOver},
		{Score: 300, Ticks: 500, Outcome: OutcomeWon},
		{Score: 20, Ticks: 40, Outcome: OutcomeAbandoned},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 3 || st.Wins != 1 || st.BestScore != 300 || st.TotalTicks != 740 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.AverageScore != 140 {
		t.Errorf("AverageScore = %v, expected 140", st.AverageScore)
	}
}

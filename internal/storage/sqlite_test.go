package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Open creates missing parent directories
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score    int
		duration float64
		seed     int64
		player   string
	}{
		{100, 9.8, 1, "alice"},
		{50, 4.2, 2, ""},
		{200, 18.5, 3, "bob"},
		{200, 17.0, 4, "carol"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.score, r.duration, r.seed, r.player); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns(3) returned %d runs, expected 3", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 200 || top[2].Score != 100 {
		t.Errorf("TopRuns order = %d, %d, %d, expected 200, 200, 100",
			top[0].Score, top[1].Score, top[2].Score)
	}
	if top[2].Seed != 1 {
		t.Errorf("Seed = %d, expected 1", top[2].Seed)
	}
	if top[2].Duration != 9.8 {
		t.Errorf("Duration = %v, expected 9.8", top[2].Duration)
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 200 {
		t.Errorf("BestScore() = %d, expected 200", best)
	}

	count, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if count != 4 {
		t.Errorf("RunCount() = %d, expected 4", count)
	}
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() on empty store failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() = %d on empty store, expected 0", best)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() on empty store failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("TopRuns() returned %d runs on empty store, expected 0", len(top))
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(314, 31.4, 42, "dave"); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 314 {
		t.Errorf("BestScore() = %d after reopen, expected 314", best)
	}
}

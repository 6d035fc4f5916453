package store

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "hub.db"), nil)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReadWriteRoundtrip(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.Read("dapsiwow-favorites"); ok {
		t.Error("read of absent key should miss")
	}

	s.Write("dapsiwow-favorites", []byte(`["sudoku-solver"]`))

	got, ok := s.Read("dapsiwow-favorites")
	if !ok {
		t.Fatal("read after write missed")
	}
	if string(got) != `["sudoku-solver"]` {
		t.Errorf("unexpected value %q", got)
	}

	// Overwrite replaces the stored value.
	s.Write("dapsiwow-favorites", []byte(`[]`))
	got, _ = s.Read("dapsiwow-favorites")
	if string(got) != `[]` {
		t.Errorf("overwrite did not replace value, got %q", got)
	}
}

func TestReadJSON(t *testing.T) {
	s := newTestStore(t)

	s.WriteJSON("dapsiwow-recent", []string{"memory-palace", "sudoku-solver"})

	var ids []string
	if !s.ReadJSON("dapsiwow-recent", &ids) {
		t.Fatal("ReadJSON missed after WriteJSON")
	}
	if len(ids) != 2 || ids[0] != "memory-palace" {
		t.Errorf("unexpected decoded value %v", ids)
	}
}

func TestReadJSONMalformedValue(t *testing.T) {
	s := newTestStore(t)

	// Simulate a corrupted record written by an older build.
	s.Write("dapsiwow-preferences", []byte(`{not json`))

	var prefs map[string]any
	if s.ReadJSON("dapsiwow-preferences", &prefs) {
		t.Error("malformed value should read as absent")
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	s.Write("dapsigames-token", []byte("abc"))
	s.Remove("dapsigames-token")

	if _, ok := s.Read("dapsigames-token"); ok {
		t.Error("key still present after Remove")
	}

	// Removing an absent key must not fail.
	s.Remove("dapsigames-token")
}

func TestDisabledStoreIsSilent(t *testing.T) {
	// Point the store at a path whose parent cannot be created.
	s := New(filepath.Join(t.TempDir(), "blocker", "sub", "hub.db"), nil)

	// Make the blocker a file so MkdirAll fails.
	blocker := filepath.Dir(filepath.Dir(s.dbPath))
	if err := os.WriteFile(blocker, []byte("not a directory"), 0644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	if err := s.Init(); err == nil {
		t.Fatal("Init should fail when the directory cannot be created")
	}
	if s.Enabled() {
		t.Fatal("store should be disabled after failed init")
	}

	// Every operation degrades to a no-op.
	s.Write("k", []byte("v"))
	if _, ok := s.Read("k"); ok {
		t.Error("disabled store should never return values")
	}
	var out any
	if s.ReadJSON("k", &out) {
		t.Error("disabled store ReadJSON should miss")
	}
	s.Remove("k")
	if err := s.Close(); err != nil {
		t.Errorf("Close on disabled store failed: %v", err)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hub.db")

	s := New(path, nil)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.Write("dapsigames-users", []byte(`[]`))
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2 := New(path, nil)
	if err := s2.Init(); err != nil {
		t.Fatalf("reopen Init failed: %v", err)
	}
	defer s2.Close()

	if _, ok := s2.Read("dapsigames-users"); !ok {
		t.Error("value lost across reopen")
	}
}

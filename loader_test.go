package expenses

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	// Twice in a row: the first-run state is idempotent and silent.
	for range 2 {
		store, err := LoadStore(path)
		if err != nil {
			t.Fatalf("LoadStore on a missing file failed: %v", err)
		}
		if store.Len() != 0 {
			t.Errorf("store has %d accounts, want 0", store.Len())
		}
	}
}

func TestLoadStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	store, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore on an empty file failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("store has %d accounts, want 0", store.Len())
	}
}

func TestLoadStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{truncated"), 0644); err != nil {
		t.Fatal(err)
	}
	store, err := LoadStore(path)
	if !errors.Is(err, ErrMalformedStore) {
		t.Errorf("error = %v, want ErrMalformedStore", err)
	}
	if store == nil || store.Len() != 0 {
		t.Error("a corrupted file must degrade to an empty store, not a crash")
	}
}

func TestSaveLoadStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	store := NewStore()
	alice, err := store.CreateAccount("alice", "pw1", 30, A(100.0))
	if err != nil {
		t.Fatal(err)
	}
	alice.AddTransaction(MustParseDatetime("2024-01-02"), "groceries", A(-20.0))
	alice.AddTransaction(MustParseDatetime("2024-01-01"), "salary", A(50.0))

	if err := SaveStore(path, store); err != nil {
		t.Fatalf("SaveStore failed: %v", err)
	}
	back, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	if !equalStores(t, back, store) {
		t.Error("loaded store differs from the saved one")
	}
}

func TestSaveStore_FullReplace(t *testing.T) {
	// Every save rewrites the whole file: nothing of a previous, larger
	// document may survive.
	path := filepath.Join(t.TempDir(), "users.json")

	big := NewStore()
	for _, username := range []string{"alice", "bob", "carol"} {
		if _, err := big.CreateAccount(username, "pw", 20, A(1.0)); err != nil {
			t.Fatal(err)
		}
	}
	if err := SaveStore(path, big); err != nil {
		t.Fatal(err)
	}

	small := NewStore()
	if _, err := small.CreateAccount("dave", "pw", 20, A(1.0)); err != nil {
		t.Fatal(err)
	}
	if err := SaveStore(path, small); err != nil {
		t.Fatal(err)
	}

	back, err := LoadStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != 1 || back.Account("dave") == nil {
		t.Errorf("store after full replace has %d accounts, want only dave", back.Len())
	}
}

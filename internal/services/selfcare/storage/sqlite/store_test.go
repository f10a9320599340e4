package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/haqatak/telcoco/internal/services/selfcare/session"
	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sessions.db")
	store := openTestStore(t, path)
	_ = store

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	var name string
	if err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'selfcare_sessions'`).Scan(&name); err != nil {
		t.Fatalf("expected selfcare_sessions table: %v", err)
	}
}

func TestSessionPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")
	store := openTestStore(t, path)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}
	if err := store.Put(ctx, "s1", session.State{LoggedInUser: "john.doe"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put(ctx, "s1", session.State{LoggedInUser: "john.doe", SelectedSubscriberID: "sub-3"}); err != nil {
		t.Fatalf("Put(update) error = %v", err)
	}
	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	want := session.State{LoggedInUser: "john.doe", SelectedSubscriberID: "sub-3"}
	if got != want {
		t.Fatalf("Get() = %+v, want %+v", got, want)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	reopened := openTestStore(t, path)
	got, err = reopened.Get(ctx, "s1")
	if err != nil || got != want {
		t.Fatalf("Get(reopened) = %+v, %v; want %+v", got, err, want)
	}

	if err := reopened.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := reopened.Get(ctx, "s1"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("Get(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestNilStoreReportsNotConfigured(t *testing.T) {
	var store *Store
	if _, err := store.Get(context.Background(), "s1"); err == nil {
		t.Fatal("expected not configured error")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close(nil) error = %v", err)
	}
}

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

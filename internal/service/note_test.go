package service

import (
	"errors"
	"testing"

	"github.com/scrawlhq/scrawl/internal/auth"
	"github.com/scrawlhq/scrawl/internal/database"
	"github.com/scrawlhq/scrawl/internal/store"
)

func setupService(t *testing.T) (*NoteService, auth.Identity, auth.Identity) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	us := store.NewUserStore(db)
	alice, err := us.Create("alice@example.com", "hash")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := us.Create("bob@example.com", "hash")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	svc := NewNoteService(store.NewNoteStore(db))
	return svc, auth.Identity{UserID: alice.ID}, auth.Identity{UserID: bob.ID}
}

func TestCreateThenList(t *testing.T) {
	svc, alice, _ := setupService(t)

	note, err := svc.Create(alice, "buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if note.OwnerID != alice.UserID {
		t.Errorf("owner_id = %d, want %d", note.OwnerID, alice.UserID)
	}

	notes, err := svc.List(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].ID != note.ID || notes[0].Content != "buy milk" {
		t.Errorf("listed note = %+v, want id %d content %q", notes[0], note.ID, "buy milk")
	}
}

func TestListEmpty(t *testing.T) {
	svc, alice, _ := setupService(t)

	notes, err := svc.List(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if notes == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(notes) != 0 {
		t.Errorf("expected 0 notes, got %d", len(notes))
	}
}

func TestListScopedToOwner(t *testing.T) {
	svc, alice, bob := setupService(t)

	svc.Create(alice, "alice's note")
	svc.Create(bob, "bob's note")

	notes, err := svc.List(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].Content != "alice's note" {
		t.Errorf("content = %q, want %q", notes[0].Content, "alice's note")
	}
}

func TestUpdateByOwner(t *testing.T) {
	svc, alice, _ := setupService(t)

	note, _ := svc.Create(alice, "buy milk")

	updated, err := svc.Update(alice, note.ID, "buy milk and eggs")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "buy milk and eggs" {
		t.Errorf("content = %q, want %q", updated.Content, "buy milk and eggs")
	}
	if updated.ID != note.ID {
		t.Errorf("id = %d, want %d", updated.ID, note.ID)
	}
	if updated.OwnerID != note.OwnerID {
		t.Errorf("owner_id = %d, want %d", updated.OwnerID, note.OwnerID)
	}
}

func TestUpdateByNonOwner(t *testing.T) {
	svc, alice, bob := setupService(t)

	note, _ := svc.Create(alice, "buy milk")

	_, err := svc.Update(bob, note.ID, "hacked")
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}

	// Stored note must be untouched
	notes, _ := svc.List(alice)
	if len(notes) != 1 || notes[0].Content != "buy milk" {
		t.Errorf("note modified by non-owner: %+v", notes)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc, alice, _ := setupService(t)

	_, err := svc.Update(alice, 999, "anything")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("err = %v, want ErrNoteNotFound", err)
	}
}

func TestUpdateNotFoundBeforeOwnership(t *testing.T) {
	svc, _, bob := setupService(t)

	// A non-owner probing a nonexistent id must see not-found, never not-owner.
	_, err := svc.Update(bob, 12345, "probe")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("err = %v, want ErrNoteNotFound", err)
	}
}

func TestDeleteByOwner(t *testing.T) {
	svc, alice, _ := setupService(t)

	note, _ := svc.Create(alice, "temp")

	if err := svc.Delete(alice, note.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Subsequent operations on the id report not-found
	_, err := svc.Update(alice, note.ID, "again")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("err = %v, want ErrNoteNotFound after delete", err)
	}
	if err := svc.Delete(alice, note.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("err = %v, want ErrNoteNotFound after delete", err)
	}
}

func TestDeleteByNonOwner(t *testing.T) {
	svc, alice, bob := setupService(t)

	note, _ := svc.Create(alice, "keep me")

	err := svc.Delete(bob, note.ID)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}

	notes, _ := svc.List(alice)
	if len(notes) != 1 {
		t.Errorf("note deleted by non-owner")
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc, alice, _ := setupService(t)

	err := svc.Delete(alice, 999)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("err = %v, want ErrNoteNotFound", err)
	}
}

func TestOwnershipScenario(t *testing.T) {
	svc, alice, bob := setupService(t)

	note, err := svc.Create(alice, "buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(bob, note.ID, "hacked"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("bob update err = %v, want ErrNotOwner", err)
	}
	notes, _ := svc.List(alice)
	if notes[0].Content != "buy milk" {
		t.Fatalf("content = %q, want %q", notes[0].Content, "buy milk")
	}

	if _, err := svc.Update(alice, note.ID, "buy milk and eggs"); err != nil {
		t.Fatalf("alice update: %v", err)
	}
	notes, _ = svc.List(alice)
	if notes[0].Content != "buy milk and eggs" {
		t.Fatalf("content = %q, want %q", notes[0].Content, "buy milk and eggs")
	}

	if err := svc.Delete(alice, note.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Update(alice, note.ID, "gone"); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("err = %v, want ErrNoteNotFound", err)
	}
}

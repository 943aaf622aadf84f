package service

import (
	"errors"

	"github.com/scrawlhq/scrawl/internal/auth"
	"github.com/scrawlhq/scrawl/internal/model"
	"github.com/scrawlhq/scrawl/internal/store"
)

var (
	// ErrNoteNotFound means the referenced note id does not exist.
	ErrNoteNotFound = errors.New("note not found")
	// ErrNotOwner means the note exists but belongs to another account.
	ErrNotOwner = errors.New("not the note owner")
)

// NoteService applies the ownership rule to every note mutation: a note may
// only be changed or removed by the account that created it.
type NoteService struct {
	notes *store.NoteStore
}

func NewNoteService(ns *store.NoteStore) *NoteService {
	return &NoteService{notes: ns}
}

// guard fetches the note and verifies the caller owns it. Existence is
// checked before ownership, so probing a nonexistent id reports not-found
// regardless of who asks, while probing someone else's note reports
// not-owner. All mutating operations funnel through here so the ordering
// holds in exactly one place.
func (s *NoteService) guard(caller auth.Identity, noteID int64) (*model.Note, error) {
	note, err := s.notes.GetByID(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	if note.OwnerID != caller.UserID {
		return nil, ErrNotOwner
	}
	return note, nil
}

// Create inserts a new note owned by the caller.
func (s *NoteService) Create(caller auth.Identity, content string) (*model.Note, error) {
	return s.notes.Create(caller.UserID, content)
}

// List returns every note owned by the caller. A caller with no notes gets
// an empty slice, not an error.
func (s *NoteService) List(caller auth.Identity) ([]model.Note, error) {
	notes, err := s.notes.ListByOwner(caller.UserID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// Update replaces the content of a note the caller owns.
func (s *NoteService) Update(caller auth.Identity, noteID int64, content string) (*model.Note, error) {
	note, err := s.guard(caller, noteID)
	if err != nil {
		return nil, err
	}
	return s.notes.UpdateContent(note.ID, content)
}

// Delete permanently removes a note the caller owns. There is no tombstone;
// the id reports not-found afterwards.
func (s *NoteService) Delete(caller auth.Identity, noteID int64) error {
	note, err := s.guard(caller, noteID)
	if err != nil {
		return err
	}
	return s.notes.Delete(note.ID)
}

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/scrawlhq/scrawl/internal/auth"
	"github.com/scrawlhq/scrawl/internal/service"
	"github.com/scrawlhq/scrawl/internal/websocket"
)

type NoteHandler struct {
	notes  *service.NoteService
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewNoteHandler(ns *service.NoteService, hub *websocket.Hub, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: ns, hub: hub, logger: logger}
}

func (h *NoteHandler) broadcast(ev websocket.Event) {
	if h.hub != nil {
		h.hub.Broadcast(ev)
	}
}

type noteRequest struct {
	Content string `json:"content"`
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Auth error")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.notes.Create(caller, req.Content)
	if err != nil {
		h.logger.Error("create note", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.broadcast(websocket.NoteEvent("created", note.ID))

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Auth error")
		return
	}

	notes, err := h.notes.List(caller)
	if err != nil {
		h.logger.Error("list notes", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Auth error")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		// A non-numeric id can't name any note
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.notes.Update(caller, id, req.Content)
	if err != nil {
		h.writeNoteError(w, "update note", err)
		return
	}

	h.broadcast(websocket.NoteEvent("updated", note.ID))

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Auth error")
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := h.notes.Delete(caller, id); err != nil {
		h.writeNoteError(w, "delete note", err)
		return
	}

	h.broadcast(websocket.NoteEvent("deleted", id))

	writeMessage(w, http.StatusOK, "Note removed")
}

// writeNoteError maps service errors onto the wire contract: missing note is
// 404, foreign note is 401, anything else is an opaque 500.
func (h *NoteHandler) writeNoteError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		writeMessage(w, http.StatusNotFound, "Note not found")
	case errors.Is(err, service.ErrNotOwner):
		writeMessage(w, http.StatusUnauthorized, "Not authorized")
	default:
		h.logger.Error(op, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

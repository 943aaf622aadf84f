package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/scrawlhq/scrawl/internal/handler"
	"github.com/scrawlhq/scrawl/internal/middleware"
	"github.com/scrawlhq/scrawl/internal/service"
	"github.com/scrawlhq/scrawl/internal/store"
	"github.com/scrawlhq/scrawl/internal/token"
	ws "github.com/scrawlhq/scrawl/internal/websocket"
)

const tokenTTL = 24 * time.Hour

type Server struct {
	hub      *ws.Hub
	verifier *token.Verifier
	noteH    *handler.NoteHandler
	authH    *handler.AuthHandler
	logger   *slog.Logger
}

func New(db *sql.DB, jwtSecret string, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	verifier := token.NewVerifier(jwtSecret, tokenTTL)

	noteStore := store.NewNoteStore(db)
	userStore := store.NewUserStore(db)
	noteSvc := service.NewNoteService(noteStore)

	return &Server{
		hub:      hub,
		verifier: verifier,
		noteH:    handler.NewNoteHandler(noteSvc, hub, logger.With("component", "note")),
		authH:    handler.NewAuthHandler(userStore, verifier, logger.With("component", "auth")),
		logger:   logger,
	}
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/auth/register", s.authH.Register)
	outerMux.HandleFunc("POST /api/auth/login", s.authH.Login)
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.verifier)
	outerMux.Handle("/api/notes", authMiddleware(protectedMux))
	outerMux.Handle("/api/notes/", authMiddleware(protectedMux))
	outerMux.Handle("GET /ws", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/notes", s.noteH.Create)
	mux.HandleFunc("GET /api/notes", s.noteH.List)
	mux.HandleFunc("PUT /api/notes/{id}", s.noteH.Update)
	mux.HandleFunc("DELETE /api/notes/{id}", s.noteH.Delete)

	// WebSocket note sync
	mux.HandleFunc("GET /ws", ws.Handle(s.hub, s.logger.With("component", "websocket")))
}

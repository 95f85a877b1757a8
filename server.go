package main

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// Server exposes the dialogue engine over HTTP. Each chat request names a
// session id; unknown or missing ids get a fresh session so the web client
// can just start talking.
type Server struct {
	engine   *Engine
	sessions *SessionStore
	ledger   Ledger
	phrases  *Phrasebook
}

func NewServer(engine *Engine, sessions *SessionStore, ledger Ledger, phrases *Phrasebook) *Server {
	return &Server{engine: engine, sessions: sessions, ledger: ledger, phrases: phrases}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/chat", s.handleChat)
	e.GET("/chat", s.handleChat)
	e.POST("/session", s.handleSession)
	e.GET("/health", s.handleHealth)

	// Admin endpoints for the phrasebook overlay
	e.POST("/admin/reload", s.handleReload)
	e.GET("/admin/phrasebook", s.handlePhrasebookInfo)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"sessions":  s.sessions.Len(),
	})
}

// handleSession creates a conversation, optionally logged in as a ledger
// account. The bound account is what the transfer flow debits.
func (s *Server) handleSession(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Account != "" {
		if _, err := s.ledger.LookupAccount(req.Account); err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid account number"})
		}
	}
	id := s.sessions.Create(req.Account)
	return c.JSON(http.StatusOK, SessionResponse{SessionID: id, Account: req.Account})
}

func (s *Server) handleChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	id, sess := s.sessions.GetOrCreate(req.SessionID)
	reply := sess.Converse(s.engine, req.Message)

	return c.JSON(http.StatusOK, ChatResponse{
		Response:  reply.Text,
		Intent:    reply.Intent,
		SessionID: id,
	})
}

func (s *Server) handleReload(c echo.Context) error {
	if err := s.phrases.Reload(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ReloadResponse{
		Message:    "Phrasebook reloaded",
		ReloadedAt: time.Now(),
	})
}

func (s *Server) handlePhrasebookInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, s.phrases.Info())
}

func runServe(cfg Config) error {
	engine, phrases, ledger, err := buildStack(cfg)
	if err != nil {
		return err
	}
	defer phrases.Close()
	go phrases.Watch()

	srv := NewServer(engine, NewSessionStore(), ledger, phrases)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	srv.Register(e)

	log.Infof("bank assistant listening on port %s", cfg.Port)
	if cfg.Phrasebook != "" {
		log.Infof("phrasebook overlay: %s (auto-reload enabled)", cfg.Phrasebook)
	}
	return e.Start(":" + cfg.Port)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stormdotcom/friday-code-gpt/pkg/config"
	"github.com/stormdotcom/friday-code-gpt/pkg/event"
	"github.com/stormdotcom/friday-code-gpt/pkg/handler"
	"github.com/stormdotcom/friday-code-gpt/pkg/service"
	"github.com/stormdotcom/friday-code-gpt/pkg/storage"
	"github.com/stormdotcom/friday-code-gpt/pkg/store"
	"github.com/stormdotcom/friday-code-gpt/pkg/utils"
)

type Server struct {
	ginEngine *gin.Engine
	logger    *slog.Logger
	cfg       *config.AppConfig
	store     *store.ConversationStore
	port      int
}

func NewServer(cfg *config.AppConfig) (*Server, error) {
	logger := utils.GetLogger()

	ginEngine := gin.New()
	ginEngine.Use(gin.Recovery())

	// CORS middleware: allow common localhost dev origins.
	// Note: if you don't need cookies/credentials, keep Allow-Credentials off.
	ginEngine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// If there's no Origin header, it's not a browser CORS request.
		if origin != "" {
			allowed := strings.HasPrefix(origin, "http://localhost") ||
				strings.HasPrefix(origin, "http://127.0.0.1") ||
				strings.HasPrefix(origin, "https://localhost") ||
				strings.HasPrefix(origin, "https://127.0.0.1")

			if allowed {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			} else {
				// Reject unknown origins.
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	provider, err := newStorageProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	emitter := event.NewEmitter()
	conversationStore := store.New(store.Options{
		Provider:    provider,
		Responder:   service.NewKeywordResponder(),
		Emitter:     emitter,
		Logger:      logger,
		TypingDelay: time.Duration(cfg.TypingDelayMs()) * time.Millisecond,
	})

	server := &Server{
		ginEngine: ginEngine,
		logger:    logger,
		cfg:       cfg,
		store:     conversationStore,
		port:      cfg.Port(),
	}

	server.setupRoutes(emitter)

	return server, nil
}

// newStorageProvider selects SQLite or in-memory persistence from config.
func newStorageProvider(cfg *config.AppConfig, logger *slog.Logger) (storage.Provider, error) {
	path, err := cfg.StoragePath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		logger.Info("Using in-memory conversation storage")
		return storage.NewMemoryProvider(), nil
	}

	provider, err := storage.NewSQLiteProvider(path)
	if err != nil {
		return nil, fmt.Errorf("open storage at %s: %w", path, err)
	}
	logger.Info("Using sqlite conversation storage", "path", path)
	return provider, nil
}

func (s *Server) setupRoutes(emitter *event.Emitter) {
	uploadService := service.NewUploadService(s.logger)

	chatHandler := handler.NewChatHandler(s.store)
	uploadHandler := handler.NewUploadHandler(uploadService)
	wsHandler := event.NewWSHandler(emitter, s.logger)

	s.ginEngine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group
	// /api/v1
	apiGroup := s.ginEngine.Group("/api/v1")
	chatHandler.RegisterRoutes(apiGroup)
	uploadHandler.RegisterRoutes(apiGroup)

	// WebSocket event stream
	// /api/events/ws?events=chat.typingChanged,ui.notification
	s.ginEngine.GET("/api/events/ws", wsHandler.Handle)
}

// Start binds the listener and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host(), s.port)
	srv := &http.Server{Addr: addr, Handler: s.ginEngine}

	// Attempt to listen first; if the port is occupied return immediately.
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	}
	s.logger.Info("Server listening", "addr", ln.Addr().String())

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(ln)
	}()

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := <-errChan; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases the conversation store, cancelling pending reply timers.
func (s *Server) Close() {
	s.store.Close()
}

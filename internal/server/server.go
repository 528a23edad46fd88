// Package server provides the HTTP control surface for the mudra hand
// controller: health, configuration, mapping edits and the live event feed.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	Settings config.Config
	Mapping  *control.Mapping
	Store    *store.Store
	Paused   func() bool
	Events   *EventHub
}

// Server represents the HTTP server for the mudra application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/config", s.handleConfig)
	s.mux.HandleFunc("/api/status", s.handleStatus)

	if s.config.Mapping != nil {
		s.mux.HandleFunc("/api/mappings", s.handleMappings)
	}
	if s.config.Events != nil {
		s.mux.Handle("/ws/events", s.config.Events)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	})
}

// handleConfig handles GET requests to /api/config, returning the active
// settings as the same flat document the config file uses.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, s.config.Settings.Map())
}

// handleStatus handles GET requests to /api/status.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	paused := false
	if s.config.Paused != nil {
		paused = s.config.Paused()
	}
	writeJSON(w, map[string]any{"paused": paused})
}

// handleMappings handles GET and PUT requests to /api/mappings. Bindings
// use the flat trigger-to-action form, swipe and circle triggers prefixed
// with "swipe_" and "circle_".
func (s *Server) handleMappings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.config.Mapping.All())

	case http.MethodPut:
		var bindings map[string]string
		if err := json.NewDecoder(r.Body).Decode(&bindings); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		s.config.Mapping.Load(bindings)

		if s.config.Store != nil {
			if err := s.persistBindings(bindings); err != nil {
				log.Printf("failed to persist mappings: %v", err)
				http.Error(w, "Failed to persist mappings", http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, s.config.Mapping.All())

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) persistBindings(bindings map[string]string) error {
	repo := s.config.Store.Mappings()
	for trigger, action := range bindings {
		m := &store.Mapping{Kind: store.MappingKindGesture, Trigger: trigger, Action: action}
		switch {
		case strings.HasPrefix(trigger, "swipe_"):
			m.Kind = store.MappingKindSwipe
			m.Trigger = strings.TrimPrefix(trigger, "swipe_")
		case strings.HasPrefix(trigger, "circle_"):
			m.Kind = store.MappingKindCircle
			m.Trigger = strings.TrimPrefix(trigger, "circle_")
		}
		if err := repo.Upsert(m); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

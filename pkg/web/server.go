// Package web exposes the session's pull-based status surface over
// HTTP: current status and config as JSON, plus websocket streams of
// progress events and annotated camera frames. It is a monitoring
// surface only; it never drives the exercise.
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/rehazenter/go-rehab/internal/log"
	"github.com/rehazenter/go-rehab/pkg/exercise"
	"github.com/rehazenter/go-rehab/pkg/hub"
)

// Status is the session snapshot served to dashboards.
type Status struct {
	SessionID   string  `json:"session_id"`
	Phase       string  `json:"phase"` // idle, calibrating, exercising, done, failed
	Running     bool    `json:"running"`
	TargetIndex int     `json:"target_index"`
	Count       int     `json:"count"`
	Limit       int     `json:"limit"`
	MarkerX     int     `json:"marker_x"`
	MarkerY     int     `json:"marker_y"`
	MarkerFound bool    `json:"marker_found"`
	Radius      float64 `json:"radius"`
}

// Server is the monitoring HTTP server.
type Server struct {
	app  *fiber.App
	port string

	statusMu sync.RWMutex
	status   Status
	config   exercise.Config

	eventHub *hub.Hub
	frameHub *hub.Hub
}

// NewServer builds the server for the given session config.
func NewServer(port string, cfg exercise.Config) *Server {
	s := &Server{
		port:     port,
		config:   cfg,
		eventHub: hub.New("events"),
		frameHub: hub.New("frames"),
	}
	s.status.Phase = "idle"
	s.status.Limit = cfg.RepetitionLimit

	app := fiber.New(fiber.Config{
		AppName:               "Rehab Exercise Monitor",
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/config", s.handleConfig)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", websocket.New(s.handleEventsWS))
	app.Get("/ws/frames", websocket.New(s.handleFramesWS))

	s.app = app
	return s
}

// StartAsync serves in a background goroutine.
func (s *Server) StartAsync() {
	go s.eventHub.Run()
	go s.frameHub.Run()
	go func() {
		log.Info("monitor listening", "addr", "http://localhost:"+s.port)
		if err := s.app.Listen(":" + s.port); err != nil {
			log.Error("monitor server stopped", "err", err)
		}
	}()
}

// UpdateStatus mutates the status under lock and broadcasts the result
// to event stream subscribers.
func (s *Server) UpdateStatus(update func(*Status)) {
	s.statusMu.Lock()
	update(&s.status)
	snapshot := s.status
	s.statusMu.Unlock()

	s.eventHub.BroadcastJSON(snapshot)
}

// PublishEvent relays a session progress event to subscribers.
func (s *Server) PublishEvent(ev exercise.Event) {
	s.eventHub.BroadcastJSON(ev)
}

// PublishFrame streams an annotated JPEG frame to subscribers.
func (s *Server) PublishFrame(jpeg []byte) {
	s.frameHub.BroadcastBinary(jpeg)
}

// Shutdown stops the HTTP server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

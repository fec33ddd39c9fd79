package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/rehazenter/go-rehab/pkg/hub"
)

// handleStatus returns the current session snapshot.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return c.JSON(s.status)
}

// handleConfig returns the immutable session configuration.
func (s *Server) handleConfig(c *fiber.Ctx) error {
	return c.JSON(s.config)
}

// handleEventsWS streams status snapshots and progress events.
func (s *Server) handleEventsWS(c *websocket.Conn) {
	hub.NewClient(s.eventHub, c).Run()
}

// handleFramesWS streams annotated JPEG frames.
func (s *Server) handleFramesWS(c *websocket.Conn) {
	hub.NewClient(s.frameHub, c).Run()
}

// Package httpapi exposes the bot over HTTP: a generic chat webhook that runs
// messages through the intent parser, and a tool-call surface that hands
// structured arguments straight to the task service.
package httpapi

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/sandeepkv93/todobot/internal/tasks"
)

type Server struct {
	app   *fiber.App
	svc   *tasks.Service
	log   *log.Logger
	tools []*tool
}

func New(svc *tasks.Service, logger *log.Logger) (*Server, error) {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "todobot",
			DisableStartupMessage: true,
		}),
		svc: svc,
		log: logger,
	}
	registry, err := loadTools()
	if err != nil {
		return nil, err
	}
	s.tools = registry
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.app.Get("/healthz", s.handleHealth)
	s.app.Post("/webhook", s.handleWebhook)
	s.app.Get("/tools", s.handleListTools)
	s.app.Post("/tools/:name", s.handleToolCall)
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: "Something went wrong, try again later",
	})
}

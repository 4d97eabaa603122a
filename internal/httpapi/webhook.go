package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sandeepkv93/todobot/internal/nlu"
	"github.com/sandeepkv93/todobot/internal/reply"
)

func (s *Server) handleWebhook(c *fiber.Ctx) error {
	var req WebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.From) == "" || strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Both from and text are required",
		})
	}

	requestID := uuid.NewString()
	cmd := nlu.Parse(req.Text)
	out, err := s.svc.Dispatch(c.UserContext(), req.From, cmd)
	if err != nil {
		s.log.Error("webhook dispatch failed",
			"request_id", requestID, "intent", cmd.Intent, "err", err)
		return internalError(c)
	}

	s.log.Info("webhook message handled",
		"request_id", requestID, "intent", cmd.Intent, "outcome", out.Kind)
	return c.JSON(WebhookResponse{Status: "ok", Reply: reply.Format(out)})
}

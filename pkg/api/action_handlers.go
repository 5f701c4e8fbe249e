package api

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/agent-motor/controller/domain/motor"
	"github.com/agent-motor/controller/pkg/actions"
	customlog "github.com/agent-motor/controller/pkg/log"
)

// ActionHandler holds dependencies for the action submission endpoints.
type ActionHandler struct {
	motorService *motor.MotorService
	logger       customlog.Logger
}

func NewActionHandler(motorService *motor.MotorService, logger customlog.Logger) *ActionHandler {
	return &ActionHandler{
		motorService: motorService,
		logger:       logger,
	}
}

// RegisterActionRoutes registers the action API endpoints with the Fiber app.
func RegisterActionRoutes(app *fiber.App, motorService *motor.MotorService, logger customlog.Logger) {
	h := NewActionHandler(motorService, logger)

	apiGroup := app.Group("/api/v1/actions")
	apiGroup.Get("/", h.handleListActions)
	apiGroup.Post("/", h.handleSubmitAction)

	logger.Infof("Registered action API endpoints under /api/v1/actions")
}

// handleListActions returns the closed action vocabulary.
func (h *ActionHandler) handleListActions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"actions": actions.Names(),
	})
}

// handleSubmitAction accepts a wire action object in the request body,
// decodes it and queues it for execution.
func (h *ActionHandler) handleSubmitAction(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "Request body cannot be empty."})
	}

	action, err := actions.DecodeJSON(body)
	if err != nil {
		h.logger.Warnf("Rejected action submission: %v", err)
		status := http.StatusBadRequest
		if errors.Is(err, actions.ErrUnknownAction) {
			status = http.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
	}

	commandID, err := h.motorService.Submit(action)
	if err != nil {
		h.logger.Errorf("Failed to submit %s: %v", action.Name(), err)
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.Status(http.StatusAccepted).JSON(SubmitResponse{
		CommandID: commandID,
		Action:    action.Name(),
		AgentID:   action.AgentID(),
		Status:    "accepted",
	})
}

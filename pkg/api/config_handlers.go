package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	customlog "github.com/agent-motor/controller/pkg/log"
	"github.com/agent-motor/controller/services"
)

// ConfigHandler holds dependencies for configuration API endpoints.
type ConfigHandler struct {
	configService services.MotorConfigService
	logger        customlog.Logger
}

func NewConfigHandler(configService services.MotorConfigService, logger customlog.Logger) *ConfigHandler {
	if configService == nil {
		panic("ConfigService cannot be nil in NewConfigHandler")
	}
	if logger == nil {
		panic("Logger cannot be nil in NewConfigHandler")
	}
	return &ConfigHandler{
		configService: configService,
		logger:        logger,
	}
}

// RegisterConfigRoutes registers the configuration API endpoints with the Fiber app.
func RegisterConfigRoutes(app *fiber.App, configService services.MotorConfigService, logger customlog.Logger) {
	h := NewConfigHandler(configService, logger)

	apiGroup := app.Group("/api/v1/config")
	apiGroup.Get("/motor", h.handleGetMotorConfig)
	apiGroup.Put("/motor", h.handleUpdateMotorConfig)

	logger.Infof("Registered motor configuration API endpoints under /api/v1/config")
}

// handleGetMotorConfig serves the current motor config as raw YAML.
func (h *ConfigHandler) handleGetMotorConfig(c *fiber.Ctx) error {
	yamlData, err := h.configService.GetCurrentConfigYAML()
	if err != nil {
		h.logger.Errorf("Failed to get current motor config YAML: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve configuration: %v", err),
		})
	}

	if len(yamlData) == 0 {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "Motor configuration not found or not yet set.",
		})
	}

	c.Set(fiber.HeaderContentType, "application/x-yaml")
	return c.Send(yamlData)
}

// handleUpdateMotorConfig applies a new motor config from the request body.
func (h *ConfigHandler) handleUpdateMotorConfig(c *fiber.Ctx) error {
	newConfigYAML := c.Body()
	if len(newConfigYAML) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "Request body cannot be empty.",
		})
	}

	if err := h.configService.UpdateConfig(newConfigYAML); err != nil {
		h.logger.Errorf("Failed to update motor configuration: %v", err)
		if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "invalid YAML") {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error: fmt.Sprintf("Configuration update failed: %v", err),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: fmt.Sprintf("Internal server error during configuration update: %v", err),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Motor configuration updated successfully.",
	})
}

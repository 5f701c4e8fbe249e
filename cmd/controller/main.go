package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/agent-motor/controller/domain/diagnostic"
	"github.com/agent-motor/controller/domain/motor"
	"github.com/agent-motor/controller/pkg/api"
	"github.com/agent-motor/controller/pkg/config"
	customlog "github.com/agent-motor/controller/pkg/log"
	"github.com/agent-motor/controller/pkg/processing"
	"github.com/agent-motor/controller/pkg/zeromq"
	"github.com/agent-motor/controller/services"
)

// liveTopics resolves agent topics against whatever config is currently
// active, so topic changes apply without a restart.
type liveTopics struct {
	configService services.MotorConfigService
}

func (t liveTopics) AgentTopic(agentID string) string {
	if cfg := t.configService.GetCurrent(); cfg != nil {
		return cfg.AgentTopic(agentID)
	}
	return "motor.agent." + agentID
}

func main() {
	configDir := flag.String("config", "./config", "Directory containing motord_config.yaml")
	flag.Parse()

	bootstrapCfg, err := config.LoadBootstrapConfig(*configDir)
	if err != nil {
		stdlog.Fatalf("Failed to load bootstrap config: %v", err)
	}

	logger, err := customlog.NewLogrusLogger(bootstrapCfg.Logging.Level, bootstrapCfg.Logging.LogPath)
	if err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}

	zmqLogger := stdlog.New(os.Stdout, "[zmq] ", stdlog.LstdFlags)

	// Operational motor config: the fleet and the action routing table.
	motorConfigPath := filepath.Join(bootstrapCfg.Data.Directory, bootstrapCfg.Data.MotorConfigFilename)
	configService, err := services.NewMotorConfigService(motorConfigPath, logger)
	if err != nil {
		logger.Fatalf("Failed to create motor config service: %v", err)
	}

	registry := processing.NewActionRegistry(logger)
	if cfg := configService.GetCurrent(); cfg != nil {
		registry.LoadFromConfig(cfg)
	}
	configService.OnUpdate(registry.LoadFromConfig)

	// ZeroMQ transport: REP command socket plus PUB fan-out.
	zmqService, err := zeromq.NewZeroMQService(
		bootstrapCfg.ZeroMQ.CommandBindAddress,
		bootstrapCfg.ZeroMQ.PublishBindAddress,
		zmqLogger,
	)
	if err != nil {
		logger.Fatalf("Failed to create ZeroMQ service: %v", err)
	}

	configService.SetPublisher(zeromq.NewConfigPublisher(zmqService.Sender, zmqLogger))
	zeromq.RegisterConfigHandlers(zmqService, configService, zmqLogger)

	// Action execution pipeline: director routes jobs by priority, the
	// remote actuator publishes them to per-agent topics, acks go out on
	// the shared ack topic.
	director := processing.NewActionDirector(logger, registry, &processing.DirectorOptions{
		DefaultQueueSize: bootstrapCfg.Processing.QueueSize,
	})
	director.Initialize(
		workerCount(bootstrapCfg.Processing.HighPriorityWorkers, 2),
		workerCount(bootstrapCfg.Processing.StandardPriorityWorkers, 4),
		workerCount(bootstrapCfg.Processing.LowPriorityWorkers, 2),
	)

	actuator := zeromq.NewRemoteActuator(zmqService.Sender, liveTopics{configService}, zmqLogger)
	executor := processing.NewActuatorExecutor(logger, actuator)
	director.SetProcessor(executor.CreateProcessorFunc())

	ackHandler := processing.NewAckResultHandler(logger, zmqService.Sender)
	director.SetResultHandler(ackHandler.CreateHandlerFunc())

	director.Start()
	zmqService.Start()

	motorService := motor.NewMotorService(configService, director, logger)
	zmqService.Dispatcher.RegisterHandler(zeromq.MsgTypeActionSubmit, zeromq.NewActionSubmitHandler(motorService, zmqLogger))

	diagnosticService := diagnostic.NewDiagnosticService(director, registry)

	var statusListener *zeromq.StatusListener
	if addr := bootstrapCfg.ZeroMQ.StatusBindAddress; addr != "" {
		statusListener, err = zeromq.NewStatusListener(addr, diagnosticService, zmqLogger)
		if err != nil {
			logger.Fatalf("Failed to create status listener: %v", err)
		}
		statusListener.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      "Motor Controller",
		ErrorHandler: customErrorHandler,
	})
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "online",
			"service": "motor controller",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api.RegisterActionRoutes(app, motorService, logger)
	api.RegisterConfigRoutes(app, configService, logger)

	diagnosticRoutes := app.Group("/api/v1/diagnostics")
	diagnosticRoutes.Get("/", diagnosticService.GetMetricsHandler)
	diagnosticRoutes.Get("/agents", diagnosticService.GetAgentsHandler)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/control", websocket.New(func(conn *websocket.Conn) {
		api.ActionWebSocketHandler(conn, logger, motorService)
	}))

	port := bootstrapCfg.Server.HTTPPort
	if port == 0 {
		port = 8080
	}

	go func() {
		logger.Infof("Server starting on port %d", port)
		if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	director.Stop()
	if statusListener != nil {
		statusListener.Close()
	}
	if err := zmqService.Close(); err != nil {
		logger.Errorf("Error closing ZeroMQ service: %v", err)
	}

	logger.Infof("Controller exited properly")
}

func workerCount(configured, fallback int) int {
	if configured > 0 {
		return configured
	}
	return fallback
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// Package main is the entry point of the application
package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tecu23/piece-color/internal/auth"
	"github.com/tecu23/piece-color/pkg/config"
	"github.com/tecu23/piece-color/pkg/events"
	"github.com/tecu23/piece-color/pkg/server"
)

// App encapsulates global dependencies
type application struct {
	Auth      *auth.APIKeyAuth
	Logger    *zap.Logger
	Config    *config.Config
	Publisher *events.Publisher
	Hub       *server.Hub
	Server    *http.Server
	Upgrader  websocket.Upgrader

	StartTime time.Time
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	port := flag.String("port", "8080", "server port")
	flag.Parse()

	// Initialize logger
	logger := initLogger(*debug)
	defer logger.Sync()

	cfg, err := config.Load(*debug, *port)
	if err != nil {
		logger.Fatal("loading config error", zap.Error(err))
	}

	if len(cfg.APIKeys) == 0 {
		logger.Warn("API_KEYS is empty, websocket connections will be rejected")
	}

	app := newApplication(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go app.Hub.Run(ctx)

	err = app.serve(cancel)
	if err != nil {
		logger.Fatal("error serving", zap.Error(err))
	}
}

func newApplication(cfg *config.Config, logger *zap.Logger) *application {
	publisher := events.NewPublisher()
	publisher.SubscribeAll(func(ev events.Event) {
		logger.Debug("event",
			zap.String("type", string(ev.Type)),
			zap.String("connection_id", ev.ConnectionID),
			zap.Any("payload", ev.Payload),
		)
	})

	return &application{
		Auth:      auth.NewAPIKeyAuth(cfg.APIKeys),
		Logger:    logger,
		Config:    cfg,
		Publisher: publisher,
		Hub:       server.NewHub(publisher, logger),
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,

			CheckOrigin: func(r *http.Request) bool {
				if cfg.FrontendOrigin == "" {
					return true
				}
				return cfg.FrontendOrigin == r.Header.Get("Origin")
			},
		},
		StartTime: time.Now(),
	}
}

func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	return logger
}

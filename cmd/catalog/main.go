package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/emzola/catalog/clients"
	"github.com/emzola/catalog/config"
	"github.com/emzola/catalog/handler"
	"github.com/emzola/catalog/internal/jsonlog"
	"github.com/emzola/catalog/repository"
	"github.com/emzola/catalog/service"
	"github.com/emzola/catalog/view"
	"github.com/joho/godotenv"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	logger  *jsonlog.Logger
	service service.Service
	handler *handler.Handler
}

// @title  Catalog API
// @version 1.0.0
// @description JSON endpoints of the library catalog UI: the session's catalog state and service health.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /
func main() {
	var (
		configPath  string
		port        int
		env         string
		apiURL      string
		printConfig bool
		seed        bool
	)
	flag.StringVar(&configPath, "config", "config.yml", "Path to the YAML configuration file")
	flag.IntVar(&port, "port", 0, "HTTP server port")
	flag.StringVar(&env, "env", "", "Environment (development|staging|production)")
	flag.StringVar(&apiURL, "api-url", "", "Base URL of the books API")
	flag.BoolVar(&printConfig, "print-config", false, "Print the effective configuration and exit")
	flag.BoolVar(&seed, "seed", false, "Create the sample catalog when the books API is empty")
	flag.Parse()

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// A missing .env file is fine: the environment may already be set.
	if err := godotenv.Load(); err == nil {
		logger.PrintInfo("loaded environment from .env", nil)
	}

	// Initialize configuration
	cfg, err := config.Decode(configPath)
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if env != "" {
		cfg.Server.Env = env
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if seed {
		cfg.Seed.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}
	if printConfig {
		if err := cfg.Dump(os.Stdout); err != nil {
			logger.PrintFatal(err, nil)
			os.Exit(1)
		}
		return
	}

	level, err := jsonlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}
	logger = jsonlog.New(os.Stdout, level)
	logger.PrintInfo("configuration loaded", map[string]string{
		"file":    configPath,
		"api_url": cfg.API.BaseURL,
	})

	// Books API client
	repo, err := repository.New(cfg.API.BaseURL, clients.NewHTTPClient())
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}

	views, err := view.NewRenderer()
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}

	// Browser sessions, each holding one catalog screen
	sessions := handler.NewSessionStore(cfg.Session.TTL)
	go sessions.Start()
	defer sessions.Stop()

	// Application layers
	service := service.New(cfg, logger, repo)
	handler := handler.New(cfg, logger, sessions, service, views)

	app := &app{
		config:  cfg,
		logger:  logger,
		service: service,
		handler: handler,
	}

	if cfg.Seed.Enabled {
		app.seed()
	}

	// Start HTTP server
	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}
}

// seed fills an empty books API with the sample catalog. Failure is logged and the
// server starts anyway.
func (a *app) seed() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := a.service.Seed(ctx)
	if err != nil {
		a.logger.PrintError(err, map[string]string{"action": "seed"})
		return
	}
	if n == 0 {
		a.logger.PrintInfo("books API already holds books; skipping seed", nil)
		return
	}
	a.logger.PrintInfo("seeded sample catalog", map[string]string{"books": strconv.Itoa(n)})
}

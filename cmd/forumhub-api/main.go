package main

import (
	"flag"
	"net/http"
	"os"
	"strconv"

	"github.com/forumhub-dev/forumhub/internal/config"
	"github.com/forumhub-dev/forumhub/internal/logger"
	"github.com/forumhub-dev/forumhub/internal/router"
	"github.com/forumhub-dev/forumhub/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = strconv.Itoa(cfg.Public.HttpPort)
	}

	logger.Log.Info("server started", "port", httpPort)
	if err := http.ListenAndServe(":"+httpPort, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

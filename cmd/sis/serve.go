package main

import (
	"net/http"
	"time"

	sisapp "github.com/mozgsvina/sis-app"
	"github.com/mozgsvina/sis-app/config"
	"github.com/mozgsvina/sis-app/server"
	"github.com/mozgsvina/sis-app/wordcloud"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the exploration dashboard over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := sisapp.NewTextLogger(parseLogLevel(cfg.LogLevel))

	store, err := cfg.OpenStore(cmd.Context())
	if err != nil {
		return err
	}

	exp, err := sisapp.Open(cmd.Context(), sisapp.Source{
		Store:          store,
		AnnotationsKey: cfg.AnnotationsKey,
		FrequenciesKey: cfg.FrequenciesKey,
	}, sisapp.WithLogger(logger))
	if err != nil {
		return err
	}

	var renderer *wordcloud.Renderer
	if cfg.WordCloudFont != "" {
		renderer = wordcloud.NewRenderer(wordcloud.RenderConfig{FontFile: cfg.WordCloudFont})
	}

	srv := server.New(exp, server.Options{
		Renderer:      renderer,
		ExportLimiter: rate.NewLimiter(rate.Limit(cfg.ExportPerMinute/60), cfg.ExportBurst),
		Logger:        logger,
	})

	logger.Info("dashboard listening", "addr", cfg.Addr)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpSrv.ListenAndServe()
}

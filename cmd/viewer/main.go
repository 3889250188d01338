package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"locomotion/internal/locomotion"
	"locomotion/internal/viewer"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "controller config YAML (defaults when empty)")
	scenePath := flag.String("scene", "", "scene YAML (built-in playground when empty)")
	watchFiles := flag.Bool("watch", false, "reload the scene and config when they change")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := locomotion.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = locomotion.LoadConfig(*configPath); err != nil {
			log.WithError(err).Fatal("load config")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	v := viewer.New(viewer.Options{
		Config:     cfg,
		ConfigPath: *configPath,
		ScenePath:  *scenePath,
		Watch:      *watchFiles,
		Log:        log,
	})
	if err := v.Run(ctx); err != nil {
		log.WithError(err).Error("viewer")
		stop()
		os.Exit(1)
	}
}

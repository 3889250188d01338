// locosim plays a scripted input timeline through the locomotion controller
// without a window and prints what the actor did.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"locomotion/internal/locomotion"
	"locomotion/internal/scenefile"
	"locomotion/internal/sim"
	"locomotion/internal/watch"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// exit is replaced in tests.
var exit = os.Exit

func main() {
	configPath := flag.String("config", "", "controller config YAML (defaults when empty)")
	scenePath := flag.String("scene", "", "scene YAML (built-in playground when empty)")
	scriptPath := flag.String("script", "", "input script YAML (built-in tour when empty)")
	dt := flag.Float64("dt", float64(sim.DefaultDT), "fixed step in seconds")
	watchFiles := flag.Bool("watch", false, "re-run whenever an input file changes")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.WithError(err).Warn("sentry init failed")
		}
		defer sentry.Flush(2 * time.Second)
		defer sentry.Recover()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := runOptions{
		configPath: *configPath,
		scenePath:  *scenePath,
		scriptPath: *scriptPath,
		dt:         float32(*dt),
		log:        log,
	}
	if err := opts.runOnce(ctx); err != nil {
		if !*watchFiles {
			fail(log, stop, err, "run failed")
		}
		log.WithError(err).Error("run failed")
	}
	if *watchFiles {
		if err := opts.watch(ctx); err != nil {
			fail(log, stop, err, "watch failed")
		}
	}
}

// fail reports err and exits. os.Exit skips deferred calls, so the signal
// handler is released and Sentry flushed here.
func fail(log *logrus.Logger, stop context.CancelFunc, err error, msg string) {
	sentry.CaptureException(err)
	log.WithError(err).Error(msg)
	stop()
	sentry.Flush(2 * time.Second)
	exit(1)
}

type runOptions struct {
	configPath string
	scenePath  string
	scriptPath string
	dt         float32
	log        *logrus.Logger
}

func (o runOptions) runOnce(ctx context.Context) error {
	cfg := locomotion.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = locomotion.LoadConfig(o.configPath); err != nil {
			return err
		}
	}

	var sf *scenefile.SceneFile
	var err error
	if o.scenePath != "" {
		sf, err = scenefile.Load(o.scenePath)
	} else {
		sf, err = sim.DefaultScene()
	}
	if err != nil {
		return err
	}

	var script *sim.Script
	if o.scriptPath != "" {
		script, err = sim.LoadScript(o.scriptPath)
	} else {
		script, err = sim.DefaultScript()
	}
	if err != nil {
		return err
	}

	r := &sim.Runner{Config: cfg, Scene: sf, Script: script, DT: o.dt, Log: o.log}
	report, err := r.Run(ctx)
	fmt.Print(report)
	return err
}

func (o runOptions) watch(ctx context.Context) error {
	var paths []string
	for _, p := range []string{o.configPath, o.scenePath, o.scriptPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return errors.New("-watch needs at least one of -config, -scene or -script")
	}

	w, err := watch.NewWatcher(paths...)
	if err != nil {
		return err
	}
	defer w.Close()
	o.log.WithField("paths", paths).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			o.log.WithField("path", path).Info("changed, re-running")
			if err := o.runOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				o.log.WithError(err).Error("run failed")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			o.log.WithError(err).Warn("watch error")
		}
	}
}

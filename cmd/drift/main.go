// Command drift runs the drift driving game in a desktop window.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"

	"drift/internal/config"
	"drift/internal/game"
)

func main() {
	configPath := flag.String("config", "drift.ini", "path to the INI config file")
	track := flag.Int("track", 0, "starting track, overrides the config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if dsn := os.Getenv("DRIFT_SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.WithError(err).Warn("sentry init failed")
		} else {
			defer sentry.Flush(2 * time.Second)
			defer func() {
				if err := recover(); err != nil {
					hub := sentry.CurrentHub().Clone()
					hub.ConfigureScope(func(scope *sentry.Scope) {
						scope.SetTag("component", "frame_loop")
					})
					hub.Recover(err)
					hub.Flush(5 * time.Second)
					panic(err)
				}
			}()
		}
	}

	if addr := os.Getenv("DRIFT_STATSVIEW"); addr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		log.WithField("addr", addr).Info("statsview enabled")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Error("config")
		os.Exit(1)
	}
	if *track > 0 {
		cfg.Track = *track
	}

	fmt.Println("Controls:")
	for _, line := range cfg.Controls() {
		fmt.Println("  " + line)
	}
	fmt.Println("  quit:    escape")

	if err := game.RunDesktop(cfg, log); err != nil {
		log.WithError(err).Error("drift exited")
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

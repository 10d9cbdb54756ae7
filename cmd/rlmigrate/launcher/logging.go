package launcher

import (
	"fmt"
	"strings"

	"github.com/evalphobia/logrus_sentry"
	log "github.com/sirupsen/logrus"
)

func setupLogging(cfg LoggingConfig) error {
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
		})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", cfg.Format)
	}

	log.SetLevel(verbosityToLevel(cfg.Verbosity))

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []log.Level{
			log.PanicLevel,
			log.FatalLevel,
			log.ErrorLevel,
		})
		if err != nil {
			return fmt.Errorf("sentry hook: %v", err)
		}
		log.AddHook(hook)
	}
	return nil
}

func verbosityToLevel(v int) log.Level {
	switch {
	case v <= 0:
		return log.FatalLevel
	case v == 1:
		return log.ErrorLevel
	case v == 2:
		return log.WarnLevel
	case v == 3:
		return log.InfoLevel
	case v == 4:
		return log.DebugLevel
	default:
		return log.TraceLevel
	}
}

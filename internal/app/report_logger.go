package app

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/introspection"
)

// ReportLoggerIntrospector logs which configuration keys the application
// resolved and which fell back to their defaults.
type ReportLoggerIntrospector struct {
}

// Introspect writes the configuration accesses of the report to the standard logger.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	for _, cfg := range r.Configs {
		if cfg.UsedDefault {
			log.Printf("config %s: using default value", cfg.Key)
		} else {
			log.Printf("config %s: set", cfg.Key)
		}
	}
	return nil
}

package bloch

import (
	"time"

	"github.com/sirupsen/logrus"
)

// drainStats holds per-frame dispatch metrics.
// Only logged when Config.Debug is true.
type drainStats struct {
	events    int
	claims    int
	releases  int
	drainTime time.Duration
}

// newLogger derives the engine's log entry from the configured logger.
// Debug mode raises a *logrus.Logger to debug level.
func newLogger(cfg Config) *logrus.Entry {
	if cfg.Debug {
		if l, ok := cfg.Logger.(*logrus.Logger); ok && l.GetLevel() < logrus.DebugLevel {
			l.SetLevel(logrus.DebugLevel)
		}
	}
	return cfg.Logger.WithField("component", "bloch")
}

// debugLog writes the frame's drain stats.
func (e *Engine) debugLog(stats drainStats) {
	if !e.cfg.Debug || stats.events == 0 {
		return
	}
	e.log.WithFields(logrus.Fields{
		"events":   stats.events,
		"claims":   stats.claims,
		"releases": stats.releases,
		"drain":    stats.drainTime,
	}).Debug("frame drained")
}

package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/coursegen"
)

// Ensure LoggingSectionLocator implements coursegen.SectionLocator.
var _ coursegen.SectionLocator = (*LoggingSectionLocator)(nil)

// LoggingSectionLocator wraps a SectionLocator with logging of the region
// found.
type LoggingSectionLocator struct {
	next   coursegen.SectionLocator
	logger *slog.Logger
}

// NewLoggingSectionLocator creates a new LoggingSectionLocator.
func NewLoggingSectionLocator(next coursegen.SectionLocator, logger *slog.Logger) *LoggingSectionLocator {
	return &LoggingSectionLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator and logs the operation.
func (l *LoggingSectionLocator) Locate(doc []byte, tag, id string) (region coursegen.Region, err error) {
	defer func(begin time.Time) {
		l.logger.Info("locate section",
			"tag", tag,
			"id", id,
			"start", region.Start,
			"end", region.End,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Locate(doc, tag, id)
}

package rest

import (
	"context"
	"time"

	"amigofiel/internal/domain"
	"amigofiel/internal/logger"
)

// Reporter periodically logs how many requests the stub has taken.
type Reporter struct {
	rec      *Recorder
	log      logger.Logger
	interval time.Duration
}

func NewReporter(rec *Recorder, log logger.Logger, interval time.Duration) *Reporter {
	return &Reporter{rec: rec, log: log, interval: interval}
}

func (r *Reporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := -1
	for {
		select {
		case <-ctx.Done():
			r.report()
			return nil
		case <-ticker.C:
			if n := r.rec.Len(); n != last {
				last = n
				r.report()
			}
		}
	}
}

func (r *Reporter) report() {
	r.log.Info("stub: requests received",
		"signup", r.rec.Count(domain.SignupPath),
		"login", r.rec.Count(domain.LoginPath),
	)
}

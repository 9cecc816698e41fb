package runtime

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Presenter consumes a sample's output. Presentation is opaque to the
// samples; they only choose between the two calls.
type Presenter interface {
	WriteRecord(v any) error
	WriteLine(text string) error
}

// Summary describes one completed run.
type Summary struct {
	RunID    uuid.UUID
	Sample   string
	Records  int
	Lines    int
	Duration time.Duration
}

// Runner drives sample streams into a presenter.
type Runner struct {
	presenter Presenter
	logger    zerolog.Logger
}

// NewRunner creates a Runner writing to p.
func NewRunner(p Presenter, logger zerolog.Logger) *Runner {
	return &Runner{
		presenter: p,
		logger:    logger,
	}
}

// Run consumes stream exactly once. Stream failures come back wrapped in
// a *SampleError; presenter failures are returned as write errors.
func (r *Runner) Run(name string, stream Stream) (Summary, error) {
	summary := Summary{
		RunID:  uuid.New(),
		Sample: name,
	}
	log := r.logger.With().
		Str("sample", name).
		Str("run_id", summary.RunID.String()).
		Logger()

	log.Debug().Msg("sample started")
	start := time.Now()

	for item, err := range stream {
		if err != nil {
			summary.Duration = time.Since(start)
			log.Error().Err(err).Int("records", summary.Records).Msg("sample failed")
			return summary, &SampleError{Sample: name, Err: err}
		}

		switch item.Kind {
		case KindLine:
			if err := r.presenter.WriteLine(item.Text()); err != nil {
				return summary, fmt.Errorf("failed to write line: %w", err)
			}
			summary.Lines++
		default:
			if err := r.presenter.WriteRecord(item.Value); err != nil {
				return summary, fmt.Errorf("failed to write record: %w", err)
			}
			summary.Records++
		}
	}

	summary.Duration = time.Since(start)
	log.Debug().
		Int("records", summary.Records).
		Int("lines", summary.Lines).
		Dur("duration", summary.Duration).
		Msg("sample finished")

	return summary, nil
}

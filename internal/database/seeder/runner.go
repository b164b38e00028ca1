package seeder

import (
	"context"
	"fmt"

	"pcd-jobs/internal/logging"
)

type Runner struct {
	Seeders []Seeder
	Logger  logging.Logger
}

func (r Runner) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info(ctx, "seeder finished", "seeder", s.Name())
	}
	return nil
}

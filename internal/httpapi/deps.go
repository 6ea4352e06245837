package httpapi

import (
	"context"

	"noticegen/internal/config"
	"noticegen/internal/logger"
	"noticegen/internal/render"
)

// Drafter writes notice bodies; nil disables POST /draft.
type Drafter interface {
	Draft(ctx context.Context, prompt string) ([]string, error)
}

type Deps struct {
	Renderer *render.Renderer
	Drafter  Drafter
	Logger   logger.Logger
	Metrics  *Metrics

	// Server settings (max body size, form override)
	Config config.Config
}

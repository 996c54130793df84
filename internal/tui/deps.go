package tui

import (
	"context"

	"github.com/ivanpetrovic/brio/internal/dashboard"
)

type Deps struct {
	Ctx    context.Context
	Loader *dashboard.Loader
}

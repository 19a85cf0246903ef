package analysis

import (
	"smart-notes/pkg/clock"
	"smart-notes/pkg/datemath"
	pkgLog "smart-notes/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	completer Completer
	dates     *datemath.Resolver
	clock     clock.Clock
}

// New creates a new analysis UseCase instance.
func New(l pkgLog.Logger, completer Completer, dates *datemath.Resolver, clk clock.Clock) UseCase {
	return &implUseCase{
		l:         l,
		completer: completer,
		dates:     dates,
		clock:     clk,
	}
}

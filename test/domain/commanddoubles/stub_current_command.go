//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/commands"
)

// StubCurrentCommand is a stub implementation of commands.Current.
type StubCurrentCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.CurrentOptions
}

var _ commands.Current = (*StubCurrentCommand)(nil)

func (s *StubCurrentCommand) Execute(
	_ context.Context,
	opts commands.CurrentOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

package downcast

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Run prints a Son through NarrowPrint and then a SecondSon through
// DispatchPrint, writing both labels to w.
// A nil logger falls back to slog.Default().
func Run(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	s := &Son{}
	logger.DebugContext(ctx, "narrowing", "type", fmt.Sprintf("%T", s))
	if err := NarrowPrint(w, s); err != nil {
		return fmt.Errorf("narrow print: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	ss := &SecondSon{}
	logger.DebugContext(ctx, "dispatching", "type", fmt.Sprintf("%T", ss))
	if err := DispatchPrint(w, ss); err != nil {
		return fmt.Errorf("dispatch print: %w", err)
	}
	return nil
}

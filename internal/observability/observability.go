package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/lepakko/Six-Kings/internal/config"
	"github.com/lepakko/Six-Kings/internal/platform/logging"
)

// Setup starts tracing, profiling and the pprof server as configured and
// returns one shutdown func that stops them in reverse order.
func Setup(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	pprofServer, err := StartPprofServer(cfg, logger)
	if err != nil {
		_ = stopProfiler()
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("start pprof server: %w", err)
	}

	return func(ctx context.Context) error {
		return errors.Join(
			StopPprofServer(ctx, pprofServer, logger),
			stopProfiler(),
			shutdownTracing(ctx),
		)
	}, nil
}

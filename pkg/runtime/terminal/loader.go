package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/ipo-report/pkg/services/config"
	"github.com/de-tools/ipo-report/pkg/services/report"
)

const defaultLoadTimeout = 30 * time.Second

// ProfileLoader reads the report named by a profile in an ini profile file.
type ProfileLoader struct {
	Timeout time.Duration
}

func (l ProfileLoader) Load(ctx context.Context, configPath, profile string) (report.Service, error) {
	registry, err := config.NewRegistry(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile registry: %w", err)
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	return report.Open(ctx, registry, profile, timeout)
}

package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/ipo-report/pkg/adapters"
	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/de-tools/ipo-report/pkg/services/config"
	"github.com/de-tools/ipo-report/pkg/store/source"
	"github.com/rs/zerolog"
)

// Load fetches and maps the report once. Any failure is final; callers are
// expected to abort rather than retry.
func Load(ctx context.Context, src source.Source) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	doc, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load report from %s: %w", src.Describe(), err)
	}

	r := adapters.MapStoreReportToDomain(doc)
	logger.Info().
		Str("source", src.Describe()).
		Str("generated_at", r.GeneratedAt).
		Int("stocks", len(r.Stocks)).
		Int("accounts", len(r.Accounts)).
		Int("special_range", len(r.SpecialRange)).
		Int("missing_records", len(r.MissingRecords)).
		Msg("report loaded")

	return r, nil
}

// Open resolves profile in registry and loads its report within timeout.
func Open(ctx context.Context, registry config.Registry, profile string, timeout time.Duration) (Service, error) {
	p, err := registry.GetProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}

	src, err := source.New(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("failed to create report source: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return NewService(r), nil
}

package commands

import (
	"context"
	"time"

	fileexport "github.com/de-tools/ipo-report/pkg/services/export"
	"github.com/de-tools/ipo-report/pkg/services/report"
)

// Loader resolves a profile from a profile file and loads its report.
type Loader interface {
	Load(ctx context.Context, configPath, profile string) (report.Service, error)
}

// Session carries the global flags and the report loaded for one invocation.
type Session struct {
	ConfigPath string
	Profile    string

	// Now dates export file names.
	Now        func() time.Time
	Serializer fileexport.Serializer

	loader Loader
	svc    report.Service
}

func NewSession(loader Loader) *Session {
	return &Session{
		Now:        time.Now,
		Serializer: fileexport.NewXLSXSerializer(),
		loader:     loader,
	}
}

// Service loads the report on first use.
func (s *Session) Service(ctx context.Context) (report.Service, error) {
	if s.svc != nil {
		return s.svc, nil
	}
	svc, err := s.loader.Load(ctx, s.ConfigPath, s.Profile)
	if err != nil {
		return nil, err
	}
	s.svc = svc
	return svc, nil
}

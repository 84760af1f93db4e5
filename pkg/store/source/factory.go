package source

import (
	"context"
	"fmt"

	"github.com/de-tools/ipo-report/pkg/services/config"
	"github.com/de-tools/ipo-report/pkg/store/client"
)

// New builds the source described by a profile.
func New(ctx context.Context, p config.Profile) (Source, error) {
	switch p.Source {
	case config.SourceFile, "":
		if p.Path == "" {
			return nil, fmt.Errorf("profile %q: path is required for a file source", p.Name)
		}
		return NewFileSource(p.Path), nil
	case config.SourceS3:
		if p.Bucket == "" || p.Key == "" {
			return nil, fmt.Errorf("profile %q: bucket and key are required for an s3 source", p.Name)
		}
		c, err := client.NewS3Client(ctx, p.Region)
		if err != nil {
			return nil, err
		}
		return NewS3Source(c, p.Bucket, p.Key), nil
	default:
		return nil, fmt.Errorf("profile %q: unsupported source %q", p.Name, p.Source)
	}
}

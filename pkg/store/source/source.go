package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/ipo-report/pkg/models/store"
)

// Source fetches the report document. It is called once per process.
type Source interface {
	Load(ctx context.Context) (*store.ReportDocument, error)
	Describe() string
}

// Decode parses a report document.
func Decode(r io.Reader) (*store.ReportDocument, error) {
	var doc store.ReportDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode report document: %w", err)
	}
	return &doc, nil
}

type fileSource struct {
	path string
}

func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Load(_ context.Context) (*store.ReportDocument, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func (s *fileSource) Describe() string {
	return "file://" + s.path
}

// ObjectGetter is the part of the S3 client the object source needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

func NewS3Source(client ObjectGetter, bucket, key string) Source {
	return &s3Source{client: client, bucket: bucket, key: key}
}

func (s *s3Source) Load(ctx context.Context) (*store.ReportDocument, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	return Decode(out.Body)
}

func (s *s3Source) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

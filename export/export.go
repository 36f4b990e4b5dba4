// Package export writes scan reports to local files or S3 for archival.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Pfoerd/pitest/report"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Marshal renders a report as indented JSON.
func Marshal(rep *report.Report) ([]byte, error) {
	return json.MarshalIndent(rep, "", "  ")
}

// WriteFile writes a report as indented JSON to the given path.
func WriteFile(path string, rep *report.Report) error {
	data, err := Marshal(rep)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// objectPutter is the part of the S3 API the uploader uses.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 uploads reports to an S3 bucket.
type S3 struct {
	client objectPutter
}

// NewS3 creates an uploader using the default AWS configuration chain
// (environment, shared config, instance role).
func NewS3(ctx context.Context) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: load aws config: %w", err)
	}
	return &S3{client: s3.NewFromConfig(cfg)}, nil
}

// Upload writes the report to the location named by an s3://bucket/key
// URI.
func (e *S3) Upload(ctx context.Context, uri string, rep *report.Report) error {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return err
	}
	data, err := Marshal(rep)
	if err != nil {
		return err
	}
	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("export: put s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

// ParseURI splits an s3://bucket/key URI into its bucket and key.
func ParseURI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("export: not an s3 uri: %q", uri)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("export: s3 uri missing bucket or key: %q", uri)
	}
	return bucket, key, nil
}

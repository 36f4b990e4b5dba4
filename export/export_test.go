package export

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pfoerd/pitest/report"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

func sampleReport() *report.Report {
	return &report.Report{
		ID:             "109156be-c4fb-41ea-b1b4-efe1671c5836",
		GeneratedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Source:         "Widget.javap",
		ScannedClasses: 1,
		ScannedMethods: 2,
		Classes: []report.ClassReport{
			{
				Name: "com.example.Widget",
				Methods: []report.MethodReport{
					{Name: "first", Lines: []int{9}},
				},
			},
		},
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteFile(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded report.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	want := sampleReport()
	require.Equal(t, want.ID, decoded.ID)
	require.True(t, decoded.GeneratedAt.Equal(want.GeneratedAt))
	require.Equal(t, want.Source, decoded.Source)
	require.Equal(t, want.ScannedClasses, decoded.ScannedClasses)
	require.Equal(t, want.ScannedMethods, decoded.ScannedMethods)
	require.Equal(t, want.Classes, decoded.Classes)
}

type fakePutter struct {
	input *s3.PutObjectInput
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	return &s3.PutObjectOutput{}, nil
}

func TestS3Upload(t *testing.T) {
	putter := &fakePutter{}
	uploader := &S3{client: putter}

	err := uploader.Upload(context.Background(), "s3://reports/ci/widget.json", sampleReport())
	require.NoError(t, err)
	require.NotNil(t, putter.input)
	require.Equal(t, "reports", *putter.input.Bucket)
	require.Equal(t, "ci/widget.json", *putter.input.Key)
	require.Equal(t, "application/json", *putter.input.ContentType)

	body, err := io.ReadAll(putter.input.Body)
	require.NoError(t, err)

	var decoded report.Report
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Equal(t, "109156be-c4fb-41ea-b1b4-efe1671c5836", decoded.ID)
}

func TestS3UploadBadURI(t *testing.T) {
	uploader := &S3{client: &fakePutter{}}
	err := uploader.Upload(context.Background(), "http://reports/widget.json", sampleReport())
	require.Error(t, err)
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{uri: "s3://reports/widget.json", bucket: "reports", key: "widget.json"},
		{uri: "s3://reports/ci/2026/widget.json", bucket: "reports", key: "ci/2026/widget.json"},
		{uri: "s3://reports", wantErr: true},
		{uri: "s3://reports/", wantErr: true},
		{uri: "s3:///widget.json", wantErr: true},
		{uri: "file:///tmp/widget.json", wantErr: true},
		{uri: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := ParseURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.bucket, bucket)
			require.Equal(t, tt.key, key)
		})
	}
}

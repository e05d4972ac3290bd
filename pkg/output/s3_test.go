package output

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// mockS3 records PutObject calls; other S3API methods are not used
type mockS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("expected upload deadline")
	}
	body, _ := io.ReadAll(input.Body)
	m.inputs = append(m.inputs, input)
	m.bodies = append(m.bodies, body)
	return &s3.PutObjectOutput{}, m.err
}

func TestS3Publisher_Publish(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scene.png")
	if err := os.WriteFile(file, []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	client := &mockS3{}
	publisher := NewS3PublisherWithClient(client, S3Config{Bucket: "renders", Prefix: "nightly"}, nil)

	if err := publisher.Publish(context.Background(), "scene.png", file); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("Expected one upload, got %d", len(client.inputs))
	}

	input := client.inputs[0]
	if aws.StringValue(input.Bucket) != "renders" || aws.StringValue(input.Key) != "nightly/scene.png" {
		t.Errorf("Unexpected destination s3://%s/%s", aws.StringValue(input.Bucket), aws.StringValue(input.Key))
	}
	if aws.StringValue(input.ContentType) != "image/png" || aws.Int64Value(input.ContentLength) != 9 {
		t.Errorf("Unexpected metadata %s %d", aws.StringValue(input.ContentType), aws.Int64Value(input.ContentLength))
	}
	if string(client.bodies[0]) != "png-bytes" {
		t.Errorf("Expected file contents to be uploaded, got %q", client.bodies[0])
	}
}

func TestS3Publisher_Errors(t *testing.T) {
	publisher := NewS3PublisherWithClient(&mockS3{}, S3Config{Bucket: "renders"}, nil)
	if err := publisher.Publish(context.Background(), "x.png", filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for a missing file")
	}

	file := filepath.Join(t.TempDir(), "scene.ppm")
	if err := os.WriteFile(file, []byte("P3"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	uploadErr := errors.New("access denied")
	publisher = NewS3PublisherWithClient(&mockS3{err: uploadErr}, S3Config{Bucket: "renders"}, nil)
	if err := publisher.Publish(context.Background(), "scene.ppm", file); !errors.Is(err, uploadErr) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}

	if _, err := NewS3Publisher(S3Config{}, nil); err == nil {
		t.Error("Expected error without a bucket")
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"a.png":  "image/png",
		"a.JPG":  "image/jpeg",
		"a.ppm":  "image/x-portable-pixmap",
		"a.webp": "application/octet-stream",
	}
	for name, expected := range tests {
		if got := contentType(name); got != expected {
			t.Errorf("%s: expected %s, got %s", name, expected, got)
		}
	}
}

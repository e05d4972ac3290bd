package output

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
)

// UploadTimeout bounds a single Publish call
const UploadTimeout = 30 * time.Second

// S3Config describes the bucket renders are published to
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Empty for AWS; set for S3-compatible stores
	AccessKey string // Empty to use the default credential chain
	SecretKey string
	Prefix    string // Key prefix, e.g. "renders/"
}

// S3Publisher uploads rendered images to an S3 bucket
type S3Publisher struct {
	client s3iface.S3API
	config S3Config
	logger core.Logger
}

// NewS3Publisher creates a publisher with its own AWS session
func NewS3Publisher(config S3Config, logger core.Logger) (*S3Publisher, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not set")
	}

	awsConfig := &aws.Config{
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(config.Endpoint != ""),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}
	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewS3PublisherWithClient(s3.New(sess), config, logger), nil
}

// NewS3PublisherWithClient creates a publisher around an existing client
func NewS3PublisherWithClient(client s3iface.S3API, config S3Config, logger core.Logger) *S3Publisher {
	return &S3Publisher{client: client, config: config, logger: logger}
}

// Key returns the object key for a file name under the configured prefix
func (p *S3Publisher) Key(name string) string {
	return path.Join(p.config.Prefix, name)
}

// Publish uploads the file at filename under Key(name)
func (p *S3Publisher) Publish(ctx context.Context, name, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := p.Key(name)
	size := int64(len(data))
	_, err = p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType(filename)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if p.logger != nil {
		p.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, p.config.Bucket, size)
	}
	return nil
}

func contentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".ppm":
		return "image/x-portable-pixmap"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

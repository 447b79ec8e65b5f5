package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"

	"github.com/df07/go-pathtracer/pkg/core"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// S3Config holds the bucket connection settings
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Empty uses the AWS endpoint for Region
	Region    string
	Bucket    string
	ACL       string // e.g. "public-read"; empty leaves the bucket default
	PublicURL string // Base URL objects are served from; empty derives none
}

// Enabled reports whether uploads are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// S3Publisher uploads rendered images to an S3-compatible bucket
type S3Publisher struct {
	client s3iface.S3API
	config S3Config
	logger core.Logger
}

// NewS3Publisher opens a session with static credentials
func NewS3Publisher(config S3Config, logger core.Logger) (*S3Publisher, error) {
	if !config.Enabled() {
		return nil, fmt.Errorf("s3 bucket not configured")
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

// NewS3PublisherWithClient wraps an existing client
func NewS3PublisherWithClient(client s3iface.S3API, config S3Config, logger core.Logger) *S3Publisher {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &S3Publisher{client: client, config: config, logger: logger}
}

// Publish uploads the file at localPath under key and returns its public URL
// (empty when no PublicURL is configured)
func (p *S3Publisher) Publish(ctx context.Context, localPath, key string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", localPath, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(ContentType(key)),
	}
	if p.config.ACL != "" {
		input.ACL = aws.String(p.config.ACL)
	}

	if _, err := p.client.PutObjectWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, p.config.Bucket, size)
	return p.ObjectURL(key), nil
}

// ObjectURL joins PublicURL and key
func (p *S3Publisher) ObjectURL(key string) string {
	if p.config.PublicURL == "" {
		return ""
	}
	return strings.TrimRight(p.config.PublicURL, "/") + "/" + strings.TrimLeft(key, "/")
}

var contentTypes = map[imaging.Format]string{
	imaging.PNG:  "image/png",
	imaging.JPEG: "image/jpeg",
	imaging.GIF:  "image/gif",
	imaging.BMP:  "image/bmp",
	imaging.TIFF: "image/tiff",
}

// ContentType maps an image file name to its MIME type
func ContentType(filename string) string {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return "application/octet-stream"
	}
	return contentTypes[format]
}

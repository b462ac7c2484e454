package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/harborview/realty-core/internal/config"
)

// presignTTL bounds the lifetime of an issued upload capability.
const presignTTL = time.Hour

// Gateway issues time-limited presigned PUT URLs so callers upload
// directly to the object store; the API never receives file bytes.
type Gateway struct {
	presigner    *s3.PresignClient
	bucket       string
	region       string
	endpoint     string
	customDomain string
	pathStyle    bool
}

func NewGateway(cfg config.S3Config) *Gateway {
	endpoint := normalizeEndpoint(cfg.Endpoint)

	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		UsePathStyle: cfg.PathStyleAccess,
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		// Custom endpoints (MinIO, R2, ...) generally want path-style keys.
		opts.UsePathStyle = true
	}

	return &Gateway{
		presigner:    s3.NewPresignClient(s3.New(opts)),
		bucket:       cfg.Bucket,
		region:       cfg.Region,
		endpoint:     endpoint,
		customDomain: cfg.CustomDomain,
		pathStyle:    opts.UsePathStyle,
	}
}

// PresignPut returns a PUT URL for the given object key, valid for one hour.
func (g *Gateway) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	req, err := g.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = presignTTL
	})
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}
	return req.URL, nil
}

// PublicURL is the permanent read URL the caller stores back into the
// content record after the upload completes.
func (g *Gateway) PublicURL(key string) string {
	if g.customDomain != "" {
		return g.customDomain + "/" + key
	}
	if g.endpoint != "" {
		return g.endpoint + "/" + g.bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", g.bucket, g.region, key)
}

func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return ""
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	return strings.TrimSuffix(endpoint, "/")
}

package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mx-space/folio/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const uploadWorkers = 4

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads every exported file to a bucket, keyed by its path
// under the export directory.
type S3Publisher struct {
	client objectPutter
	bucket string
	prefix string
	log    *zap.Logger
}

func NewS3Publisher(opts config.S3Options, log *zap.Logger) (*S3Publisher, error) {
	bucket := strings.TrimSpace(opts.Bucket)
	region := strings.TrimSpace(opts.Region)
	accessKey := strings.TrimSpace(opts.AccessKeyID)
	secretKey := strings.TrimSpace(opts.SecretAccessKey)
	if bucket == "" || region == "" || accessKey == "" || secretKey == "" {
		return nil, errors.New("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")
	// Custom endpoints (MinIO, R2) rarely support virtual-hosted buckets.
	pathStyle := opts.PathStyleAccess || endpoint != ""

	client := s3.NewFromConfig(aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = pathStyle
	})
	return newS3Publisher(client, bucket, opts.Prefix, log), nil
}

func newS3Publisher(client objectPutter, bucket, prefix string, log *zap.Logger) *S3Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(strings.TrimSpace(prefix), "/"),
		log:    log.Named("s3"),
	}
}

func (p *S3Publisher) Name() string { return TargetS3 }

// Publish uploads dir. Objects that no longer exist locally are left in
// the bucket.
func (p *S3Publisher) Publish(ctx context.Context, dir string) (*Report, error) {
	files, err := exportFiles(dir)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadWorkers)
	for _, rel := range files {
		g.Go(func() error {
			return p.upload(gctx, dir, rel)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	p.log.Info("published", zap.String("bucket", p.bucket), zap.String("prefix", p.prefix), zap.Int("files", len(files)))
	return &Report{Target: TargetS3, Files: len(files)}, nil
}

func (p *S3Publisher) upload(ctx context.Context, dir, rel string) error {
	body, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	key := rel
	if p.prefix != "" {
		key = path.Join(p.prefix, rel)
	}
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType(rel)),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	p.log.Debug("uploaded", zap.String("key", key))
	return nil
}

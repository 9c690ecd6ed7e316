package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrStorageDisabled = errors.New("document storage is not configured")

// DownloadURLExpiry bounds how long a published document link stays valid.
const DownloadURLExpiry = 24 * time.Hour

// ObjectStore publishes generated files.
type ObjectStore interface {
	Publish(ctx context.Context, folder, filename, contentType string, body []byte) (*PublishedObject, error)
}

type PublishedObject struct {
	Key         string    `json:"key"`
	DownloadURL string    `json:"download_url"`
	FileURL     string    `json:"file_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewS3Storage(region, bucket, accessKeyID, secretAccessKey, baseURL string) *S3Storage {
	var cfg aws.Config
	var err error

	// If credentials are provided, use them. Otherwise, use default credential chain
	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		cfg, err = config.LoadDefaultConfig(context.Background(),
			config.WithRegion(region),
		)
		if err != nil {
			cfg = aws.Config{
				Region: region,
			}
		}
	}

	client := s3.NewFromConfig(cfg)

	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// ObjectKey places filename under folder with a random prefix so republishing never overwrites.
func ObjectKey(folder, filename string) string {
	return path.Join(folder, uuid.New().String(), path.Base(filename))
}

// Publish uploads body and returns a presigned GET link for it.
func (s *S3Storage) Publish(ctx context.Context, folder, filename, contentType string, body []byte) (*PublishedObject, error) {
	key := ObjectKey(folder, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(body),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", path.Base(filename))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	presigned, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(DownloadURLExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &PublishedObject{
		Key:         key,
		DownloadURL: presigned.URL,
		FileURL:     s.fileURL(key),
		ExpiresAt:   s.now().Add(DownloadURLExpiry),
	}, nil
}

func (s *S3Storage) fileURL(key string) string {
	if s.baseURL != "" {
		// Use CloudFront or custom domain
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
}

// DisabledStorage is used when no bucket is configured.
type DisabledStorage struct{}

func (DisabledStorage) Publish(context.Context, string, string, string, []byte) (*PublishedObject, error) {
	return nil, ErrStorageDisabled
}

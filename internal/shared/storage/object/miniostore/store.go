package miniostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"resume-booster/internal/shared/storage/object"
)

// Store implements object.Store using a MinIO (or any S3-compatible)
// endpoint via the MinIO SDK.
type Store struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
	signedTTL      time.Duration
}

// Options configures a MinIO-backed store.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicEndpoint, when set, marks the bucket as publicly readable at
	// that base URL; ResolveURL then skips presigning.
	PublicEndpoint string
	SignedTTL      time.Duration
}

// New creates a MinIO-backed object store and verifies the bucket exists.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if opts.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}
	if opts.SignedTTL <= 0 {
		opts.SignedTTL = 7 * 24 * time.Hour
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(checkCtx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", opts.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", opts.Bucket)
	}

	return &Store{
		client:         client,
		bucket:         opts.Bucket,
		publicEndpoint: strings.TrimRight(opts.PublicEndpoint, "/"),
		signedTTL:      opts.SignedTTL,
	}, nil
}

// Put uploads the reader contents at the given key, overwriting any existing
// object.
func (s *Store) Put(ctx context.Context, key string, contentType string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, r, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("minio put object %q: %w", key, err)
	}
	return nil
}

// Open downloads a stored object for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio get object %q: %w", key, err)
	}
	// GetObject is lazy; Stat forces the NoSuchKey check before the caller reads.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("minio get object %q: %w", key, object.ErrNotFound)
		}
		return nil, fmt.Errorf("minio stat object %q: %w", key, err)
	}
	return obj, nil
}

// ResolveURL returns the public URL when a public endpoint is configured,
// otherwise a time-limited presigned GET URL.
func (s *Store) ResolveURL(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.publicEndpoint != "" {
		escaped := (&url.URL{Path: "/" + s.bucket + "/" + key}).EscapedPath()
		return s.publicEndpoint + escaped, nil
	}
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.signedTTL, nil)
	if err != nil {
		return "", fmt.Errorf("minio presign %q: %w", key, err)
	}
	return presigned.String(), nil
}

// List returns the objects stored under a prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]object.Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var infos []object.Info
	for obj := range objCh {
		if obj.Err != nil {
			return nil, fmt.Errorf("minio list prefix=%s: %w", prefix, obj.Err)
		}
		infos = append(infos, object.Info{
			Key:       obj.Key,
			CreatedAt: obj.LastModified.UTC(),
		})
	}
	return infos, nil
}

// isNoSuchKey reports whether the error clearly means the object is absent.
func isNoSuchKey(err error) bool {
	if err == nil {
		return false
	}
	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch strings.ToLower(strings.TrimSpace(minioErr.Code)) {
		case "nosuchkey", "notfound":
			return true
		}
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "nosuchkey") ||
		strings.Contains(lower, "specified key does not exist")
}

var _ object.Store = (*Store)(nil)

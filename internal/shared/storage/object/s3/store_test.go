package s3

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""),
	}
	client := awss3.NewFromConfig(cfg)
	return &Store{
		client:    client,
		presigner: awss3.NewPresignClient(client),
		bucket:    "test-bucket",
		prefix:    "app",
		region:    "us-east-1",
		signedTTL: time.Hour,
	}
}

func TestPresignedFallbackURLShape(t *testing.T) {
	s := testStore(t)

	out, err := s.presigner.PresignGetObject(context.Background(), &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(applyPrefix(s.prefix, "resumes/u1/r1.pdf")),
	}, func(opts *awss3.PresignOptions) {
		opts.Expires = s.signedTTL
	})
	if err != nil {
		t.Fatalf("presign: %v", err)
	}

	url := out.URL
	for _, want := range []string{"test-bucket", "app/resumes/u1/r1.pdf", "X-Amz-Expires=3600", "X-Amz-Signature="} {
		if !strings.Contains(url, want) {
			t.Errorf("presigned url missing %q: %s", want, url)
		}
	}
}

func TestPublicURL(t *testing.T) {
	s := testStore(t)

	if got := s.publicURL("app/resumes/u1/r1.pdf"); got != "https://test-bucket.s3.us-east-1.amazonaws.com/app/resumes/u1/r1.pdf" {
		t.Fatalf("url = %q", got)
	}

	s.region = ""
	if got := s.publicURL("k"); got != "https://test-bucket.s3.amazonaws.com/k" {
		t.Fatalf("url = %q", got)
	}
}

func TestPrefixHelpers(t *testing.T) {
	if got := normalizePrefix(" /app/ "); got != "app" {
		t.Fatalf("normalizePrefix = %q", got)
	}

	tests := []struct {
		prefix, key, want string
	}{
		{"app", "resumes/u1/r1.pdf", "app/resumes/u1/r1.pdf"},
		{"", "resumes/u1/r1.pdf", "resumes/u1/r1.pdf"},
		{"app", "", "app"},
		{"/app/", "/k", "app/k"},
	}
	for _, tt := range tests {
		if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
			t.Errorf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
		}
	}

	if got := stripPrefix("app", "app/resumes/u1/r1.pdf"); got != "resumes/u1/r1.pdf" {
		t.Fatalf("stripPrefix = %q", got)
	}
	if got := stripPrefix("", "resumes/u1/r1.pdf"); got != "resumes/u1/r1.pdf" {
		t.Fatalf("stripPrefix = %q", got)
	}
}

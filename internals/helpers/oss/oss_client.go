// internals/helpers/oss/oss_client.go
package helper

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// upload guard used by controllers as a light pre-check
const MaxUploadSize = int64(10 * 1024 * 1024)

type OSSService struct {
	client   *oss.Client
	bucket   *oss.Bucket
	Bucket   string
	Endpoint string
	Prefix   string
}

// NewOSSServiceFromEnv builds a service from OSS_* env vars. prefix is
// optional (e.g. "uploads/").
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	secret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || secret == "" || bucketName == "" {
		return nil, errors.New("OSS env is incomplete (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, keyID, secret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	return &OSSService{
		client:   client,
		bucket:   bucket,
		Bucket:   bucketName,
		Endpoint: endpoint,
		Prefix:   strings.Trim(prefix, "/"),
	}, nil
}

/* =======================================================================
   Uploads
======================================================================= */

// UploadStream puts raw bytes at key with the given content type.
func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	done := make(chan error, 1)
	go func() { done <- s.bucket.PutObject(key, r, opts...) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// UploadFromFormFile stores a multipart file as-is, scoped under the church.
// Returns (publicURL, objectKey).
func (s *OSSService) UploadFromFormFile(ctx context.Context, churchID uuid.UUID, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", errors.New("file missing")
	}
	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := s.buildObjectKey(churchID, dir, fh.Filename)
	if err := s.UploadStream(ctx, key, src, contentType); err != nil {
		return "", "", err
	}
	return s.PublicURL(key), key, nil
}

// UploadBytes stores an already-encoded payload (e.g. a WebP re-encode).
func (s *OSSService) UploadBytes(ctx context.Context, churchID uuid.UUID, dir, filename, contentType string, payload io.Reader) (string, error) {
	key := s.buildObjectKey(churchID, dir, filename)
	if err := s.UploadStream(ctx, key, payload, contentType); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

/* =======================================================================
   Deletes
======================================================================= */

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.bucket.DeleteObject(key)
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(ctx, key)
}

// DeleteByPublicURLENV is a convenience for callers without a live service.
func DeleteByPublicURLENV(publicURL string, timeout time.Duration) error {
	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svc.DeleteByPublicURL(ctx, publicURL)
}

/* =======================================================================
   Keys & URLs
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	// endpoint may carry a scheme already
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.Bucket, host, key)
}

func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil || u.Path == "" {
		return "", fmt.Errorf("invalid public url: %q", publicURL)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

var nonKeyChars = regexp.MustCompile(`[^a-z0-9._-]+`)

func safePart(sIn string) string {
	out := strings.ToLower(strings.TrimSpace(sIn))
	out = strings.ReplaceAll(out, " ", "-")
	out = nonKeyChars.ReplaceAllString(out, "")
	return strings.Trim(out, "-.")
}

func randHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// buildObjectKey: <prefix>/churches/<church_id>/<dir>/<ts>-<rand>-<name>
func (s *OSSService) buildObjectKey(churchID uuid.UUID, dir, filename string) string {
	base := safePart(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if base == "" {
		base = "file"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d-%s-%s%s", time.Now().Unix(), randHex(4), base, ext)

	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	parts = append(parts, "churches", churchID.String(), safePart(dir), name)
	return strings.Join(parts, "/")
}

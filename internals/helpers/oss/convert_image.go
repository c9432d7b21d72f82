// internals/helpers/oss/convert_image.go
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// photos are normalized to bounded WebP before storage
const (
	imageMaxW    = 1600
	imageMaxH    = 1600
	webpQuality  = 80
	webpFileName = "photo.webp"
)

func isImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

func decodeImage(payload []byte, filename string) (image.Image, error) {
	if len(payload) == 0 {
		return nil, errors.New("empty image payload")
	}
	if strings.EqualFold(filepath.Ext(filename), ".webp") {
		if img, err := webp.Decode(bytes.NewReader(payload)); err == nil {
			return img, nil
		}
	}
	img, err := imaging.Decode(bytes.NewReader(payload), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return img, nil
}

// ConvertToWebP decodes, downsizes to the bound, and re-encodes as WebP.
func ConvertToWebP(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return nil, err
	}

	img, err := decodeImage(buf.Bytes(), fh.Filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > imageMaxW || bounds.Dy() > imageMaxH {
		img = imaging.Fit(img, imageMaxW, imageMaxH, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return out.Bytes(), nil
}

// UploadImageAsWebP normalizes an uploaded photo and stores it church-scoped.
func (s *OSSService) UploadImageAsWebP(ctx context.Context, churchID uuid.UUID, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", errors.New("file missing")
	}
	if !isImageExt(fh.Filename) {
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(fh.Filename))
	}
	payload, err := ConvertToWebP(fh)
	if err != nil {
		return "", err
	}
	return s.UploadBytes(ctx, churchID, dir, webpFileName, "image/webp", bytes.NewReader(payload))
}

package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"gestao_servicos/internal/usecase/interfaces"

	"github.com/disintegration/imaging"
)

const (
	maxPhotoWidth = 800
	jpegQuality   = 60
)

var ErrInvalidPhoto = errors.New("invalid photo data")

// CompressingImageStore normalizes uploaded photos: decode the data URL,
// shrink anything wider than 800px and re-encode as JPEG quality 60. The
// result goes back out as a data URL so records stay self-contained.

type CompressingImageStore struct{}

var _ interfaces.IImageStore = (*CompressingImageStore)(nil)

func NewCompressingImageStore() *CompressingImageStore {
	return &CompressingImageStore{}
}

func (s *CompressingImageStore) Store(ctx context.Context, raw string) (string, error) {
	payload, err := decodeDataURL(raw)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(payload), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}

	if img.Bounds().Dx() > maxPhotoWidth {
		img = imaging.Resize(img, maxPhotoWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeDataURL accepts both "data:image/...;base64,<payload>" and a bare
// base64 payload.
func decodeDataURL(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidPhoto
	}

	if strings.HasPrefix(raw, "data:") {
		idx := strings.Index(raw, "base64,")
		if idx < 0 {
			return nil, ErrInvalidPhoto
		}
		raw = raw[idx+len("base64,"):]
	}

	payload, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}
	return payload, nil
}

package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeStored(t *testing.T, stored string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(stored, prefix) {
		t.Fatalf("expected jpeg data url, got %.40s", stored)
	}
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, prefix))
	if err != nil {
		t.Fatalf("decode stored payload: %v", err)
	}
	img, err := imaging.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("decode stored image: %v", err)
	}
	return img
}

func TestCompressingImageStore_Store(t *testing.T) {
	ctx := context.Background()
	store := NewCompressingImageStore()

	t.Run("wide photo is resized to max width", func(t *testing.T) {
		stored, err := store.Store(ctx, pngDataURL(t, 1600, 1200))
		if err != nil {
			t.Fatalf("store: %v", err)
		}
		img := decodeStored(t, stored)
		if img.Bounds().Dx() != maxPhotoWidth {
			t.Fatalf("expected width %d, got %d", maxPhotoWidth, img.Bounds().Dx())
		}
		if img.Bounds().Dy() != 600 {
			t.Fatalf("expected proportional height 600, got %d", img.Bounds().Dy())
		}
	})

	t.Run("small photo keeps its size", func(t *testing.T) {
		stored, err := store.Store(ctx, pngDataURL(t, 400, 300))
		if err != nil {
			t.Fatalf("store: %v", err)
		}
		img := decodeStored(t, stored)
		if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 300 {
			t.Fatalf("expected 400x300, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if _, err := store.Store(ctx, "   "); !errors.Is(err, ErrInvalidPhoto) {
			t.Fatalf("expected ErrInvalidPhoto, got %v", err)
		}
	})

	t.Run("data url without base64 marker", func(t *testing.T) {
		if _, err := store.Store(ctx, "data:image/png,abc"); !errors.Is(err, ErrInvalidPhoto) {
			t.Fatalf("expected ErrInvalidPhoto, got %v", err)
		}
	})

	t.Run("payload is not an image", func(t *testing.T) {
		raw := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))
		if _, err := store.Store(ctx, raw); !errors.Is(err, ErrInvalidPhoto) {
			t.Fatalf("expected ErrInvalidPhoto, got %v", err)
		}
	})
}

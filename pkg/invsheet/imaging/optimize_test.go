package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"invsheet/pkg/invsheet/models"
)

// pngDataURL builds a data URL for a solid-color PNG of the given size,
// optionally padded with trailing junk to inflate the estimated size.
// PNG decoders stop at IEND, so the padding never affects decoding.
func pngDataURL(t *testing.T, w, h, padBytes int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	if padBytes > 0 {
		buf.Write(bytes.Repeat([]byte{0xAB}, padBytes))
	}
	return EncodeDataURL("image/png", buf.Bytes())
}

// decodeDataURL decodes the payload of a data URL back into an image.
func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()

	_, payload, ok := splitDataURL(dataURL)
	if !ok {
		t.Fatalf("Not a data URL: %.40q", dataURL)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Failed to decode image: %v", err)
	}
	return img
}

func TestOptimizeNoImage(t *testing.T) {
	opt := NewOptimizer(nil)
	got := opt.Optimize(context.Background(), models.InventoryItem{ID: "x"})
	if !got.IsZero() {
		t.Errorf("Expected zero OptimizedImage, got %+v", got)
	}
}

func TestOptimizeSmallImagePassesThrough(t *testing.T) {
	inline := pngDataURL(t, 4, 4, 0)
	opt := NewOptimizer(nil)

	got := opt.Optimize(context.Background(), models.InventoryItem{ID: "x", Image: inline})

	if got.Data != inline {
		t.Error("Small image payload was modified")
	}
	if got.Type != "image/png" {
		t.Errorf("Expected image/png, got %q", got.Type)
	}
}

func TestOptimizeOversizedImageIsRescaled(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		expW   int
		expH   int
	}{
		{"landscape", 1000, 500, 800, 400},
		{"portrait", 500, 1000, 400, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Pad past the 1 MiB estimate threshold.
			inline := pngDataURL(t, tt.w, tt.h, MaxEncodedBytes+200_000)
			if estimateSize(inline) <= MaxEncodedBytes {
				t.Fatal("Fixture does not exceed the size threshold")
			}

			opt := NewOptimizer(nil)
			got := opt.Optimize(context.Background(), models.InventoryItem{ID: "x", Image: inline})

			if got.IsZero() {
				t.Fatal("Expected an optimized image, got zero value")
			}
			if got.Type != "image/jpeg" {
				t.Errorf("Expected image/jpeg, got %q", got.Type)
			}
			if !strings.HasPrefix(got.Data, "data:image/jpeg;base64,") {
				t.Errorf("Expected a jpeg data URL, got %.40q", got.Data)
			}

			b := decodeDataURL(t, got.Data).Bounds()
			if b.Dx() != tt.expW || b.Dy() != tt.expH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expW, tt.expH, b.Dx(), b.Dy())
			}
		})
	}
}

func TestOptimizeCorruptOversizedImageDegrades(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, MaxEncodedBytes+1024))
	inline := "data:image/png;base64," + payload

	opt := NewOptimizer(nil)
	got := opt.Optimize(context.Background(), models.InventoryItem{ID: "x", Image: inline})
	if !got.IsZero() {
		t.Errorf("Expected zero OptimizedImage for corrupt input, got %+v", got)
	}
}

type fixedStore struct {
	inline string
}

func (s fixedStore) Lookup(ctx context.Context, itemID string) (string, error) {
	return s.inline, nil
}

func TestOptimizePrefersStoreOverInline(t *testing.T) {
	stored := pngDataURL(t, 2, 2, 0)
	inline := pngDataURL(t, 8, 8, 0)

	opt := NewOptimizer(fixedStore{inline: stored})
	got := opt.Optimize(context.Background(), models.InventoryItem{ID: "x", Image: inline})

	if got.Data != stored {
		t.Error("Expected store image to win over inline image")
	}
}

func TestOptimizeStoreMissFallsBackToInline(t *testing.T) {
	inline := pngDataURL(t, 8, 8, 0)

	opt := NewOptimizer(fixedStore{})
	got := opt.Optimize(context.Background(), models.InventoryItem{ID: "x", Image: inline})

	if got.Data != inline {
		t.Error("Expected fallback to inline image on store miss")
	}
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "item-1.png"), buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	store := DirStore{Dir: dir}

	got, err := store.Lookup(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("Expected a png data URL, got %.40q", got)
	}

	miss, err := store.Lookup(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Lookup of absent id failed: %v", err)
	}
	if miss != "" {
		t.Errorf("Expected empty result for absent id, got %.40q", miss)
	}
}

func TestMIMEType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"data:image/png;base64,AAAA", "image/png"},
		{"data:image/webp;base64,AAAA", "image/webp"},
		{"data:;base64,AAAA", "image/jpeg"},
		{"AAAA", "image/jpeg"},
		{"", "image/jpeg"},
	}

	for _, tt := range tests {
		if got := MIMEType(tt.input); got != tt.expected {
			t.Errorf("MIMEType(%.30q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestEstimateSize(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(make([]byte, 3000))
	inline := "data:image/jpeg;base64," + payload

	if got := estimateSize(inline); got != 3000 {
		t.Errorf("Expected estimate 3000, got %d", got)
	}
	if got := estimateSize("abcd"); got != 4 {
		t.Errorf("Expected raw length 4, got %d", got)
	}
}

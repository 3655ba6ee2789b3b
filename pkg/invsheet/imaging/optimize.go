// Package imaging resolves item images and compresses oversized ones
// down to a bounded representation suitable for spreadsheet cell storage.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/jpeg"
	"log/slog"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"invsheet/pkg/invsheet/models"
)

const (
	// MaxEncodedBytes is the estimated size above which an image is
	// rescaled before embedding.
	MaxEncodedBytes = 1 << 20
	// MaxDimension clamps the longer edge of a rescaled image.
	MaxDimension = 800
	// jpegQuality is the re-encode quality (0.7 on a 0-1 scale).
	jpegQuality = 70
)

// Optimizer resolves an item's image and, when oversized, rescales and
// re-encodes it. All failures degrade to "no image"; Optimize never
// returns an error.
type Optimizer struct {
	store  Store
	logger *slog.Logger
}

// NewOptimizer creates an Optimizer. store may be nil, which means
// lookups always miss and only inline images are used.
func NewOptimizer(store Store) *Optimizer {
	return &Optimizer{
		store:  store,
		logger: slog.Default(),
	}
}

// Optimize resolves the image for item and returns a representation
// bounded by MaxEncodedBytes. The zero OptimizedImage means the item has
// no usable image; that is an expected outcome, not an error.
func (o *Optimizer) Optimize(ctx context.Context, item models.InventoryItem) models.OptimizedImage {
	inline := o.resolve(ctx, item)
	if inline == "" {
		return models.OptimizedImage{}
	}

	if estimateSize(inline) <= MaxEncodedBytes {
		return models.OptimizedImage{Data: inline, Type: MIMEType(inline)}
	}

	compressed, err := o.compress(inline)
	if err != nil {
		o.logger.Debug("image optimization failed, dropping image",
			"item_id", item.ID, "error", err)
		return models.OptimizedImage{}
	}
	return compressed
}

// resolve locates the inline representation: the injected store first,
// then the item's own inline image field.
func (o *Optimizer) resolve(ctx context.Context, item models.InventoryItem) string {
	if o.store != nil && item.ID != "" {
		inline, err := o.store.Lookup(ctx, item.ID)
		if err != nil {
			o.logger.Debug("image store lookup failed",
				"item_id", item.ID, "error", err)
		} else if inline != "" {
			return inline
		}
	}
	return item.Image
}

// compress decodes inline, clamps its longer dimension to MaxDimension
// preserving aspect ratio, and re-encodes as JPEG.
func (o *Optimizer) compress(inline string) (models.OptimizedImage, error) {
	_, payload, ok := splitDataURL(inline)
	if !ok {
		payload = inline
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return models.OptimizedImage{}, err
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return models.OptimizedImage{}, err
	}

	dst := rescale(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return models.OptimizedImage{}, err
	}
	return models.OptimizedImage{
		Data: EncodeDataURL("image/jpeg", buf.Bytes()),
		Type: "image/jpeg",
	}, nil
}

// rescale shrinks src so its longer dimension is at most MaxDimension,
// preserving aspect ratio. Images already within bounds are returned
// unchanged.
func rescale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= MaxDimension && h <= MaxDimension {
		return src
	}

	var nw, nh int
	if w >= h {
		nw = MaxDimension
		nh = h * MaxDimension / w
	} else {
		nh = MaxDimension
		nw = w * MaxDimension / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

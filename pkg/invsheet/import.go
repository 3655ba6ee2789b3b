package invsheet

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"invsheet/pkg/invsheet/codec"
	"invsheet/pkg/invsheet/models"
	"invsheet/pkg/invsheet/progress"
)

const maxRating = 5

// dateLayouts are accepted for Date Added cells, tried in order.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// Import reads a spreadsheet backup and reconstructs inventory items.
// Rows whose first cell is empty are skipped; every other field coerces
// to a default on missing or unparsable input. A failure to read or
// parse the document aborts the whole import with no partial result.
func (s *Service) Import(ctx context.Context, r io.Reader, opts ImportOptions) (*models.ImportResult, error) {
	progress.Emit(opts.OnProgress, progress.Event{
		Message: "Reading spreadsheet", Percentage: 10,
	})

	rows, err := codec.Decode(r)
	if err != nil {
		return nil, NewOperationError("import", err)
	}
	if len(rows) < 2 {
		return nil, ErrTooFewRows
	}

	imageCol := indexOf(rows[0], ImageDataColumn)
	hasImages := imageCol >= 0 && opts.LoadImages

	progress.Emit(opts.OnProgress, progress.Event{
		Message: "Processing rows", Percentage: 30,
	})

	data := rows[1:]
	inventory := make([]models.InventoryItem, 0, len(data))
	for i, row := range data {
		progress.Emit(opts.OnProgress, progress.Event{
			Message:    fmt.Sprintf("Processing row %d of %d", i+1, len(data)),
			Percentage: progress.Interpolate(30, 90, i+1, len(data)),
		})

		name := cell(row, 0)
		if name == "" {
			continue
		}

		item := models.InventoryItem{
			ID:        uuid.NewString(),
			Name:      name,
			Barcode:   cellOr(row, 1, "N/A"),
			Quantity:  parseQuantity(cell(row, 2)),
			Location:  cellOr(row, 3, "Unspecified"),
			Rating:    parseRating(cell(row, 4)),
			Notes:     cell(row, 5),
			DateAdded: parseDate(cell(row, 6)),
		}
		if hasImages {
			if img := cell(row, imageCol); img != "" {
				item.Image = img
				item.ImageType = cellOr(row, imageCol+1, "image/jpeg")
			}
		}
		inventory = append(inventory, item)
	}

	progress.Emit(opts.OnProgress, progress.Event{
		Message: "Import complete", Percentage: 100,
	})
	s.logger.Info("inventory imported",
		"items", len(inventory), "images", hasImages, "replace", opts.ReplaceExisting)

	return &models.ImportResult{
		Success:   true,
		Inventory: inventory,
		ItemCount: len(inventory),
		HasImages: hasImages,
	}, nil
}

// cell returns the trimmed value at index i, or "" when the row is too
// short. Decoded rows omit trailing empty cells.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cellOr returns the trimmed value at index i, or def when missing.
func cellOr(row []string, i int, def string) string {
	if v := cell(row, i); v != "" {
		return v
	}
	return def
}

func indexOf(row []string, value string) int {
	for i, v := range row {
		if strings.TrimSpace(v) == value {
			return i
		}
	}
	return -1
}

// parseQuantity coerces a quantity cell; missing, unparsable and
// negative inputs default to 1.
func parseQuantity(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 1
	}
	return v
}

// parseRating coerces a rating cell to [0, maxRating], defaulting to 0.
func parseRating(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	if v > maxRating {
		return maxRating
	}
	return v
}

// parseDate tries the known layouts and falls back to the current time.
func parseDate(s string) time.Time {
	if s != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Now()
}

package invsheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"invsheet/pkg/invsheet/codec"
	"invsheet/pkg/invsheet/models"
	"invsheet/pkg/invsheet/progress"
)

// batchYield is the cooperative pause between export batches, long
// enough for a host UI loop to redraw. Scheduling contract, not a
// performance knob.
const batchYield = 10 * time.Millisecond

// Export builds a spreadsheet backup for items and hands it to the
// configured FileSaver. Rows appear in input order regardless of batch
// size. Items are processed in batches with a cooperative yield between
// batches; progress is reported over itemCount+2 steps.
func (s *Service) Export(ctx context.Context, items []models.InventoryItem, opts ExportOptions) (*models.ExportResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInventory
	}

	batch := opts.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	total := len(items) + 2
	progress.Report(opts.OnProgress, 1, total, "Preparing export")

	rows := make([][]any, 0, len(items)+1)
	rows = append(rows, toAnyRow(header(opts.IncludeImages)))

	step := 1
	for start := 0; start < len(items); start += batch {
		end := min(start+batch, len(items))
		for _, item := range items[start:end] {
			rows = append(rows, s.exportRow(ctx, item, opts.IncludeImages))
			step++
			progress.Report(opts.OnProgress, step, total,
				fmt.Sprintf("Processing item %d of %d", step-1, len(items)))
		}
		if end < len(items) {
			time.Sleep(batchYield)
		}
	}

	data, err := codec.Encode(rows, columnWidths(opts.IncludeImages))
	if err != nil {
		return nil, NewOperationError("export", err)
	}

	name := opts.Filename
	if name == "" {
		name = backupFilename(time.Now())
	}
	if err := s.saver.Save(name, data); err != nil {
		return nil, NewOperationError("export", err)
	}

	progress.Report(opts.OnProgress, total, total, "Export complete")
	s.logger.Info("inventory exported",
		"filename", name, "items", len(items), "images", opts.IncludeImages)

	return &models.ExportResult{
		Success:       true,
		Filename:      name,
		ItemCount:     len(items),
		IncludeImages: opts.IncludeImages,
	}, nil
}

// exportRow maps one item onto the header schema. Image optimization
// failures leave the image cells empty and never fail the row.
func (s *Service) exportRow(ctx context.Context, item models.InventoryItem, includeImages bool) []any {
	row := []any{
		item.Name,
		item.Barcode,
		item.Quantity,
		item.Location,
		item.Rating,
		item.Notes,
		item.DateAdded.Format(dateLayout),
	}
	if includeImages {
		img := s.images.Optimize(ctx, item)
		if img.IsZero() && item.Image != "" {
			s.logger.Debug("item image dropped during export", "item_id", item.ID)
		}
		row = append(row, img.Data, img.Type)
	}
	return row
}

// backupFilename derives a sortable default filename, with characters
// unsafe on common filesystems collapsed to dashes.
func backupFilename(now time.Time) string {
	ts := now.UTC().Format(time.RFC3339)
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return "inventory-backup-" + ts + ".xlsx"
}

func toAnyRow(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

// Package invsheet exports an inventory list to an xlsx backup and
// imports it back, optionally embedding per-item images as inline data.
package invsheet

import "invsheet/pkg/invsheet/progress"

// DefaultBatchSize is the number of items processed between cooperative
// yields during export.
const DefaultBatchSize = 10

// ExportOptions configures a single export operation.
type ExportOptions struct {
	// IncludeImages adds the Image Data / Image Type columns and embeds
	// each item's optimized image.
	IncludeImages bool
	// Filename overrides the generated backup filename.
	Filename string
	// OnProgress receives progress events. Nil disables reporting.
	OnProgress progress.Func
	// BatchSize overrides DefaultBatchSize when positive. Output row
	// order is identical for any batch size.
	BatchSize int
}

// DefaultExportOptions returns default export options.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{BatchSize: DefaultBatchSize}
}

// ImportOptions configures a single import operation.
type ImportOptions struct {
	// ReplaceExisting is informational: the importer never mutates
	// existing inventory itself, replacement is the caller's concern.
	ReplaceExisting bool
	// LoadImages copies inline image cells onto imported items when the
	// source has an image column.
	LoadImages bool
	// OnProgress receives progress events. Nil disables reporting.
	OnProgress progress.Func
}

// DefaultImportOptions returns default import options.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{LoadImages: true}
}

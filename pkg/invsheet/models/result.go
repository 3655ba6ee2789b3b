package models

// OptimizedImage is the outcome of resolving and optimizing an item image.
// The zero value means "no image"; optimization failures also yield the
// zero value rather than an error.
type OptimizedImage struct {
	// Data is an inline data URL, or empty when no image resolved.
	Data string `json:"data,omitempty"`
	// Type is the MIME type of Data, or empty.
	Type string `json:"type,omitempty"`
}

// IsZero reports whether no image resolved.
func (o OptimizedImage) IsZero() bool {
	return o.Data == ""
}

// ExportResult summarizes a completed export.
type ExportResult struct {
	Success       bool   `json:"success"`
	Filename      string `json:"filename"`
	ItemCount     int    `json:"item_count"`
	IncludeImages bool   `json:"include_images"`
}

// ImportResult summarizes a completed import.
type ImportResult struct {
	Success   bool            `json:"success"`
	Inventory []InventoryItem `json:"inventory"`
	ItemCount int             `json:"item_count"`
	// HasImages is true when the source had an image column and image
	// loading was requested.
	HasImages bool `json:"has_images"`
}

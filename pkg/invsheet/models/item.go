// Package models defines data structures for inventory export and import.
package models

import "time"

// InventoryItem is a single inventory record. It is a read-only input
// during export and a freshly constructed output during import.
type InventoryItem struct {
	// ID uniquely identifies the item. Importers assign a fresh id.
	ID string `json:"id"`
	// Name is the product name. Rows without one are not valid items.
	Name string `json:"name"`
	// Barcode is the scanned code, "N/A" when unknown.
	Barcode string `json:"barcode,omitempty"`
	// Quantity is the non-negative stock count.
	Quantity int `json:"quantity"`
	// Location is the storage location, "Unspecified" when unknown.
	Location string `json:"location"`
	// Rating is a 0-5 star rating.
	Rating int `json:"rating"`
	// Notes holds free-form text.
	Notes string `json:"notes,omitempty"`
	// DateAdded records when the item entered the inventory.
	DateAdded time.Time `json:"dateAdded"`
	// Image is an inline data URL ("data:image/jpeg;base64,...") or empty.
	Image string `json:"image,omitempty"`
	// ImageType is the MIME type of Image.
	ImageType string `json:"imageType,omitempty"`
}

package invsheet

// Column headers, order-significant. Round-trip compatibility depends on
// data rows matching this order and count exactly.
const (
	colName     = "Product Name"
	colBarcode  = "Barcode"
	colQuantity = "Quantity"
	colLocation = "Location"
	colRating   = "Rating"
	colNotes    = "Notes"
	colDate     = "Date Added"
	// ImageDataColumn marks the optional embedded-image column; its
	// presence in a header row is how imports detect images.
	ImageDataColumn = "Image Data"
	colImageType    = "Image Type"
)

// dateLayout formats Date Added cells. The import parser accepts this
// layout plus the fallbacks in dateLayouts.
const dateLayout = "2006-01-02 15:04"

var baseHeader = []string{
	colName, colBarcode, colQuantity, colLocation, colRating, colNotes, colDate,
}

// Width hints per column, in header order. Format fidelity only, not a
// correctness property.
var baseWidths = []float64{25, 15, 10, 15, 8, 30, 18}

var imageWidths = []float64{50, 12}

// header returns the header row, with image columns iff requested.
func header(includeImages bool) []string {
	h := make([]string, 0, len(baseHeader)+2)
	h = append(h, baseHeader...)
	if includeImages {
		h = append(h, ImageDataColumn, colImageType)
	}
	return h
}

// columnWidths returns the width hints matching header(includeImages).
func columnWidths(includeImages bool) []float64 {
	w := make([]float64, 0, len(baseWidths)+2)
	w = append(w, baseWidths...)
	if includeImages {
		w = append(w, imageWidths...)
	}
	return w
}

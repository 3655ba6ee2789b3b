package imaging

import (
	"context"
	"os"
	"path/filepath"
)

// Store resolves an item id to an inline image representation (a data
// URL). An empty string with a nil error means the store has no image
// for that id.
type Store interface {
	Lookup(ctx context.Context, itemID string) (string, error)
}

// DirStore resolves item images from files named <id>.<ext> under a
// directory. It recognizes jpeg, png and gif.
type DirStore struct {
	Dir string
}

var dirStoreExts = []struct {
	ext  string
	mime string
}{
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
	{".png", "image/png"},
	{".gif", "image/gif"},
}

// Lookup reads <Dir>/<itemID>.<ext> for each known extension and returns
// the first hit as a data URL. A missing file is a miss, not an error.
func (s DirStore) Lookup(ctx context.Context, itemID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for _, e := range dirStoreExts {
		data, err := os.ReadFile(filepath.Join(s.Dir, itemID+e.ext))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", err
		}
		return EncodeDataURL(e.mime, data), nil
	}
	return "", nil
}

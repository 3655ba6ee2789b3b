package invsheet

import (
	"log/slog"
	"os"
	"path/filepath"

	"invsheet/pkg/invsheet/imaging"
)

// FileSaver delivers a finished document to its destination (disk,
// download, object store).
type FileSaver interface {
	Save(name string, data []byte) error
}

// DirSaver writes documents into a directory. An empty Dir means the
// current directory.
type DirSaver struct {
	Dir string
}

// Save writes data to <Dir>/<name>.
func (s DirSaver) Save(name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0644)
}

// Service runs export and import operations. Construct one per caller
// and pass it by reference; there is no shared global instance.
type Service struct {
	saver  FileSaver
	images *imaging.Optimizer
	logger *slog.Logger
}

// NewService creates a Service. A nil saver defaults to DirSaver in the
// current directory; a nil optimizer resolves inline images only.
func NewService(saver FileSaver, optimizer *imaging.Optimizer) *Service {
	if saver == nil {
		saver = DirSaver{}
	}
	if optimizer == nil {
		optimizer = imaging.NewOptimizer(nil)
	}
	return &Service{
		saver:  saver,
		images: optimizer,
		logger: slog.Default(),
	}
}

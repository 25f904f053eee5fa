package ingest

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/entity"
)

// Upload is one named blob handed in by the server or CLI.
type Upload struct {
	Name    string
	Content []byte
}

// Loader turns uploads into text documents.
type Loader struct {
	Logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Logger: logger}
}

// Load extracts text from every upload. A document whose content cannot be
// read is logged and skipped; document indexes follow the surviving input
// order so label identifiers stay stable.
func (l *Loader) Load(kind constants.DocKind, uploads []Upload) []entity.Document {
	docs := make([]entity.Document, 0, len(uploads))
	for _, up := range uploads {
		pages, err := ExtractPages(up.Content)
		if err != nil {
			l.Logger.Error("skipping unreadable document", "kind", string(kind), "doc", up.Name, "error", err)
			continue
		}
		docs = append(docs, entity.Document{
			Index: len(docs),
			Name:  up.Name,
			Pages: pages,
		})
	}
	return docs
}

// LoadDir reads every allowed, non-hidden file in dir (sorted by name) and
// loads it. Unreadable files are skipped like unreadable documents.
func (l *Loader) LoadDir(kind constants.DocKind, dir string) ([]entity.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var uploads []Upload
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || IsHidden(e.Name()) || !AllowedExt(filepath.Ext(e.Name())) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			l.Logger.Error("skipping unreadable file", "kind", string(kind), "doc", name, "error", err)
			continue
		}
		uploads = append(uploads, Upload{Name: name, Content: content})
	}
	return l.Load(kind, uploads), nil
}

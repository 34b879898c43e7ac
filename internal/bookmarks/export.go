package bookmarks

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Export writes the current list as indented JSON.
func (s *Store) Export(w io.Writer) error {
	data, err := json.MarshalIndent(s.List(), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportFilename builds the default export filename for the given
// instant. Date and time separators become "-" so filenames sort
// lexically and exports taken in different seconds never collide.
func ExportFilename(now time.Time) string {
	return "bookmarks-" + now.Format("2006-01-02-15-04-05") + ".json"
}

// ExportToFile writes the current list to a timestamped JSON file in
// dir and returns the path written.
func (s *Store) ExportToFile(dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, ExportFilename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := s.Export(f); err != nil {
		return "", err
	}
	return path, nil
}

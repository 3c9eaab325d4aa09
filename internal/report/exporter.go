package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Write copies report text to a byte sink.
func Write(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

// FileExporter persists report text as timestamped files under Dir.
type FileExporter struct {
	Dir string
	Now func() time.Time
}

func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{Dir: dir, Now: time.Now}
}

// Export writes text to <dir>/<prefix>_<yyyymmdd_hhmmss>.txt and returns
// the path of the created file.
func (e *FileExporter) Export(prefix, text string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.txt", prefix, e.Now().Format("20060102_150405"))
	path := filepath.Join(e.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, text); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "===== STOCK REPORT =====\n"))
	assert.Equal(t, "===== STOCK REPORT =====\n", buf.String())
}

func TestFileExporter_Export(t *testing.T) {
	dir := t.TempDir()
	e := NewFileExporter(dir)
	e.Now = func() time.Time { return time.Date(2026, 8, 23, 14, 30, 5, 0, time.UTC) }

	path, err := e.Export("stock_report", "report body\n")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "stock_report_20260823_143005.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body\n", string(content))
}

func TestFileExporter_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "nested")
	e := NewFileExporter(dir)

	path, err := e.Export("sales_report", "x")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

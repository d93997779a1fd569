package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileManager lays out the on-disk data directory. Customer documents stay
// on external drives (orders only carry links), so the only local files
// are generated order-summary PDFs.
type FileManager struct {
	baseDir    string
	summaryDir string
}

func NewFileManager(baseDir string) (*FileManager, error) {
	fm := &FileManager{
		baseDir:    baseDir,
		summaryDir: filepath.Join(baseDir, "summaries"),
	}

	for _, dir := range []string{fm.baseDir, fm.summaryDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	return fm, nil
}

// SummaryPath returns where the summary PDF for an order lives.
func (fm *FileManager) SummaryPath(orderID string) string {
	return filepath.Join(fm.summaryDir, fmt.Sprintf("%s.pdf", orderID))
}

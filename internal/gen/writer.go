package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// StdoutPath selects standard output in WriteOutput.
const StdoutPath = "-"

// WriteOutput writes content to path, or to stdout when path is empty or
// StdoutPath. Parent directories are created as needed.
func WriteOutput(path string, content string, stdout io.Writer) error {
	if path == "" || path == StdoutPath {
		_, err := io.WriteString(stdout, content)
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		err := os.MkdirAll(dir, dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	err := os.WriteFile(path, []byte(content), filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

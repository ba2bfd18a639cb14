package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/user/logview/internal/source"
)

// WriteVisible writes every line of the provider to path, in order,
// one per line. With a filtered provider this exports exactly the
// currently visible subsequence. Returns the number of lines written.
func WriteVisible(provider source.LineProvider, path string) (int, error) {
	outFile, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}
	defer outFile.Close()

	w := bufio.NewWriter(outFile)
	total := provider.LineCount()
	written := 0

	for i := 0; i < total; i++ {
		line, err := provider.GetLine(i)
		if err != nil {
			os.Remove(path)
			return written, fmt.Errorf("failed to read line %d: %w", i, err)
		}
		if line == nil {
			continue
		}

		if _, err := w.Write(line.Content); err != nil {
			os.Remove(path)
			return written, fmt.Errorf("failed to write line %d: %w", i, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			os.Remove(path)
			return written, fmt.Errorf("failed to write newline: %w", err)
		}
		written++
	}

	if err := w.Flush(); err != nil {
		os.Remove(path)
		return written, fmt.Errorf("failed to flush export file: %w", err)
	}
	return written, nil
}

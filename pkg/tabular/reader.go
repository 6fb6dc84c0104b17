package tabular

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadRows reads batch input, dropping blank lines and #-prefixed comments
// while preserving the original 1-based line numbers of the rows it keeps.
// Row text is returned trimmed.
func ReadRows(r io.Reader) ([]Row, error) {
	var rows []Row

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rows = append(rows, Row{Number: lineNum, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return rows, nil
}

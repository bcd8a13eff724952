package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"capacidad/internal/schema"
)

// readRows reads the source stream into raw rows of cell strings. The
// publication is semicolon-delimited text with a UTF-8 byte-order marker
// and no quoting or escaping, so a plain line/field split is the contract,
// not a shortcut.
func readRows(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		rows = append(rows, strings.Split(line, schema.Delimiter))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	// Trailing blank lines are not rows.
	for len(rows) > 0 && isBlankRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// trimTrailingEmpty drops empty cells beyond want, e.g. the extra field a
// terminating semicolon produces. Non-empty overflow cells are kept so the
// caller sees the width mismatch.
func trimTrailingEmpty(cells []string, want int) []string {
	for len(cells) > want && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

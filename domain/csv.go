package domain

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseBoardCSV reads board cells from CSV input with the columns
// row,col,word,category. A header line whose first field is not a number is
// skipped, as are blank lines. Coordinate parsing failures and short rows
// are reported with their line number; bound and duplicate checks are left
// to NewBoard.
func ParseBoardCSV(r io.Reader) ([]BoardCell, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var cells []BoardCell
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		line++

		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 4 {
			return nil, fmt.Errorf("line %d: expected row,col,word,category", line)
		}

		row, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			if line == 1 {
				// Header line.
				continue
			}
			return nil, fmt.Errorf("line %d: invalid row number %q", line, record[0])
		}
		col, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid column number %q", line, record[1])
		}

		cells = append(cells, BoardCell{
			Row:      row,
			Col:      col,
			Word:     record[2],
			Category: record[3],
		})
	}
	return cells, nil
}

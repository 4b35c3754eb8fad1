package pdffile

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// Ensure the optional table interface is implemented.
var _ driven.TableExtractor = (*Extractor)(nil)

// Clustering tolerances, in PDF points. Fragments within rowTolerance
// of each other vertically share a row; a horizontal gap wider than
// cellGap starts a new cell.
const (
	rowTolerance = 2.0
	cellGap      = 10.0
)

// ExtractTables recovers tabular regions from the text layer. A table
// is a run of at least two consecutive rows that each split into two
// or more cells. Cells are joined with " | " and rows with newlines.
func (e *Extractor) ExtractTables(_ context.Context, file *domain.UploadedFile) ([]string, error) {
	if file == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := pdf.NewReader(bytes.NewReader(file.Content), int64(len(file.Content)))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file.Name, err)
	}

	var tables []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		tables = append(tables, collectTables(clusterRows(page.Content().Text))...)
	}
	return tables, nil
}

// clusterRows groups positioned text fragments into rows of cells.
// Fragments sharing a baseline form a row, ordered left to right.
func clusterRows(texts []pdf.Text) [][]string {
	fragments := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			fragments = append(fragments, t)
		}
	}
	if len(fragments) == 0 {
		return nil
	}

	// Top of the page first.
	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].Y > fragments[j].Y
	})

	var groups [][]pdf.Text
	for _, t := range fragments {
		if n := len(groups); n > 0 && groups[n-1][0].Y-t.Y <= rowTolerance {
			groups[n-1] = append(groups[n-1], t)
			continue
		}
		groups = append(groups, []pdf.Text{t})
	}

	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool { return group[i].X < group[j].X })
		rows = append(rows, splitCells(group))
	}
	return rows
}

// splitCells merges adjacent fragments of a row into cells, breaking
// on horizontal gaps wider than cellGap.
func splitCells(row []pdf.Text) []string {
	var cells []string
	var cell strings.Builder
	prevEnd := 0.0

	for i, t := range row {
		if i > 0 && t.X-prevEnd > cellGap {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
		cell.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	if s := strings.TrimSpace(cell.String()); s != "" {
		cells = append(cells, s)
	}
	return cells
}

// collectTables joins maximal runs of multi-cell rows into tables.
// A lone multi-cell row is not a table; prose rows break a run.
func collectTables(rows [][]string) []string {
	var tables []string
	var run []string

	flush := func() {
		if len(run) >= 2 {
			tables = append(tables, strings.Join(run, "\n"))
		}
		run = nil
	}

	for _, cells := range rows {
		if len(cells) < 2 {
			flush()
			continue
		}
		run = append(run, strings.Join(cells, " | "))
	}
	flush()
	return tables
}

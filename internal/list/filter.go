// ABOUTME: Pure row transforms of the list engine: search, sort, paginate.
// ABOUTME: Shared by the stateful controller and the stateless admin pages.

package list

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abmusica/maestro/internal/api"
	"github.com/abmusica/maestro/internal/schema"
)

// DocID extracts the numeric id of a row document.
func DocID(doc api.Doc) int64 {
	switch id := doc["id"].(type) {
	case float64:
		return int64(id)
	case int64:
		return id
	case int:
		return int64(id)
	case string:
		n, _ := strconv.ParseInt(id, 10, 64)
		return n
	default:
		return 0
	}
}

// CellString renders one cell value for searching and display.
func CellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = CellString(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// Filter keeps the rows whose searchable cells contain the search term,
// case-insensitively. An empty term keeps everything.
func Filter(rows []api.Doc, search string, cols []schema.Column) []api.Doc {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return rows
	}
	out := make([]api.Doc, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, term, cols) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches(row api.Doc, term string, cols []schema.Column) bool {
	for _, col := range cols {
		if !col.IsSearchable() {
			continue
		}
		cell := strings.ToLower(CellString(row[col.Name]))
		if strings.Contains(cell, term) {
			return true
		}
	}
	return false
}

// Sort orders rows by the named column. The column's SortField remap decides
// which document field backs the comparison; string values compare
// case-insensitively and missing values sort as empty. The sort is stable so
// equal rows keep their server order.
func Sort(rows []api.Doc, cols []schema.Column, active string, descending bool) []api.Doc {
	col, ok := findColumn(cols, active)
	if !ok || !col.IsSortable() {
		return rows
	}
	key := col.SortKey()

	out := append([]api.Doc(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		less := compareCells(out[i][key], out[j][key])
		if descending {
			return less > 0
		}
		return less < 0
	})
	return out
}

func findColumn(cols []schema.Column, name string) (schema.Column, bool) {
	for _, col := range cols {
		if col.Name == name {
			return col, true
		}
	}
	return schema.Column{}, false
}

func compareCells(a, b any) int {
	af, aNum := a.(float64)
	bf, bNum := b.(float64)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(CellString(a)), strings.ToLower(CellString(b)))
}

// Paginate slices one page out of the rows, clamping the page index to the
// last valid page when the set shrank.
func Paginate(rows []api.Doc, page, pageSize int) ([]api.Doc, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	last := 0
	if len(rows) > 0 {
		last = (len(rows) - 1) / pageSize
	}
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	start := page * pageSize
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], page
}

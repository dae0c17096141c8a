package chart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"piechart/pkg/pie"
)

// DefaultItems is the palette shown on the home page.
var DefaultItems = []pie.Item{
	{ID: "e74c3c", Value: 12},
	{ID: "f39c12", Value: 7},
	{ID: "2ecc71", Value: 19},
	{ID: "3498db", Value: 5},
	{ID: "9b59b6", Value: 9},
}

// ParseItems reads items from text. Entries are separated by newlines or
// commas; each entry is an id and a value separated by whitespace, ':' or '='.
// Blank entries and lines starting with '#' are skipped; a leading '#' on the
// id itself is dropped so "#ff0000 3" works.
func ParseItems(text string) ([]pie.Item, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == ',' || r == ';' })
	items := make([]pie.Item, 0, len(fields))
	for i, raw := range fields {
		entry := strings.TrimSpace(raw)
		if entry == "" || strings.HasPrefix(entry, "# ") || entry == "#" {
			continue
		}
		id, value, ok := splitEntry(entry)
		if !ok {
			return nil, fmt.Errorf("entry %d %q: want \"id value\"", i+1, entry)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %d %q: %w", i+1, entry, err)
		}
		items = append(items, pie.Item{ID: strings.TrimPrefix(id, "#"), Value: v})
	}
	if len(items) == 0 {
		return nil, errors.New("no items")
	}
	return items, nil
}

// FormatItems is the inverse of ParseItems, one entry per line.
func FormatItems(items []pie.Item) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.ID+" "+strconv.FormatFloat(item.Value, 'f', -1, 64))
	}
	return strings.Join(lines, "\n")
}

func splitEntry(entry string) (string, string, bool) {
	if i := strings.IndexAny(entry, ":="); i >= 0 {
		id, value := strings.TrimSpace(entry[:i]), strings.TrimSpace(entry[i+1:])
		return id, value, id != "" && value != ""
	}
	parts := strings.Fields(entry)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

package compare

import (
	"fmt"
	"strings"

	"github.com/khanglvm/tool-advisor/internal/catalog"
)

// MinTableMembers is the smallest comparison set the table view renders;
// below this the view shows a prompt instead of a table.
const MinTableMembers = 2

// Placeholder marks a missing or empty cell value. Cells are never blank.
const Placeholder = "n/a"

// NoRating marks a tool that has never been rated.
const NoRating = "none"

// Attribute names, in fixed row order.
var attributes = []string{
	"Categories",
	"Platforms",
	"Badges",
	"Related",
	"Support Forum",
	"Average Rating",
	"Description",
}

// Table is the comparison view model: one column per member tool in
// comparison-set order, one row per fixed attribute.
type Table struct {
	// Columns are the member tool names, in set order.
	Columns []string

	// Rows are the attribute rows, each with one cell per column.
	Rows []Row
}

// Row is a single attribute across all compared tools.
type Row struct {
	Attribute string
	Cells     []string
}

// AverageFunc resolves a tool's average rating. The second return value is
// false when the tool has never been rated.
type AverageFunc func(toolName string) (float64, bool)

// BuildTable constructs the comparison table for the given members.
//
// Members that no longer resolve to a catalog record are dropped, so a tool
// removed from the catalog (or the set) never leaves a stale column.
func BuildTable(members []string, store *catalog.Store, average AverageFunc) Table {
	table := Table{}

	tools := []catalog.ToolRecord{}
	for _, name := range members {
		tool, ok := store.Get(name)
		if !ok {
			continue
		}
		tools = append(tools, tool)
		table.Columns = append(table.Columns, name)
	}

	for _, attr := range attributes {
		row := Row{Attribute: attr}
		for _, tool := range tools {
			row.Cells = append(row.Cells, cellValue(attr, tool, average))
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// cellValue formats one attribute of one tool.
func cellValue(attribute string, tool catalog.ToolRecord, average AverageFunc) string {
	switch attribute {
	case "Categories":
		return joinOrPlaceholder(tool.Categories)
	case "Platforms":
		return joinOrPlaceholder(tool.Platforms)
	case "Badges":
		return joinOrPlaceholder(tool.Badges)
	case "Related":
		return joinOrPlaceholder(tool.Related)
	case "Support Forum":
		if len(tool.SupportForums) > 0 {
			return "Yes"
		}
		return "No"
	case "Average Rating":
		if avg, ok := average(tool.Name); ok {
			return fmt.Sprintf("%.1f", avg)
		}
		return NoRating
	case "Description":
		if tool.Description != "" {
			return tool.Description
		}
		return Placeholder
	}
	return Placeholder
}

func joinOrPlaceholder(values []string) string {
	if len(values) == 0 {
		return Placeholder
	}
	return strings.Join(values, ", ")
}

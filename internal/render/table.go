package render

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"collsuite/internal/feature"
)

// TableRenderer is implemented by types that can render themselves as a table.
type TableRenderer interface {
	// Headers returns the column headers for the table.
	Headers() []string
	// Rows returns the data rows for the table.
	Rows() [][]string
}

// PrintTable writes data as a borderless table to the writer.
func PrintTable(w io.Writer, data TableRenderer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data.Headers())

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(data.Rows())
	table.Render()
}

// TableData is a simple implementation of TableRenderer.
type TableData struct {
	headers []string
	rows    [][]string
}

// NewTableData creates a new TableData with the given headers.
func NewTableData(headers ...string) *TableData {
	return &TableData{
		headers: headers,
		rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *TableData) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

// Headers implements TableRenderer.
func (t *TableData) Headers() []string {
	return t.headers
}

// Rows implements TableRenderer.
func (t *TableData) Rows() [][]string {
	return t.rows
}

// FeatureTable lists every feature of the taxonomy with its description
// and direct implications.
func FeatureTable(tax *feature.Taxonomy) *TableData {
	data := NewTableData("Feature", "Implies", "Description")
	for _, def := range tax.All() {
		implied := feature.NewSet(def.Implies...).Sorted()
		names := make([]string, 0, len(implied))
		for _, f := range implied {
			names = append(names, string(f))
		}
		data.AddRow(string(def.Feature), dashIfEmpty(strings.Join(names, ", ")), def.Description)
	}
	return data
}

// ContainerTable lists container kinds with their capability features.
func ContainerTable(kinds []string, features func(kind string) []feature.Feature) *TableData {
	data := NewTableData("Container", "Features")
	for _, kind := range kinds {
		data.AddRow(kind, dashIfEmpty(feature.NewSet(features(kind)...).String()))
	}
	return data
}

func dashIfEmpty(s string) string {
	if s == "" || s == "[]" {
		return "-"
	}
	return s
}

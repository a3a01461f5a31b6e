package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"pew/lib/xmltree"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func render(w io.Writer, v xmltree.Value, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	renderValue(w, "", v)
	return nil
}

func renderValue(w io.Writer, indent string, v xmltree.Value) {
	switch v.Kind() {
	case xmltree.KindNone:
		fmt.Fprintln(w, indent+"(no value)")
	case xmltree.KindRowset:
		rows, _ := v.Rows()
		renderRowset(w, rows)
	case xmltree.KindNode:
		node, _ := v.Node()
		renderNode(w, indent, node)
	default:
		fmt.Fprintln(w, indent+v.String())
	}
}

func renderNode(w io.Writer, indent string, node *xmltree.Node) {
	for _, name := range node.Fields() {
		field, _ := node.Get(name)
		switch field.Kind() {
		case xmltree.KindRowset, xmltree.KindNode:
			fmt.Fprintf(w, "%s%s:\n", indent, name)
			renderValue(w, indent+"  ", field)
		default:
			fmt.Fprintf(w, "%s%s: %s\n", indent, name, field.String())
		}
	}
}

// renderRowset prints rows as a table whose columns are every field seen
// across the rows, in first-seen order.
func renderRowset(w io.Writer, rows []xmltree.Value) {
	var columns []string
	seen := map[string]bool{}
	for _, row := range rows {
		node, ok := row.Node()
		if !ok {
			if !seen[xmltree.ValueField] {
				seen[xmltree.ValueField] = true
				columns = append(columns, xmltree.ValueField)
			}
			continue
		}
		for _, name := range node.Fields() {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	header := table.Row{}
	for _, c := range columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, row := range rows {
		node, isNode := row.Node()
		cells := table.Row{}
		for _, c := range columns {
			if !isNode {
				if c == xmltree.ValueField {
					cells = append(cells, row.String())
				} else {
					cells = append(cells, "")
				}
				continue
			}
			cell, _ := node.Get(c)
			cells = append(cells, strings.TrimSpace(cell.String()))
		}
		t.AppendRow(cells)
	}

	t.Render()
}

package main

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/olekukonko/tablewriter"

	"github.com/sirosfoundation/go-rit/pkg/rit"
)

// writeXML pretty prints a response element
func writeXML(w io.Writer, el *etree.Element) error {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w)

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	table.Header(header...)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

func writeReport(w io.Writer, r *rit.Report) error {
	if r.Status != "" || r.Info != "" {
		if _, err := io.WriteString(w, r.Status+" "+r.Info+"\n"); err != nil {
			return err
		}
	}

	rows := make([][]string, 0, len(r.Objects))
	for _, o := range r.Objects {
		var sz string
		if o.IdentifierSZ != nil {
			sz = o.IdentifierSZ.IdentifierType + ":" + o.IdentifierSZ.ArtificialIdentifier + o.IdentifierSZ.ConcatenationOfField
			if o.IdentifierSZ.DatabaseTable != "" {
				sz += "@" + o.IdentifierSZ.DatabaseTable
			}
		}
		rows = append(rows, []string{sz, o.IdentifierRIT, o.State, strings.Join(o.Errors, "; ")})
	}
	return writeTable(w, []string{"Source ID", "RIT ID", "State", "Errors"}, rows)
}

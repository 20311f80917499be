package main

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tidy/internal/hash"
	"tidy/internal/plan"
)

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderPlanTable lists each planned move, with paths shown relative to the
// plan root so the strategy folders read at a glance.
func renderPlanTable(p *plan.Plan) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Source", "Destination"})
	for _, entry := range p.Entries {
		tw.AppendRow(table.Row{
			relativeTo(p.Root, entry.Source),
			relativeTo(p.Root, entry.Destination),
		})
	}
	return tw.Render()
}

// renderDupesTable lists every member of every duplicate group, one row per
// file, numbered so the members of a group read as one block.
func renderDupesTable(groups []hash.Group) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Group", "Digest", "Size", "Path"})
	for i, group := range groups {
		for _, path := range group.Paths {
			tw.AppendRow(table.Row{
				i + 1,
				shortID(group.Digest),
				humanize.Bytes(uint64(group.Size)),
				path,
			})
		}
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

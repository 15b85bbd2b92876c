package app

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/specialistvlad/targetconf/internal/target"
)

// Properties prints the catalog of target properties as a table.
func (a *App) Properties() {
	t := table.NewWriter()
	t.SetOutputMirror(a.outW)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Property", "Type", "Default", "Description"})
	for _, def := range target.Definitions() {
		t.AppendRow(table.Row{def.Name(), def.TypeName(), def.DefaultString(), def.Description()})
	}
	t.Render()
}

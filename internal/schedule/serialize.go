package schedule

import "github.com/carefacility/shiftgen/internal/shift"

// Grid is the wire form of a Table: string shift tokens keyed by staff
// id, used by the CLI's validate/edit-check subcommands and the HTTP
// API so a table can cross a process boundary as JSON.
type Grid struct {
	Year        int                 `json:"year"`
	Month       int                 `json:"month"`
	Assignments map[string][]string `json:"assignments"`
}

// ToGrid converts t into its wire form. Assignments is a map, so t's
// staff order is not carried over.
func ToGrid(t *Table) Grid {
	g := Grid{Year: t.Year, Month: t.Month, Assignments: make(map[string][]string, len(t.StaffIDs()))}
	for _, id := range t.StaffIDs() {
		row := t.Row(id)
		tokens := make([]string, len(row))
		for i, v := range row {
			tokens[i] = v.String()
		}
		g.Assignments[id] = tokens
	}
	return g
}

// FromGrid rebuilds a Table from its wire form. Unparseable tokens
// fall back to shift.Off rather than failing the whole decode, since a
// single corrupted cell should not block inspecting the rest.
func FromGrid(g Grid) *Table {
	ids := make([]string, 0, len(g.Assignments))
	for id := range g.Assignments {
		ids = append(ids, id)
	}
	t := New(g.Year, g.Month, ids)
	for id, tokens := range g.Assignments {
		for i, tok := range tokens {
			day := i + 1
			v, _ := shift.ParseType(tok)
			t.Set(id, day, v)
		}
	}
	return t
}

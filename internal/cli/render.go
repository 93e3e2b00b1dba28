// Package cli renders a completed schedule.Table and its warnings to
// the terminal: a day-by-staff grid and a per-staff summary table,
// both via tablewriter, plus color-coded status lines via fatih/color.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

// RenderGrid prints one row per staff member, one column per day, each
// cell the shift's short display token.
func RenderGrid(t *schedule.Table, byID map[string]*roster.Staff) {
	headerColor.Printf("Schedule %04d-%02d\n", t.Year, t.Month)

	header := []string{"Staff"}
	for day := 1; day <= t.Days; day++ {
		header = append(header, strconv.Itoa(day))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for _, id := range t.StaffIDs() {
		name := id
		if s := byID[id]; s != nil {
			name = s.Name
		}
		row := []string{name}
		for day := 1; day <= t.Days; day++ {
			row = append(row, t.Get(id, day).DisplayToken())
		}
		table.Append(row)
	}
	table.Render()
}

// RenderSummary prints one row per staff member with shift-type counts
// and each staff's remaining work-gap against their monthly target.
func RenderSummary(t *schedule.Table, byID map[string]*roster.Staff) {
	headerColor.Println("Monthly summary")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Staff", "Early", "Late", "Night", "Overtime", "Part", "Workdays", "Off", "Gap"})
	table.SetBorder(false)
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgCyanColor, tablewriter.Bold},
	)

	for _, row := range schedule.Summarize(t, byID) {
		name := row.Name
		if name == "" {
			name = row.StaffID
		}
		table.Append([]string{
			name,
			strconv.Itoa(row.Early),
			strconv.Itoa(row.Late),
			strconv.Itoa(row.Night),
			strconv.Itoa(row.Overtime),
			strconv.Itoa(row.Part),
			strconv.Itoa(row.Workdays),
			strconv.Itoa(row.OffDays),
			strconv.Itoa(row.WorkGap),
		})
	}
	table.Render()
}

// RenderWarnings prints each warning on its own line, or a single
// success line when there are none.
func RenderWarnings(warnings []string) {
	if len(warnings) == 0 {
		successColor.Println("no warnings")
		return
	}
	warnColor.Printf("%d warning(s):\n", len(warnings))
	for _, w := range warnings {
		fmt.Printf("  - %s\n", w)
	}
}

// RenderError prints a red-highlighted error line.
func RenderError(context string, err error) {
	errorColor.Printf("%s: %s\n", context, err)
}

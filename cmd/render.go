package cmd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/solver"
)

var (
	tileStyle  = lipgloss.NewStyle().Bold(true).Width(4).Align(lipgloss.Center)
	boardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderBoard draws b as a bordered grid.
func renderBoard(b *board.Board) string {
	rows := make([]string, 0, b.Rows())
	for _, letters := range b.Letters() {
		cells := make([]string, 0, len(letters))
		for _, t := range letters {
			if t == string(board.QU) {
				t = "Qu"
			}
			cells = append(cells, tileStyle.Render(t))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderWords lays out solved words as a table with their paths.
func renderWords(found []solver.Found) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Word", "Length", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, f := range found {
		table.Append([]string{f.Word, strconv.Itoa(len(f.Word)), formatPath(f.Path)})
	}
	table.SetFooter([]string{fmt.Sprintf("Total %d", len(found)), "", ""})
	table.Render()

	return buf.String()
}

// formatPath writes a path as "r,c r,c ...", the form parsePath reads.
func formatPath(p board.Path) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%d,%d", c.Row, c.Col)
	}
	return strings.Join(parts, " ")
}

// parsePath reads "r,c" pairs separated by spaces or semicolons.
func parsePath(s string) (board.Path, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ';' || r == '\t' })
	p := make(board.Path, 0, len(fields))
	for _, f := range fields {
		var c board.Coord
		if _, err := fmt.Sscanf(f, "%d,%d", &c.Row, &c.Col); err != nil {
			return nil, fmt.Errorf("bad cell %q: want ROW,COL", f)
		}
		p = append(p, c)
	}
	return p, nil
}

// parseFound turns a --found list into the uppercase set the engines expect.
func parseFound(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToUpper(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

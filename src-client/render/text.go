package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const cellWidth = 12

// Text writes the grid and day list for a terminal. Selected days are
// bracketed, days outside the month are dotted.
func Text(w io.Writer, v View) error {
	var sb strings.Builder
	writeGrid(&sb, v)
	writeDayList(&sb, v)
	_, err := io.WriteString(w, sb.String())
	return err
}

// TextGrid is Text without the day list.
func TextGrid(w io.Writer, v View) error {
	var sb strings.Builder
	writeGrid(&sb, v)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeGrid(sb *strings.Builder, v View) {
	sb.WriteString(v.MonthLabel + "\n")
	for _, day := range v.Weekdays {
		sb.WriteString(pad(day, cellWidth))
	}
	sb.WriteString("\n")

	for week := 0; week < len(v.Grid.Cells)/7; week++ {
		cells := v.Grid.Cells[week*7 : week*7+7]
		lines := 1
		for _, cell := range cells {
			if n := 1 + len(cell.Chips) + boolToInt(cell.Overflow > 0); n > lines {
				lines = n
			}
		}
		for line := 0; line < lines; line++ {
			for _, cell := range cells {
				var text string
				switch {
				case line == 0:
					text = fmt.Sprintf("%2d", cell.Day)
					switch {
					case cell.Selected:
						text = "[" + text + "]"
					case cell.Muted:
						text = "." + text
					}
				case line-1 < len(cell.Chips):
					text = " " + cell.Chips[line-1].Title
				case line-1 == len(cell.Chips) && cell.Overflow > 0:
					text = " " + cell.OverflowLabel()
				}
				sb.WriteString(pad(text, cellWidth))
			}
			sb.WriteString("\n")
		}
	}
}

func writeDayList(sb *strings.Builder, v View) {
	sb.WriteString("\n" + v.SelectedLabel + "\n")
	if len(v.DayList) == 0 {
		sb.WriteString("  No events\n")
	}
	for _, item := range v.DayList {
		fmt.Fprintf(sb, "  #%d  %s  %s\n", item.ID, item.TimeRange, item.Title)
		if item.Memo != "" {
			fmt.Fprintf(sb, "        %s\n", item.Memo)
		}
	}
}

// pad truncates or right-pads s to width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		runes := []rune(s)
		return string(runes[:width-1]) + " "
	}
	return s + strings.Repeat(" ", width-n)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/submission"
	"tableflip.dev/subtrack/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("#9999  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Day prints a day heading followed by its items.
func (pp *PrettyPrint) Day(day string, items ...item.Item) {
	pp.TitleWithCount(day, len(items))
	pp.Items(items...)
}

// Items prints one line per item: display number, description, the
// sequence number of repeated base names and a mark for received items.
func (pp *PrettyPrint) Items(items ...item.Item) {
	w := pp.out()
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)
	g := color.New(color.FgGreen)

	width := len(strconv.Itoa(len(items)))
	for i, it := range items {
		if pp.ShowID {
			id := "#" + strconv.Itoa(it.ID)
			_, _ = y.Fprint(w, id)
			if pad := len(spacing) - len(id); pad > 0 {
				_, _ = fmt.Fprint(w, strings.Repeat(" ", pad))
			}
		}
		_, _ = f.Fprintf(w, "%*d. ", width, i+1)
		_, _ = t.Fprint(w, it.Description)
		if it.SequenceNumber != nil {
			_, _ = f.Fprintf(w, " (%d)", *it.SequenceNumber)
		}
		if it.IsReceived {
			_, _ = g.Fprint(w, " ✓")
		}
		_, _ = fmt.Fprintln(w, "")
	}
	_, _ = fmt.Fprintln(w, "")
}

// Statistics prints the per base name table.
func (pp *PrettyPrint) Statistics(stats []submission.ItemStat) {
	bold := color.New(color.Bold)

	if len(stats) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " no history\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Item"), bold.Sprint("Count"), bold.Sprint("Share"))
	for _, s := range stats {
		tbl.AddRow(s.Name, s.Count, fmt.Sprintf("%.1f%%", s.Percentage))
	}
	tbl.RightAlign(1)
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Monthly prints submitted item counts per month, newest first.
func (pp *PrettyPrint) Monthly(months []submission.MonthCount) {
	bold := color.New(color.Bold)

	if len(months) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Month"), bold.Sprint("Items"))
	for _, m := range months {
		tbl.AddRow(timeutil.FormatMonth(m.Month), m.Count)
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Warning prints a non fatal problem, e.g. a dropped history write.
func (pp *PrettyPrint) Warning(format string, args ...any) {
	_, _ = color.New(color.FgYellow).Fprintf(pp.out(), "warning: "+format+"\n", args...)
}

// Package report renders diagnostics for terminals, with source snippets
// and carets under the offending text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ziust-lang/ziust/common"
)

// TabstopWidth is the number of columns a tab advances to.
const TabstopWidth = 4

// Renderer configures diagnostic output.
type Renderer struct {
	// Compact prints one line per diagnostic, without snippets.
	Compact bool
	// Name maps a span source to the name shown; nil prints it unchanged.
	Name func(source string) string
	// Source returns the text of a file, or false when unavailable.
	Source func(source string) (string, bool)
}

// Render writes diags followed by a summary line and returns the number
// of errors written.
func (r Renderer) Render(diags []common.Diagnostic, out io.Writer) (errorCount int, err error) {
	for _, d := range diags {
		if _, err = fmt.Fprintln(out, r.Diagnostic(d)); err != nil {
			return
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return
			}
		}
		errorCount++
	}
	if errorCount > 0 && !r.Compact {
		_, err = fmt.Fprintf(out, "encountered %s\n", pluralize(errorCount, "error"))
	}
	return
}

func pluralize(count int, what string) string {
	if count == 1 {
		return "1 " + what
	}
	return fmt.Sprint(count, " ", what, "s")
}

func (r Renderer) name(source string) string {
	if r.Name != nil {
		return r.Name(source)
	}
	return source
}

func (r Renderer) location(s common.Span) string {
	return fmt.Sprintf("%s:%d:%d", r.name(s.Source), s.LineStart, s.ColumnStart)
}

// Diagnostic renders a single diagnostic.
func (r Renderer) Diagnostic(d common.Diagnostic) string {
	var out strings.Builder
	if r.Compact {
		fmt.Fprintf(&out, "%s: error[%s]: %s", r.location(d.Span), d.Kind, d.Message)
		return out.String()
	}

	fmt.Fprintf(&out, "error[%s]: %s", d.Kind, d.Message)

	spans := append([]common.Span{d.Span}, d.Related...)
	bar := 0
	for _, s := range spans {
		bar = max(bar, len(strconv.Itoa(int(s.LineStart))))
	}

	for i, s := range spans {
		if s.IsZero() {
			continue
		}
		fmt.Fprintf(&out, "\n%*s--> %s", bar, "", r.location(s))
		if i > 0 {
			out.WriteString(" (related)")
		}
		r.snippet(&out, s, bar)
	}
	return out.String()
}

func (r Renderer) snippet(out *strings.Builder, s common.Span, bar int) {
	if r.Source == nil {
		return
	}
	text, ok := r.Source(s.Source)
	if !ok {
		return
	}
	lines := strings.Split(text, "\n")
	if s.LineStart == 0 || int(s.LineStart) > len(lines) {
		return
	}
	line := strings.TrimRight(lines[s.LineStart-1], "\r")

	runes := []rune(line)
	start := min(int(s.ColumnStart)-1, len(runes))
	end := len(runes)
	if s.LineEnd == s.LineStart {
		end = min(int(s.ColumnEnd), len(runes))
	}
	start = max(start, 0)
	end = max(end, start)

	prefix := expandTabs(string(runes[:start]), 0)
	marked := expandTabs(string(runes[start:end]), uniseg.StringWidth(prefix))
	width := max(uniseg.StringWidth(marked), 1)

	fmt.Fprintf(out, "\n%*s |", bar, "")
	fmt.Fprintf(out, "\n%*d | %s", bar, s.LineStart, expandTabs(line, 0))
	fmt.Fprintf(out, "\n%*s | %s%s", bar, "", strings.Repeat(" ", uniseg.StringWidth(prefix)), strings.Repeat("^", width))
}

// expandTabs replaces tabs with spaces up to the next tabstop, counting
// from column.
func expandTabs(s string, column int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var out strings.Builder
	for {
		nextTab := strings.IndexByte(s, '\t')
		if nextTab == -1 {
			out.WriteString(s)
			return out.String()
		}
		column += uniseg.StringWidth(s[:nextTab])
		out.WriteString(s[:nextTab])

		tab := TabstopWidth - (column % TabstopWidth)
		column += tab
		out.WriteString(strings.Repeat(" ", tab))
		s = s[nextTab+1:]
	}
}

package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Render writes one line per diagnostic to w, severities colored when
// colored is set.
func Render(w io.Writer, diags []Diagnostic, colored bool) error {
	paint := map[Severity]*color.Color{
		Info:     color.New(color.FgCyan),
		Warning:  color.New(color.FgYellow, color.Bold),
		Error:    color.New(color.FgRed, color.Bold),
		Internal: color.New(color.FgMagenta, color.Bold),
	}
	for _, c := range paint {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for _, d := range diags {
		sev := d.Severity.String()
		if c, ok := paint[d.Severity]; ok {
			sev = c.Sprint(sev)
		}
		var err error
		if d.Span != nil {
			_, err = fmt.Fprintf(w, "%s: %s [%s]: %s\n", d.Span, sev, d.Stage, d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s [%s]: %s\n", sev, d.Stage, d.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

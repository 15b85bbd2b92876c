package app

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/hcl/v2"
	"golang.org/x/term"
)

// defaultWidth wraps diagnostics when the output is not a terminal.
const defaultWidth = 80

type diagnosticStyle struct {
	color bool
	width uint
}

// styleFor decides colour and wrapping for diagnostics written to w.
func styleFor(w io.Writer, mode string) diagnosticStyle {
	style := diagnosticStyle{width: defaultWidth}
	isTerminal := false
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		isTerminal = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			style.width = uint(width)
		}
	}

	switch mode {
	case ColorAlways:
		style.color = true
	case ColorNever:
		style.color = false
	default:
		style.color = isTerminal
	}
	return style
}

// printDiagnostics writes diags with source snippets from files.
func (a *App) printDiagnostics(files map[string]*hcl.File, diags hcl.Diagnostics) error {
	if len(diags) == 0 {
		return nil
	}
	w := hcl.NewDiagnosticTextWriter(a.outW, files, a.style.width, a.style.color)
	if err := w.WriteDiagnostics(diags); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}
	return nil
}

// errorsOf returns the error diagnostics of diags, or nil.
func errorsOf(diags hcl.Diagnostics) hcl.Diagnostics {
	var errs hcl.Diagnostics
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			errs = append(errs, d)
		}
	}
	return errs
}

func countSeverity(diags hcl.Diagnostics, severity hcl.DiagnosticSeverity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

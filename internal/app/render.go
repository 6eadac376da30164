package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/bedc/internal/diag"
	"golang.org/x/term"
)

// jsonDiagnostic is the machine-readable form of one diagnostic.
type jsonDiagnostic struct {
	Kind    diag.Kind `json:"kind"`
	Section string    `json:"section,omitempty"`
	Path    string    `json:"path,omitempty"`
	Message string    `json:"message"`
	File    string    `json:"file,omitempty"`
	Line    int       `json:"line,omitempty"`
	Column  int       `json:"column,omitempty"`
}

// writeDiagnostics renders diags in one of the config.DiagnosticFormats.
// The json format always writes an array, even when it is empty.
func writeDiagnostics(w io.Writer, format, filename string, src []byte, diags diag.Diagnostics) error {
	switch format {
	case "json":
		return writeJSONDiagnostics(w, diags)
	case "pretty":
		if len(diags) == 0 {
			return nil
		}
		color, width := terminal(w)
		files := map[string]*hcl.File{filename: {Bytes: src}}
		return hcl.NewDiagnosticTextWriter(w, files, width, color).WriteDiagnostics(diags.HCL())
	default:
		for _, d := range diags {
			if _, err := fmt.Fprintln(w, d.Error()); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeJSONDiagnostics(w io.Writer, diags diag.Diagnostics) error {
	out := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		jd := jsonDiagnostic{Kind: d.Kind, Section: d.Section, Path: d.Path, Message: d.Message}
		if d.HasRange() {
			jd.File = d.Range.Filename
			jd.Line = d.Range.Start.Line
			jd.Column = d.Range.Start.Column
		}
		out = append(out, jd)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// terminal reports whether w is an interactive terminal and, if known, its
// width in columns.
func terminal(w io.Writer) (bool, uint) {
	f, ok := w.(*os.File)
	if !ok {
		return false, 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return true, 0
	}
	return true, uint(width)
}

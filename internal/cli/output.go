package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/logrusorgru/aurora"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Output modes for --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// printer renders demo steps in text mode and the final entity state in
// json and yaml modes.
type printer struct {
	w    io.Writer
	mode string
	au   aurora.Aurora
	num  *message.Printer
}

func newPrinter(w io.Writer, mode string, color bool) (*printer, error) {
	switch mode {
	case outputText, outputJSON, outputYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: %s, %s, %s)", mode, outputText, outputJSON, outputYAML)
	}
	return &printer{
		w:    w,
		mode: mode,
		au:   aurora.NewAurora(color),
		num:  message.NewPrinter(language.English),
	}, nil
}

func (p *printer) text() bool { return p.mode == outputText }

// line prints regardless of mode.
func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) heading(title string) {
	if !p.text() {
		return
	}
	fmt.Fprintf(p.w, "\n%v\n", p.au.Cyan("=== "+title+" ===").Bold())
}

func (p *printer) note(format string, args ...any) {
	if !p.text() {
		return
	}
	fmt.Fprintln(p.w, p.num.Sprintf(format, args...))
}

func (p *printer) ok(format string, args ...any) {
	if !p.text() {
		return
	}
	fmt.Fprintf(p.w, "%v %s\n", p.au.Green("[ok]"), p.num.Sprintf(format, args...))
}

func (p *printer) noop(format string, args ...any) {
	if !p.text() {
		return
	}
	fmt.Fprintf(p.w, "%v %s\n", p.au.Brown("[no change]"), p.num.Sprintf(format, args...))
}

func (p *printer) rejected(err error) {
	if !p.text() {
		return
	}
	fmt.Fprintf(p.w, "%v %s\n", p.au.Red("[rejected]"), err)
}

func (p *printer) block(s fmt.Stringer) {
	if !p.text() {
		return
	}
	fmt.Fprintln(p.w, s.String())
}

// result prints v in json or yaml mode. Text mode has already shown it.
func (p *printer) result(v any) error {
	switch p.mode {
	case outputJSON:
		return p.encodeJSON(v)
	case outputYAML:
		return p.encodeYAML(v)
	}
	return nil
}

func (p *printer) encodeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}

func (p *printer) encodeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	_, err = p.w.Write(data)
	return err
}

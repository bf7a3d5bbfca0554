package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format  string
	w       io.Writer
	errW    io.Writer
	verbose bool
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// Trace writes request details to the error stream when verbose is set
func (o *Output) Trace(format string, args ...any) {
	if !o.verbose {
		return
	}
	_, _ = fmt.Fprintf(o.errW, "> "+format+"\n", args...)
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errW, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case TurnResult:
		o.printTurn(v)
	case HealthResult:
		_, _ = fmt.Fprintf(o.w, "Status: %s (%d cards, store %s)\n", v.Status, v.Cards, v.Store)
	default:
		o.printJSON(data)
	}
}

func (o *Output) printTurn(t TurnResult) {
	if t.Response.OutputSpeech != nil {
		_, _ = fmt.Fprintln(o.w, t.Response.OutputSpeech.Text)
	}
	if !t.Response.ShouldEndSession {
		_, _ = fmt.Fprintln(o.w, "(waiting for your answer)")
	}
}

// TurnResult is the skill's reply (matches API)
type TurnResult struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          struct {
		OutputSpeech *struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"outputSpeech,omitempty"`
		ShouldEndSession bool `json:"shouldEndSession"`
	} `json:"response"`
}

// HealthResult is the health endpoint's reply (matches API)
type HealthResult struct {
	Status string `json:"status"`
	Cards  int    `json:"cards"`
	Store  string `json:"store"`
}

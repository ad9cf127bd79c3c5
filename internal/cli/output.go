package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(data)
		return
	}
	fmt.Println(data)
}

// Printf outputs a formatted line in text mode, or the given data in json mode
func (o *Output) Printf(data any, format string, args ...any) {
	if o.format == "json" {
		o.Print(data)
		return
	}
	fmt.Printf(format+"\n", args...)
}

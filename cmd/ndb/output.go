package main

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"

	"github.com/uplang/ndb"
)

const (
	formatDebug = "debug"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var formats = []string{formatDebug, formatJSON, formatYAML}

func validFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

// writeOutput renders a Statement or Database in the requested format.
func writeOutput(w io.Writer, format string, v any) error {
	var out []byte
	switch format {
	case formatJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		out = append(b, '\n')
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		out = b
	case formatDebug:
		out = []byte(ndb.Dump(v) + "\n")
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	_, err := w.Write(out)
	return err
}

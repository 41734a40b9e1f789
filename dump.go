package ndb

import "github.com/alecthomas/repr"

// Dump renders v, typically a Statement or Database, as indented Go syntax.
// It is the human readable form used when no structured format is requested.
func Dump(v any) string {
	return repr.String(v, repr.Indent("  "))
}

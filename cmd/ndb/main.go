// Command ndb parses ndb statements given on the command line and prints
// them as JSON, YAML or a debug dump.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

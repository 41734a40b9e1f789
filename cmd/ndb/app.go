package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/uplang/ndb"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitSyntax  = 2
)

var errInvalidName = errors.New("invalid name")

// command holds what the actions share once Before has run.
type command struct {
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

func newApp(stdout, stderr io.Writer) *cli.App {
	cmd := &command{stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	app := &cli.App{
		Name:      "ndb",
		Usage:     "parse plain text ndb statements",
		Version:   buildVersion(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{"NDB_LOG_LEVEL"},
			},
		},
		Before: cmd.before,
		After:  cmd.after,
		Commands: []*cli.Command{
			{
				Name:      "print",
				Usage:     "parse each TEXT as one key=value statement and print the result",
				ArgsUsage: "TEXT...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   formatDebug,
						Usage:   "output format (" + strings.Join(formats, ", ") + ")",
						EnvVars: []string{"NDB_FORMAT"},
					},
					&cli.BoolFlag{
						Name:    "strict",
						Usage:   "reject input left over after the statement",
						EnvVars: []string{"NDB_STRICT"},
					},
				},
				Action: cmd.print,
			},
		},
		// Exit codes are turned into a process status by run.
		ExitErrHandler: func(*cli.Context, error) {},
	}
	return app
}

func (cmd *command) before(c *cli.Context) error {
	logger, err := newLogger(cmd.stderr, c.String("log-level"))
	if err != nil {
		return cli.Exit(err.Error(), exitInvalid)
	}
	cmd.logger = logger
	return nil
}

func (cmd *command) after(*cli.Context) error {
	_ = cmd.logger.Sync()
	return nil
}

func (cmd *command) print(c *cli.Context) error {
	format := c.String("format")
	if !validFormat(format) {
		return cli.Exit(fmt.Sprintf("unknown format %q, want one of %s", format, strings.Join(formats, ", ")), exitInvalid)
	}
	if c.NArg() == 0 {
		return cli.Exit("print: missing TEXT argument", exitInvalid)
	}

	cmd.logger.Info("print called", zap.Int("inputs", c.NArg()), zap.String("format", format))

	parser := ndb.NewParser().WithStrict(c.Bool("strict"))
	var db ndb.Database
	for _, text := range c.Args().Slice() {
		if err := validateInput(text); err != nil {
			return cli.Exit(err.Error(), exitInvalid)
		}
		stmt, rest, err := parser.ParseStatement(text)
		if err != nil {
			return cli.Exit(fmt.Sprintf("%q: %v", text, err), exitSyntax)
		}
		cmd.logger.Info("valid statement", zap.String("key", stmt.Key))
		cmd.logger.Debug("parsed",
			zap.String("key", stmt.Key),
			zap.Stringer("kind", stmt.Value.Kind()),
			zap.String("value", stmt.Value.Token()),
			zap.String("rest", rest),
		)
		db.Append(stmt)
	}

	var out any = db
	if len(db.Statements) == 1 {
		out = db.Statements[0]
	}
	if err := writeOutput(cmd.stdout, format, out); err != nil {
		return cli.Exit(err.Error(), exitInvalid)
	}
	return nil
}

// validateInput rejects input before it reaches the parser. The names ""
// and "a" are reserved.
func validateInput(text string) error {
	if text == "" || text == "a" {
		return errInvalidName
	}
	return nil
}

// run executes the app and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.Run(args)
	if err == nil {
		return exitOK
	}

	prefix := color.New(color.FgRed, color.Bold).Sprint("error:")
	fmt.Fprintln(stderr, prefix, err)

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return exitInvalid
}

// Command toyjson checks, dumps and benchmarks JSON documents with the
// toyjson parser.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/d1ced/toyjson"
)

// cli holds the state shared by all commands.
type cli struct {
	stdout   io.Writer
	stderr   io.Writer
	logger   log.Logger
	cfg      toyjson.Config
	logLevel string
}

func newApp(stdout, stderr io.Writer) *kingpin.Application {
	c := &cli{stdout: stdout, stderr: stderr, logger: log.NewNopLogger()}

	app := kingpin.New("toyjson", "Parse JSON documents with the toyjson parser.")
	app.UsageWriter(stdout).ErrorWriter(stderr)
	app.Flag("max-depth", "Maximum nesting of arrays and objects; 0 for the default, negative for no limit.").
		Default("0").IntVar(&c.cfg.MaxDepth)
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").EnumVar(&c.logLevel, "debug", "info", "warn", "error")
	app.PreAction(c.setupLogger)

	check := &checkCommand{cli: c}
	cmd := app.Command("check", "Parse each file and report whether it is valid JSON.")
	check.files = cmd.Arg("file", "JSON files to check.").Required().ExistingFiles()
	cmd.Action(check.run)

	dump := &dumpCommand{cli: c}
	cmd = app.Command("dump", "Print every leaf of a JSON document with its path.")
	dump.file = cmd.Arg("file", "JSON file to dump.").Required().ExistingFile()
	cmd.Action(dump.run)

	bench := &benchCommand{cli: c}
	cmd = app.Command("bench", "Time the parser against encoding/json.")
	bench.iterations = cmd.Flag("iterations", "Number of parses per decoder.").Short('n').Default("10000").Int()
	bench.file = cmd.Arg("file", "JSON file to parse.").Required().ExistingFile()
	cmd.Action(bench.run)

	return app
}

func (c *cli) setupLogger(*kingpin.ParseContext) error {
	var opt level.Option
	switch c.logLevel {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(c.stderr))
	logger = level.NewFilter(logger, opt)
	c.logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return nil
}

func (c *cli) parseFile(name string) (toyjson.Value, error) {
	f, err := os.Open(name)
	if err != nil {
		return toyjson.Value{}, err
	}
	defer f.Close()
	return c.cfg.ParseReader(f)
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		app.Errorf("%s", err)
		os.Exit(1)
	}
}

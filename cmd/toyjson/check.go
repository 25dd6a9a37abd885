package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// checkCommand reports for each file whether it parses.
type checkCommand struct {
	*cli
	files *[]string
}

func (cmd *checkCommand) run(*kingpin.ParseContext) error {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	failed := 0
	for _, name := range *cmd.files {
		_, err := cmd.parseFile(name)
		if err != nil {
			failed++
			level.Debug(cmd.logger).Log("msg", "invalid document", "file", name, "err", err)
			fmt.Fprintf(cmd.stdout, "%s: %s\n", name, bad.Sprint(err))
			continue
		}
		fmt.Fprintf(cmd.stdout, "%s: %s\n", name, ok.Sprint("ok"))
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files are not valid JSON", failed, len(*cmd.files))
	}
	return nil
}

package main

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/d1ced/toyjson"
)

// dumpCommand prints one line per leaf: path, type and value.
type dumpCommand struct {
	*cli
	file *string
}

func (cmd *dumpCommand) run(*kingpin.ParseContext) error {
	v, err := cmd.parseFile(*cmd.file)
	if err != nil {
		return errors.Wrapf(err, "parse %s", *cmd.file)
	}
	return v.Walk(func(path string, leaf toyjson.Value) error {
		if path == "" {
			path = "."
		}
		_, err := fmt.Fprintf(cmd.stdout, "%s\t%s\t%s\n", path, leaf.Type(), leafText(leaf))
		return err
	})
}

func leafText(v toyjson.Value) string {
	switch v.Type() {
	case toyjson.NullType:
		return "null"
	case toyjson.BoolType:
		return strconv.FormatBool(v.Bool())
	case toyjson.NumberType:
		return v.Number().String()
	case toyjson.StringType:
		return strconv.Quote(v.Str())
	case toyjson.ArrayType:
		return "[]"
	case toyjson.ObjectType:
		return "{}"
	default:
		return "?"
	}
}

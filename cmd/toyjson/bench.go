package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// benchCommand parses one document repeatedly with toyjson and with
// encoding/json and reports the elapsed time of both.
type benchCommand struct {
	*cli
	iterations *int
	file       *string
}

func (cmd *benchCommand) run(*kingpin.ParseContext) error {
	if *cmd.iterations <= 0 {
		return errors.Errorf("iterations must be positive, got %d", *cmd.iterations)
	}
	data, err := os.ReadFile(*cmd.file)
	if err != nil {
		return errors.Wrap(err, "read document")
	}
	text := string(data)
	n := *cmd.iterations

	// A document toyjson rejects would only time the error path.
	if _, err := cmd.cfg.Parse(text); err != nil {
		return errors.Wrapf(err, "parse %s", *cmd.file)
	}

	fmt.Fprintf(cmd.stdout, "document: %s, %s iterations\n",
		humanize.Bytes(uint64(len(data))), humanize.Comma(int64(n)))

	own, err := cmd.measure("toyjson", n, func() error {
		_, err := cmd.cfg.Parse(text)
		return err
	})
	if err != nil {
		return err
	}
	ref, err := cmd.measure("encoding/json", n, func() error {
		var v interface{}
		return json.Unmarshal(data, &v)
	})
	if err != nil {
		return err
	}

	for _, r := range []struct {
		name    string
		elapsed time.Duration
	}{{"toyjson", own}, {"encoding/json", ref}} {
		perOp := r.elapsed / time.Duration(n)
		rate := float64(len(data)) * float64(n) / r.elapsed.Seconds()
		fmt.Fprintf(cmd.stdout, "=== %-13s: %s (%s/op, %s/s)\n",
			r.name, r.elapsed, perOp, humanize.Bytes(uint64(rate)))
	}
	fmt.Fprintf(cmd.stdout, "ratio: %.2fx\n", own.Seconds()/ref.Seconds())
	return nil
}

func (cmd *benchCommand) measure(name string, n int, parse func() error) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := parse(); err != nil {
			return 0, errors.Wrapf(err, "%s iteration %d", name, i)
		}
	}
	elapsed := time.Since(start)
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	level.Debug(cmd.logger).Log("msg", "benchmark finished", "decoder", name, "iterations", n, "elapsed", elapsed)
	return elapsed, nil
}

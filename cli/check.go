// ErrorSentinel
// Copyright (C) 2013-2024+ James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	cliUtil "github.com/kyledewey/ErrorSentinel-sub001/cli/util"
	"github.com/kyledewey/ErrorSentinel-sub001/project"
	"github.com/kyledewey/ErrorSentinel-sub001/prometheus"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Check is the `check` subcommand. It runs the rules of a project over every
// cell and prints a record per cell.
type Check struct {
	*cliUtil.CheckArgs

	Name string // of the subcommand

	// Fs is where the files are read from. It defaults to the os.
	Fs afero.Fs

	// Stdout defaults to os.Stdout.
	Stdout io.Writer
}

// Run executes the subcommand. A strict check returns an error if some cell
// failed, after all the records are printed.
func (obj *Check) Run(ctx context.Context, data *cliUtil.Data) (_ bool, reterr error) {
	if obj.Fs == nil {
		obj.Fs = afero.NewOsFs()
	}
	if obj.Stdout == nil {
		obj.Stdout = os.Stdout
	}
	Logf := func(format string, v ...interface{}) {
		data.Flags.Logf(obj.Name+": "+format, v...)
	}
	if data.Flags.Verbose {
		cliUtil.Hello(data.Program, data.Version, data.Flags) // say hello!
	}

	l := &loader{
		Fs:     obj.Fs,
		Defs:   obj.Defs,
		NoCore: obj.NoCore,
		Debug:  data.Flags.Debug,
		Logf:   Logf,
	}
	reg, err := l.Load()
	if err != nil {
		return false, err
	}

	config, err := project.LoadFile(obj.Fs, obj.Project)
	if err != nil {
		return false, err
	}

	p := &project.Project{
		Config:   config,
		Registry: reg,
		Optimize: obj.Optimize,
		Apply:    obj.Apply,
		Debug:    data.Flags.Debug,
		Logf: func(format string, v ...interface{}) {
			data.Flags.Logf("project: "+format, v...)
		},
	}

	if obj.Prometheus {
		prom := &prometheus.Prometheus{
			Listen: obj.PrometheusListen,
			Logf: func(format string, v ...interface{}) {
				data.Flags.Logf("prometheus: "+format, v...)
			},
		}
		if err := prom.Init(); err != nil {
			return false, errwrap.Wrapf(err, "can't initiate the prometheus instance")
		}
		Logf("prometheus: starting instance on %s", prom.Listen)
		if err := prom.Start(); err != nil {
			return false, errwrap.Wrapf(err, "can't start the prometheus instance")
		}
		defer func() {
			Logf("prometheus: stopping instance")
			if err := prom.Stop(context.Background()); err != nil {
				reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "the prometheus instance exited poorly"))
			}
		}()
		p.Metrics = prom
	}

	if err := p.Init(); err != nil {
		return false, errwrap.Wrapf(err, "could not load project `%s`", obj.Project)
	}
	if data.Flags.Debug {
		for _, id := range p.Classes() {
			Logf("uses %s", id)
		}
	}

	// install the exit signal handler
	ctx, cancel := context.WithCancel(ctx)
	wg := &sync.WaitGroup{}
	defer wg.Wait()
	defer cancel()
	wg.Add(1)
	go func() {
		defer wg.Done()
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM) // catch ^C
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			Logf("interrupted by %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	records, err := p.Run(ctx)
	failed := 0
	for _, r := range records {
		if r.Failed() {
			failed++
		} else if obj.Failed {
			continue
		}
		fmt.Fprintf(obj.Stdout, "%s\n", r)
	}
	if err != nil {
		return false, errwrap.Wrapf(err, "the run was cut short")
	}

	counts := project.Count(records)
	Logf("%d cells: %d good, %d bad, %d clean, %d corrected, %d errors", len(records),
		counts[project.StatusGood], counts[project.StatusBad],
		counts[project.StatusClean], counts[project.StatusCorrected],
		counts[project.StatusError])

	if obj.Apply {
		sheets, err := p.Sheets()
		if err != nil {
			return false, err
		}
		out, err := yaml.Marshal(&project.Config{Sheets: sheets})
		if err != nil {
			return false, errwrap.Wrapf(err, "could not encode the grid")
		}
		if _, err := obj.Stdout.Write(out); err != nil {
			return false, err
		}
	}

	if obj.Strict && failed > 0 {
		return true, errwrap.Wrapf(cliUtil.CellsFailed, "%d of %d", failed, len(records))
	}
	return true, nil
}

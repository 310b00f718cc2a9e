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

// Package prometheus provides functions that are useful to control and manage
// the built-in prometheus instance of a project run.
package prometheus

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/kyledewey/ErrorSentinel-sub001/util"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultPrometheusListen is the listen address used when none is given.
const DefaultPrometheusListen = "127.0.0.1:9233"

// Prometheus is the struct that contains information about the
// prometheus instance. Run Init() on it.
type Prometheus struct {
	Listen string // the listen specification for the net/http server

	// Logf receives the errors of the http server. It is optional.
	Logf func(format string, v ...interface{})

	registry *prometheus.Registry

	ruleOutcomeTotal        *prometheus.CounterVec // total of rule outcomes, by rule kind and status
	cellsTotal              prometheus.Counter     // total of cells visited
	processStartTimeSeconds prometheus.Gauge       // process start time in seconds since unix epoch

	server *http.Server
}

// Init some parameters - currently the Listen address and the metrics.
func (obj *Prometheus) Init() error {
	if len(obj.Listen) == 0 {
		obj.Listen = DefaultPrometheusListen
	}
	obj.registry = prometheus.NewRegistry()

	obj.ruleOutcomeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errorsentinel_rule_outcome_total",
			Help: "Number of rule evaluations, by outcome.",
		},
		// Labels for this metric.
		// kind: the kind of rule: good, correct
		// status: the outcome of the rule on one cell
		[]string{"kind", "status"},
	)
	if err := obj.registry.Register(obj.ruleOutcomeTotal); err != nil {
		return errwrap.Wrapf(err, "can't register the rule outcome counter")
	}

	obj.cellsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "errorsentinel_cells_total",
			Help: "Number of cells that were checked.",
		},
	)
	if err := obj.registry.Register(obj.cellsTotal); err != nil {
		return errwrap.Wrapf(err, "can't register the cell counter")
	}

	obj.processStartTimeSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "errorsentinel_process_start_time_seconds",
			Help: "Start time of the process since unix epoch in seconds.",
		},
	)
	if err := obj.registry.Register(obj.processStartTimeSeconds); err != nil {
		return errwrap.Wrapf(err, "can't register the start time gauge")
	}
	// directly set the processStartTimeSeconds
	obj.processStartTimeSeconds.SetToCurrentTime()

	return nil
}

// Gatherer returns the registry of this instance, so that the metrics can be
// read without a server.
func (obj *Prometheus) Gatherer() prometheus.Gatherer {
	return obj.registry
}

// Start runs a http server in a go routine, that responds to /metrics as
// prometheus would expect. The listen error, if any, is returned right away.
func (obj *Prometheus) Start() error {
	l, err := net.Listen("tcp", obj.Listen)
	if err != nil {
		return errwrap.Wrapf(err, "can't listen on `%s`", obj.Listen)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(obj.registry, promhttp.HandlerOpts{}))
	obj.server = &http.Server{Handler: mux}
	if obj.Logf != nil {
		obj.server.ErrorLog = log.New(&util.LogWriter{Prefix: "http: ", Logf: obj.Logf}, "", 0)
	}
	go obj.server.Serve(l) // returns ErrServerClosed on Stop
	return nil
}

// Stop the http server.
func (obj *Prometheus) Stop(ctx context.Context) error {
	if obj.server == nil {
		return nil
	}
	return obj.server.Shutdown(ctx)
}

// UpdateRuleOutcomeTotal counts one outcome of a rule on a cell.
func (obj *Prometheus) UpdateRuleOutcomeTotal(kind, status string) error {
	labels := prometheus.Labels{"kind": kind, "status": status}
	metric, err := obj.ruleOutcomeTotal.GetMetricWith(labels)
	if err != nil {
		return err
	}
	metric.Inc()
	return nil
}

// UpdateCellsTotal counts one visited cell.
func (obj *Prometheus) UpdateCellsTotal() error {
	obj.cellsTotal.Inc()
	return nil
}

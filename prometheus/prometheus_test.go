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

package prometheus

import (
	"context"
	"testing"
)

// TestRuleOutcomeMetrics tests that the rule outcomes are counted by label.
func TestRuleOutcomeMetrics(t *testing.T) {
	var prom Prometheus
	if err := prom.Init(); err != nil {
		t.Errorf("init error: %+v", err)
		return
	}
	if prom.Listen != DefaultPrometheusListen {
		t.Errorf("unexpected listen address: %s", prom.Listen)
	}
	for _, x := range [][2]string{{"good", "good"}, {"good", "good"}, {"good", "bad"}, {"correct", "corrected"}} {
		if err := prom.UpdateRuleOutcomeTotal(x[0], x[1]); err != nil {
			t.Errorf("update error: %+v", err)
		}
	}
	for i := 0; i < 3; i++ {
		prom.UpdateCellsTotal()
	}

	// Get a list of metrics collected by Prometheus. This is the only way
	// to get Prometheus metrics without implicitly creating them.
	metrics, err := prom.Gatherer().Gather()
	if err != nil {
		t.Errorf("error while gathering metrics: %s", err)
		return
	}

	// expectedMetrics is a map: keys are metrics name and values are
	// expected and actual count of metrics with that name.
	expectedMetrics := map[string][2]int{
		"errorsentinel_rule_outcome_total": {
			3, 0,
		},
		"errorsentinel_cells_total": {
			1, 0,
		},
		"errorsentinel_process_start_time_seconds": {
			1, 0,
		},
	}
	total := 0.0
	for _, metric := range metrics {
		for name, count := range expectedMetrics {
			if metric.GetName() == name {
				expectedMetrics[name] = [2]int{count[0], len(metric.Metric)}
			}
		}
		if metric.GetName() == "errorsentinel_rule_outcome_total" {
			for _, m := range metric.Metric {
				total += m.GetCounter().GetValue()
			}
		}
		if metric.GetName() == "errorsentinel_cells_total" {
			if v := metric.Metric[0].GetCounter().GetValue(); v != 3 {
				t.Errorf("expected 3 cells, got %v", v)
			}
		}
	}

	for name, count := range expectedMetrics {
		if count[1] != count[0] {
			t.Errorf("with: %s, expected %d metrics, got %d metrics", name, count[0], count[1])
		}
	}
	if total != 4 {
		t.Errorf("expected 4 outcomes, got %v", total)
	}
}

// TestTwoInstances tests that the instances don't share a registry.
func TestTwoInstances(t *testing.T) {
	for i := 0; i < 2; i++ {
		prom := &Prometheus{}
		if err := prom.Init(); err != nil {
			t.Errorf("init error on instance %d: %+v", i, err)
		}
	}
}

func TestStartStop(t *testing.T) {
	prom := &Prometheus{Listen: "127.0.0.1:0"}
	if err := prom.Init(); err != nil {
		t.Errorf("init error: %+v", err)
		return
	}
	if err := prom.Start(); err != nil {
		t.Errorf("start error: %+v", err)
		return
	}
	if err := prom.Stop(context.Background()); err != nil {
		t.Errorf("stop error: %+v", err)
	}
}

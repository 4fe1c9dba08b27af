// Copyright 2024 The goredo Authors
// This file is part of the goredo library.
//
// The goredo library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The goredo library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the goredo library. If not, see <http://www.gnu.org/licenses/>.

// Package metrics wraps rcrowley/go-metrics counters for the operations a
// goredo Session performs, so a host application can export them alongside
// its own metrics without goredo itself taking an opinion on how.
package metrics

import "github.com/rcrowley/go-metrics"

// Set is a related group of counters for one session. Attach it with
// goredo.WithMetrics.
type Set struct {
	registry metrics.Registry

	PositionsAdded   metrics.Counter
	PositionsDropped metrics.Counter
	BranchesAdded    metrics.Counter
	GraftsPerformed  metrics.Counter
	CyclesSuppressed metrics.Counter
	DeferredResolved metrics.Counter
}

// New creates a Set backed by a fresh registry.
func New() *Set {
	r := metrics.NewRegistry()
	return &Set{
		registry:         r,
		PositionsAdded:   metrics.NewRegisteredCounter("goredo/positions/added", r),
		PositionsDropped: metrics.NewRegisteredCounter("goredo/positions/dropped", r),
		BranchesAdded:    metrics.NewRegisteredCounter("goredo/branches/added", r),
		GraftsPerformed:  metrics.NewRegisteredCounter("goredo/grafts/performed", r),
		CyclesSuppressed: metrics.NewRegisteredCounter("goredo/cycles/suppressed", r),
		DeferredResolved: metrics.NewRegisteredCounter("goredo/deferred/resolved", r),
	}
}

// Registry returns the underlying go-metrics registry, for wiring into a
// reporter (graphite, statsd, an HTTP endpoint, whatever the host uses).
func (s *Set) Registry() metrics.Registry { return s.registry }

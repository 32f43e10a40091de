// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Start and Stop were called.
type mockWorker struct {
	startCount int
	stopCount  int
}

func (m *mockWorker) Start(context.Context) { m.startCount++ }
func (m *mockWorker) Stop()                 { m.stopCount++ }

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.startCount != 1 {
			t.Errorf("worker[%d]: expected startCount=1, got %d", i, w.startCount)
		}
	}
}

func TestWorkers_Start_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Start_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Start_Order(t *testing.T) {
	order := []int{}

	ws := New(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Start(context.Background())

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := New(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Stop()

	// Shutdown unwinds in reverse so late workers lose their
	// dependencies last.
	expected := []int{3, 2, 1}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_StopWithoutStart(t *testing.T) {
	w := &mockWorker{}
	ws := New(w)

	ws.Stop()

	if w.stopCount != 1 {
		t.Errorf("expected Stop to be forwarded once, got %d", w.stopCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Start(context.Context) { *o.order = append(*o.order, o.id) }
func (o *orderWorker) Stop()                 { *o.order = append(*o.order, o.id) }

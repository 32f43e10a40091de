package workers

import "context"

// Workers runs a fixed set of background jobs as one unit.
type Workers struct {
	workers []Worker
}

// New bundles the given workers. Order matters: Start launches them
// first to last, Stop unwinds them last to first.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

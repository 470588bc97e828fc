package pricewatch

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/partstack/benchrank/internal/adapters/pricefeed"
	"github.com/partstack/benchrank/pkg/logger"
	"github.com/partstack/benchrank/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount  = 4
	poolShutdownTimeout = 30 * time.Second
)

// Fetcher retrieves shopping offers for a part name.
// *pricefeed.Client satisfies this.
type Fetcher interface {
	Offers(ctx context.Context, query string) (pricefeed.Result, error)
}

// Worker drains refresh jobs and records the cheapest offer per part.
type Worker struct {
	queue   Queue
	fetcher Fetcher
	book    *PriceBook
	name    string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a new worker with configuration options.
func NewWorker(queue Queue, fetcher Fetcher, book *PriceBook, opts ...WorkerOption) *Worker {
	w := &Worker{
		queue:    queue,
		fetcher:  fetcher,
		book:     book,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("pricewatch"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop until ctx is canceled or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	jobChan := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobChan:
			if !ok {
				return
			}
			if err := w.processJob(ctx, job); err != nil {
				w.logger.Error(ctx, "price refresh failed", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processJob fetches offers for one part and records the cheapest price.
func (w *Worker) processJob(ctx context.Context, job Job) error {
	result, err := w.fetcher.Offers(ctx, job.Part)
	if err != nil {
		metrics.RecordPriceRefresh("error")
		return fmt.Errorf("fetching offers for %q: %w", job.Part, err)
	}

	// Offers are sorted cheapest first; take the first with a numeric price.
	for _, offer := range result.Offers {
		if offer.Price != nil && *offer.Price > 0 {
			w.book.Record(job.Part, *offer.Price)
			metrics.RecordPriceRefresh("ok")
			w.logger.Debug(ctx, "recorded price",
				logger.String("part", job.Part),
				logger.Float64("price", *offer.Price),
			)
			return nil
		}
	}

	metrics.RecordPriceRefresh("empty")
	return nil
}

// Pool manages multiple workers over a shared queue and book.
type Pool struct {
	workers []*Worker
	queue   Queue

	shutdown chan struct{}

	logger logger.Logger
}

// NewPool creates a worker pool.
func NewPool(workerCount int, queue Queue, fetcher Fetcher, book *PriceBook) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	pool := &Pool{
		workers:  make([]*Worker, workerCount),
		queue:    queue,
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("pricewatch-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewWorker(
			queue,
			fetcher,
			book,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		go worker.Run(ctx)
	}
}

// Shutdown closes the queue and waits for all workers to drain.
func (p *Pool) Shutdown(ctx context.Context) error {
	if err := p.queue.Close(); err != nil {
		p.logger.Error(ctx, "error closing queue", logger.Error(err))
	}

	close(p.shutdown)

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, worker := range p.workers {
		select {
		case <-worker.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	return nil
}

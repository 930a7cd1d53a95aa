// Package recorder is the asynchronous handoff between the settlement
// orchestrator and the scoring store. Semantics are at most once, best
// effort: a full queue drops the record, a failed delivery is logged with
// RECORDING_FAILED and never retried beyond the configured attempts, and
// nothing here ever reaches the player's wager response.
package recorder

import (
	"context"
	"sync"
	"time"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	defaultQueueSize   = 256
	defaultMaxAttempts = 3
	deliveryTimeout    = 5 * time.Second
	retryBackoff       = 200 * time.Millisecond
)

// Sink is where records land: either the local scoring usecase or the HTTP
// client for a separately deployed scoring service.
type Sink interface {
	Record(ctx context.Context, result *domain.GameResult) error
}

// Dispatcher implements domain.ResultRecorder over a buffered channel and a
// single delivery worker.
type Dispatcher struct {
	sink        Sink
	logger      *logger.Logger
	queue       chan *domain.GameResult
	maxAttempts int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	isRunning bool
	dropped   int64
}

// NewDispatcher creates a dispatcher; Start must be called before records
// are delivered.
func NewDispatcher(sink Sink, logger *logger.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		sink:        sink,
		logger:      logger,
		queue:       make(chan *domain.GameResult, queueSize),
		maxAttempts: defaultMaxAttempts,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Record queues the result without blocking the wager path. A full queue
// drops the record; the drop is counted and logged, never surfaced.
func (d *Dispatcher) Record(result *domain.GameResult) {
	if result == nil {
		return
	}

	select {
	case d.queue <- result:
	default:
		d.mu.Lock()
		d.dropped++
		dropped := d.dropped
		d.mu.Unlock()

		d.logger.Warn("Result recorder queue full, dropping record",
			zap.String("code", domain.ErrCodeRecordingFailed),
			zap.String("username", result.Username),
			zap.String("game", result.Game),
			zap.Int64("dropped_total", dropped))
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isRunning {
		d.logger.Warn("Result recorder dispatcher is already running")
		return
	}
	d.isRunning = true
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		d.logger.Info("Result recorder dispatcher started")

		for {
			select {
			case <-d.ctx.Done():
				d.drain()
				d.logger.Info("Result recorder dispatcher stopped")
				return
			case result := <-d.queue:
				d.deliver(result)
			}
		}
	}()
}

// Stop cancels the worker, delivers what is already queued and waits for it
// to exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.isRunning {
		d.mu.Unlock()
		return
	}
	d.isRunning = false
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}

// Dropped returns how many records were lost to a full queue.
func (d *Dispatcher) Dropped() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// deliver attempts the sink a bounded number of times, then gives up.
func (d *Dispatcher) deliver(result *domain.GameResult) {
	var lastErr error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		lastErr = d.sink.Record(ctx, result)
		cancel()

		if lastErr == nil {
			return
		}
		time.Sleep(retryBackoff)
	}

	d.logger.Error("Failed to record game result",
		zap.String("code", domain.ErrCodeRecordingFailed),
		zap.String("username", result.Username),
		zap.String("game", result.Game),
		zap.Int("attempts", d.maxAttempts),
		zap.Error(lastErr))
}

// drain makes a best-effort pass over whatever is still queued at shutdown.
func (d *Dispatcher) drain() {
	for {
		select {
		case result := <-d.queue:
			d.deliver(result)
		default:
			return
		}
	}
}

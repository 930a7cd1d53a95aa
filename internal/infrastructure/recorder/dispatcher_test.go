package recorder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegaslabs/casinocore/internal/domain"
	"github.com/vegaslabs/casinocore/internal/infrastructure/logger"
)

type captureSink struct {
	mu      sync.Mutex
	results []*domain.GameResult
	failFor int
	calls   int
	done    chan struct{}
}

func newCaptureSink(expected int) *captureSink {
	return &captureSink{done: make(chan struct{}, expected)}
}

func (s *captureSink) Record(_ context.Context, result *domain.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.calls <= s.failFor {
		return errors.New("scoring store unavailable")
	}
	s.results = append(s.results, result)
	select {
	case s.done <- struct{}{}:
	default:
	}
	return nil
}

func (s *captureSink) recorded() []*domain.GameResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.GameResult, len(s.results))
	copy(out, s.results)
	return out
}

func (s *captureSink) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitDelivered(t *testing.T, sink *captureSink, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-sink.done:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func testResult(username string) *domain.GameResult {
	return &domain.GameResult{
		Username:  username,
		Game:      string(domain.GameDice),
		BetAmount: 10,
		Payout:    20,
		Result:    string(domain.ResultWin),
		Timestamp: time.Now().UTC(),
	}
}

func TestDispatcherDeliversToSink(t *testing.T) {
	sink := newCaptureSink(1)
	log := logger.NewLogger("development", "error")
	d := NewDispatcher(sink, log, 8)

	d.Start()
	defer d.Stop()

	d.Record(testResult("alice"))
	waitDelivered(t, sink, 1)

	results := sink.recorded()
	require.Len(t, results, 1)
	assert.Equal(t, "alice", results[0].Username)
	assert.Equal(t, int64(0), d.Dropped())
}

func TestDispatcherRetriesFailedDelivery(t *testing.T) {
	sink := newCaptureSink(1)
	sink.failFor = 2
	log := logger.NewLogger("development", "error")
	d := NewDispatcher(sink, log, 8)

	d.Start()
	defer d.Stop()

	d.Record(testResult("alice"))
	waitDelivered(t, sink, 1)

	assert.Equal(t, 3, sink.callCount())
	require.Len(t, sink.recorded(), 1)
}

func TestDispatcherGivesUpAfterMaxAttempts(t *testing.T) {
	sink := newCaptureSink(1)
	sink.failFor = 10
	log := logger.NewLogger("development", "error")
	d := NewDispatcher(sink, log, 8)

	d.Start()
	d.Record(testResult("alice"))
	d.Stop()

	assert.Equal(t, defaultMaxAttempts, sink.callCount())
	assert.Empty(t, sink.recorded())
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	sink := newCaptureSink(1)
	log := logger.NewLogger("development", "error")
	d := NewDispatcher(sink, log, 1)

	// Worker never started, so the single slot fills and the rest drop.
	d.Record(testResult("alice"))
	d.Record(testResult("bob"))
	d.Record(testResult("carol"))

	assert.Equal(t, int64(2), d.Dropped())
}

func TestDispatcherIgnoresNilResult(t *testing.T) {
	sink := newCaptureSink(1)
	log := logger.NewLogger("development", "error")
	d := NewDispatcher(sink, log, 1)

	d.Record(nil)

	assert.Equal(t, int64(0), d.Dropped())
	assert.Empty(t, d.queue)
}

func TestDispatcherStopDrainsQueue(t *testing.T) {
	sink := newCaptureSink(3)
	log := logger.NewLogger("development", "error")
	d := NewDispatcher(sink, log, 8)

	d.Record(testResult("alice"))
	d.Record(testResult("bob"))
	d.Record(testResult("carol"))

	d.Start()
	d.Stop()

	results := sink.recorded()
	assert.Len(t, results, 3)
}

func TestDispatcherStopIsIdempotent(t *testing.T) {
	sink := newCaptureSink(1)
	log := logger.NewLogger("development", "error")
	d := NewDispatcher(sink, log, 8)

	d.Start()
	d.Stop()
	d.Stop()
}

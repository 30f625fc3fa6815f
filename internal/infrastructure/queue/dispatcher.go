package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
	"github.com/wanderlust/tourism-site/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	deliverTimeout = 5 * time.Second
)

// ErrStopped is returned by Forward once the dispatcher has shut down.
var ErrStopped = errors.New("contact dispatcher stopped")

// Dispatcher forwards contact messages to a sink from a fixed set of workers.
// Messages are sharded by sender email, so one sender's messages are
// delivered in submission order.
type Dispatcher struct {
	workers []chan domain.ContactMessage
	sink    ports.ContactSink
	log     zerolog.Logger
	wg      sync.WaitGroup

	// mu orders Forward against shutdown: Forward holds it shared across
	// the closed check and the send, so once closed is set under the
	// exclusive lock no further message can enter a worker channel.
	mu      sync.RWMutex
	closed  bool
	stopped chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.ContactSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ContactMessage, numWorkers),
		sink:    sink,
		log:     log,
		stopped: make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ContactMessage, channelBuffer)
	}
	return d
}

// Start launches the workers. When ctx is cancelled the dispatcher stops
// accepting messages, each worker delivers what is already buffered and
// exits; Wait blocks until they are all gone.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		<-ctx.Done()
		d.mu.Lock()
		d.closed = true
		close(d.stopped)
		d.mu.Unlock()
	}()

	base := context.WithoutCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(base, i, ch)
	}
}

// Wait blocks until every goroutine started by Start has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Forward queues msg on the worker owning its sender. It blocks only while
// that worker's buffer is full and gives up when ctx ends. A nil return means
// the message will be handed to the sink, shutdown included.
func (d *Dispatcher) Forward(ctx context.Context, msg domain.ContactMessage) error {
	idx := d.shardIndex(msg.Email)
	ch := d.workers[idx]

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrStopped
	}

	select {
	case ch <- msg:
		metrics.ContactQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(ch)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps a sender email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(email)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

// runWorker keeps consuming until the dispatcher is closed, so a Forward
// blocked on a full buffer always completes before shutdown proceeds.
func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ContactMessage) {
	defer d.wg.Done()
	workerID := strconv.Itoa(id)

	for {
		select {
		case <-d.stopped:
			d.drain(ctx, workerID, ch)
			return
		case msg := <-ch:
			metrics.ContactQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			d.deliver(ctx, workerID, msg)
		}
	}
}

// drain delivers whatever is still buffered. It runs after the dispatcher is
// closed, when nothing else can be added to ch.
func (d *Dispatcher) drain(ctx context.Context, workerID string, ch <-chan domain.ContactMessage) {
	for {
		select {
		case msg := <-ch:
			d.deliver(ctx, workerID, msg)
		default:
			metrics.ContactQueueDepth.WithLabelValues(workerID).Set(0)
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID string, msg domain.ContactMessage) {
	ctx, cancel := context.WithTimeout(ctx, deliverTimeout)
	defer cancel()

	if err := d.sink.Deliver(ctx, msg); err != nil {
		metrics.ContactForwardedTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Str("message_id", msg.ID).
			Str("worker_id", workerID).
			Msg("contact delivery failed")
		return
	}
	metrics.ContactForwardedTotal.WithLabelValues("delivered").Inc()
}

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/logger"
	"github.com/osse101/UrbanPark_Go/internal/metrics"
)

// Publisher reads the authoritative active-spot state after each mutation and
// broadcasts it. Reads and hub enqueues happen under one mutex, and the hub is
// FIFO, so every observer sees strictly increasing sequence numbers.
type Publisher struct {
	reader   SpotReader
	hub      Broadcaster
	dispatch Dispatcher
	notifier Notifier
	timeout  time.Duration
	now      func() time.Time

	mu  sync.Mutex
	seq uint64

	// At most one publication job waits in the queue; it reads fresh state
	// when it runs, so later requests fold into it.
	pendMu       sync.Mutex
	queued       bool
	pendingCause string
}

// NewPublisher creates a publisher. A nil dispatcher publishes synchronously.
func NewPublisher(reader SpotReader, hub Broadcaster, dispatch Dispatcher, timeout time.Duration) *Publisher {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	return &Publisher{
		reader:   reader,
		hub:      hub,
		dispatch: dispatch,
		timeout:  timeout,
		now:      time.Now,
	}
}

// SetNotifier attaches a cross-instance notifier. Call before serving traffic.
func (p *Publisher) SetNotifier(n Notifier) {
	p.notifier = n
}

// PublishAfterMutation schedules a publication and returns immediately
func (p *Publisher) PublishAfterMutation(ctx context.Context, cause string) {
	p.pendMu.Lock()
	if p.queued {
		// Remote notices never displace a local cause, which still has to be relayed
		if cause != domain.CauseRemote {
			p.pendingCause = cause
		}
		p.pendMu.Unlock()
		return
	}
	p.queued = true
	p.pendingCause = cause
	p.pendMu.Unlock()

	if p.dispatch == nil {
		_ = p.runPending(context.WithoutCancel(ctx))
		return
	}

	if !p.dispatch.TryEnqueue(publishJob{p}) {
		p.pendMu.Lock()
		p.queued = false
		p.pendMu.Unlock()
		metrics.SnapshotPublications.WithLabelValues(metrics.ResultDropped).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishDropped, "cause", cause, "error", domain.ErrPublisherSaturated)
	}
}

// runPending takes the folded cause, publishes, then relays local changes
func (p *Publisher) runPending(ctx context.Context) error {
	p.pendMu.Lock()
	cause := p.pendingCause
	p.queued = false
	p.pendMu.Unlock()

	err := p.Publish(ctx, cause)

	if p.notifier != nil && cause != domain.CauseRemote {
		if nerr := p.notifier.Notify(ctx, cause); nerr != nil {
			logger.FromContext(ctx).Warn(LogMsgNotifyFailed, "cause", cause, "error", nerr)
		}
	}
	return err
}

// Publish reads the active spots and broadcasts them to every observer
func (p *Publisher) Publish(ctx context.Context, cause string) error {
	log := logger.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	snap, err := p.readLocked(ctx, cause)
	if err != nil {
		metrics.SnapshotPublications.WithLabelValues(metrics.ResultError).Inc()
		log.Error(LogMsgPublishFailed, "cause", cause, "error", err)
		return err
	}

	if !p.hub.Broadcast(domain.EventTypeSnapshot, eventID(snap.Sequence), snap) {
		metrics.SnapshotPublications.WithLabelValues(metrics.ResultDropped).Inc()
		log.Warn(LogMsgDeliveryRejected, "cause", cause, "sequence", snap.Sequence)
		return domain.ErrPublisherSaturated
	}

	metrics.SnapshotPublications.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Debug(LogMsgPublished, "cause", cause, "sequence", snap.Sequence, "spots", len(snap.Spots))
	return nil
}

// Welcome queues the current snapshot for one newly registered observer, in
// order with broadcasts
func (p *Publisher) Welcome(ctx context.Context, clientID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap, err := p.readLocked(ctx, "")
	if err != nil {
		return err
	}
	if !p.hub.SendTo(clientID, domain.EventTypeSnapshot, eventID(snap.Sequence), snap) {
		return errors.New(ErrMsgWelcomeRejected)
	}
	return nil
}

// readLocked must be called with p.mu held
func (p *Publisher) readLocked(ctx context.Context, cause string) (*domain.Snapshot, error) {
	rctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	spots, err := p.reader.ListActiveSpots(rctx)
	if err != nil {
		if errors.Is(err, domain.ErrStoreFailure) {
			return nil, fmt.Errorf("%s: %w", ErrMsgReadFailed, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStoreFailure, ErrMsgReadFailed, err)
	}
	if spots == nil {
		spots = []domain.Spot{}
	}

	p.seq++
	return &domain.Snapshot{
		Sequence: p.seq,
		Cause:    cause,
		ReadAt:   p.now().UTC(),
		Spots:    spots,
	}, nil
}

// Sequence returns the number of snapshots read so far
func (p *Publisher) Sequence() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq
}

func eventID(seq uint64) string {
	return strconv.FormatUint(seq, 10)
}

// publishJob adapts a pending publication to the worker pool
type publishJob struct {
	p *Publisher
}

func (j publishJob) Process(ctx context.Context) error {
	return j.p.runPending(ctx)
}

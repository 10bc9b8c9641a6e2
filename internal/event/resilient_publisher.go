package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PackSim_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter // optional
}

type retryJob struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// A failed first attempt is queued and Publish returns nil, so callers never
// fail a collection mutation because a subscriber did.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig

	queue    chan retryJob
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewResilientPublisher creates a publisher and starts its retry worker.
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries < 1 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	p := &ResilientPublisher{
		inner:  inner,
		config: config,
		queue:  make(chan retryJob, RetryQueueBufferSize),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go p.worker()
	return p
}

// Publish delivers the event, queuing it for retry when a handler fails.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, LogFieldEventType, event.Type, LogFieldError, err)

	job := retryJob{event: event, attempts: 1, lastErr: err}
	select {
	case <-p.stop:
		p.deadLetter(job)
		return nil
	default:
	}

	select {
	case p.queue <- job:
	default:
		log.Error(LogMsgRetryQueueFull, LogFieldEventType, event.Type)
		p.deadLetter(job)
	}
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops retrying. Queued events are written to the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (p *ResilientPublisher) worker() {
	defer close(p.done)
	for {
		select {
		case <-p.stop:
			p.drain()
			return
		case job := <-p.queue:
			p.retry(job)
		}
	}
}

func (p *ResilientPublisher) retry(job retryJob) {
	log := logger.FromContext(context.Background())
	for job.attempts <= p.config.MaxRetries {
		timer := time.NewTimer(CalculateRetryDelay(p.config.RetryDelay, job.attempts))
		select {
		case <-p.stop:
			timer.Stop()
			p.deadLetter(job)
			return
		case <-timer.C:
		}

		job.attempts++
		err := p.inner.Publish(context.Background(), job.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, LogFieldEventType, job.event.Type, LogFieldAttempt, job.attempts)
			return
		}
		job.lastErr = err
		log.Warn(LogMsgEventRetryFailed, LogFieldEventType, job.event.Type, LogFieldAttempt, job.attempts, LogFieldError, err)
	}
	p.deadLetter(job)
}

func (p *ResilientPublisher) drain() {
	n := 0
	for {
		select {
		case job := <-p.queue:
			p.deadLetter(job)
			n++
		default:
			if n > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", n)
			}
			return
		}
	}
}

func (p *ResilientPublisher) deadLetter(job retryJob) {
	log := logger.FromContext(context.Background())
	log.Warn(LogMsgEventDeadLettered, LogFieldEventType, job.event.Type, LogFieldAttempt, job.attempts, LogFieldError, job.lastErr)
	if p.config.DeadLetter == nil {
		return
	}
	if err := p.config.DeadLetter.Write(job.event, job.attempts, job.lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFail, LogFieldError, err)
	}
}

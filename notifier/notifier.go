// Package notifier delivers emails and social posts outside of the request
// that triggered them. Jobs are accepted without blocking and handled by a
// fixed pool of workers; a failing channel is logged and never reported back
// to the workflow that enqueued the job.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"yournews/logging"
	"yournews/metrics"

	"github.com/jpillora/backoff"
)

var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrClosed    = errors.New("notifier is closed")
)

// Job is one unit of notification work. Emails are sent in order, the social
// post (if any) last.
type Job struct {
	Name       string
	Emails     []Message
	SocialText string
}

type Config struct {
	// Async hands jobs to the worker pool. When false Enqueue delivers inline
	// and returns email failures to the caller.
	Async       bool
	Workers     int
	QueueSize   int
	MaxAttempts int
	MinBackoff  time.Duration
	MaxBackoff  time.Duration
}

type Notifier struct {
	cfg    Config
	mailer Mailer
	social SocialPoster

	mu     sync.RWMutex
	closed bool
	jobs   chan Job
	wg     sync.WaitGroup
}

func New(cfg Config, mailer Mailer, social SocialPoster) *Notifier {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.MinBackoff <= 0 {
		cfg.MinBackoff = 200 * time.Millisecond
	}
	if cfg.MaxBackoff < cfg.MinBackoff {
		cfg.MaxBackoff = 10 * cfg.MinBackoff
	}
	if social == nil {
		social = disabledSocial{}
	}
	return &Notifier{
		cfg:    cfg,
		mailer: mailer,
		social: social,
		jobs:   make(chan Job, cfg.QueueSize),
	}
}

// Start launches the worker pool. It is a no-op in synchronous mode.
func (n *Notifier) Start() {
	if !n.cfg.Async {
		return
	}
	for i := 0; i < n.cfg.Workers; i++ {
		n.wg.Add(1)
		go n.worker(i)
	}
	logging.Info().Int("workers", n.cfg.Workers).Int("queue_size", n.cfg.QueueSize).Msg("Notifier started")
}

func (n *Notifier) worker(id int) {
	defer n.wg.Done()
	for job := range n.jobs {
		metrics.NotificationQueueDepth.Dec()
		if err := n.run(context.Background(), job); err != nil {
			logging.Warn().Err(err).Int("worker", id).Str("job", job.Name).Msg("Notification job finished with errors")
		}
	}
}

// Enqueue accepts a job for delivery.
func (n *Notifier) Enqueue(ctx context.Context, job Job) error {
	if !n.cfg.Async {
		return n.run(ctx, job)
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return ErrClosed
	}
	select {
	case n.jobs <- job:
		metrics.NotificationQueueDepth.Inc()
		return nil
	default:
		logging.FromContext(ctx).Warn().Str("job", job.Name).Msg("Notification queue full, dropping job")
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits until queued jobs are delivered.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.jobs)
	n.mu.Unlock()
	n.wg.Wait()
}

// run delivers a job. Only email failures are returned.
func (n *Notifier) run(ctx context.Context, job Job) error {
	log := logging.FromContext(ctx)
	var errs []error
	for _, msg := range job.Emails {
		if err := n.sendWithRetry(ctx, msg); err != nil {
			metrics.RecordNotification("email", metrics.ResultFailure)
			log.Error().Err(err).Str("job", job.Name).Strs("to", msg.To).Msg("Failed to send email")
			errs = append(errs, fmt.Errorf("email to %v: %w", msg.To, err))
			continue
		}
		metrics.RecordNotification("email", metrics.ResultSuccess)
	}

	if job.SocialText != "" {
		if err := n.social.Post(ctx, job.SocialText); err != nil {
			metrics.RecordNotification("social", metrics.ResultFailure)
			log.Error().Err(err).Str("job", job.Name).Msg("Failed to post to social feed")
		} else {
			metrics.RecordNotification("social", metrics.ResultSuccess)
		}
	}

	return errors.Join(errs...)
}

func (n *Notifier) sendWithRetry(ctx context.Context, msg Message) error {
	b := &backoff.Backoff{
		Min:    n.cfg.MinBackoff,
		Max:    n.cfg.MaxBackoff,
		Factor: 2,
		Jitter: true,
	}
	var err error
	for attempt := 1; attempt <= n.cfg.MaxAttempts; attempt++ {
		if err = n.mailer.Send(ctx, msg); err == nil {
			return nil
		}
		if attempt == n.cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.Duration()):
		}
	}
	return err
}

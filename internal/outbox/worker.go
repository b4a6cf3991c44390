package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/openpitch/league/internal/db"
)

// EventPublisher delivers one outbox event to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event db.OutboxEvent) error
}

type Config struct {
	PollInterval time.Duration
	BatchSize    int32
	MaxRetries   int
	RetryDelay   time.Duration
}

func DefaultConfig() Config {
	return Config{
		PollInterval: 5 * time.Second,
		BatchSize:    100,
		MaxRetries:   3,
		RetryDelay:   time.Second,
	}
}

// Worker polls the outbox table and publishes unprocessed events.
// Events that fail to publish stay unprocessed and are retried on the
// next poll; request handling is never affected.
type Worker struct {
	db        *sql.DB
	queries   *db.Queries
	publisher EventPublisher
	config    Config
	clock     clockwork.Clock

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewWorker(database *sql.DB, publisher EventPublisher, cfg Config, clock clockwork.Clock) *Worker {
	return &Worker{
		db:        database,
		queries:   db.New(database),
		publisher: publisher,
		config:    cfg,
		clock:     clock,
		stopChan:  make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("outbox worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run(ctx)

	log.Info().
		Dur("poll_interval", w.config.PollInterval).
		Int32("batch_size", w.config.BatchSize).
		Msg("outbox worker started")

	return nil
}

func (w *Worker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return fmt.Errorf("outbox worker not running")
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()

	log.Info().Msg("outbox worker stopped")
	return nil
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := w.clock.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	// Process immediately on start
	w.processOutbox(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-ticker.Chan():
			w.processOutbox(ctx)
		}
	}
}

func (w *Worker) processOutbox(ctx context.Context) {
	txn, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("outbox: failed to begin transaction")
		return
	}
	defer func() {
		if err != nil {
			_ = txn.Rollback()
		}
	}()

	qtx := w.queries.WithTx(txn)

	events, err := qtx.ListUnprocessedOutboxEvents(ctx, w.config.BatchSize)
	if err != nil {
		log.Error().Err(err).Msg("outbox: failed to fetch unprocessed events")
		return
	}

	if len(events) == 0 {
		_ = txn.Rollback()
		return
	}

	var published int
	for _, event := range events {
		if err := w.publishWithRetry(ctx, event); err != nil {
			log.Error().Err(err).
				Str("event_id", event.ID.String()).
				Str("event_type", event.EventType).
				Msg("outbox: failed to publish event")
			continue
		}
		if err = qtx.MarkOutboxEventProcessed(ctx, event.ID); err != nil {
			log.Error().Err(err).
				Str("event_id", event.ID.String()).
				Msg("outbox: failed to mark event processed")
			return
		}
		published++
	}

	if err = txn.Commit(); err != nil {
		log.Error().Err(err).Msg("outbox: failed to commit transaction")
		return
	}

	log.Info().
		Int("total", len(events)).
		Int("published", published).
		Msg("outbox: processed events")
}

func (w *Worker) publishWithRetry(ctx context.Context, event db.OutboxEvent) error {
	var lastErr error

	for attempt := 0; attempt <= w.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-w.clock.After(w.config.RetryDelay * time.Duration(attempt)):
			}
		}

		if err := w.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Warn().Err(err).
				Str("event_id", event.ID.String()).
				Int("attempt", attempt+1).
				Msg("outbox: failed to publish event, retrying")
			continue
		}

		return nil
	}

	return fmt.Errorf("failed after %d attempts: %w", w.config.MaxRetries+1, lastErr)
}

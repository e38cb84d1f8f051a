package email

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"sahaaya.backend/pkg/logger"
)

const (
	// QueueOutbox is the Redis list key for outbound email jobs.
	QueueOutbox = "mail:outbox"
	// MaxAttempts is how often a job is retried before being dropped.
	MaxAttempts = 3
)

type job struct {
	Message Message `json:"message"`
	Attempt int     `json:"attempt"`
}

// Dispatcher accepts messages without ever failing the caller's request.
// With a Redis client it enqueues to the outbox list for the worker;
// without one it falls back to sending on a goroutine. Failures are
// logged, never propagated: mail is best-effort by contract.
type Dispatcher struct {
	sender Sender
	queue  *goredis.Client
}

// NewDispatcher creates a dispatcher. queue may be nil.
func NewDispatcher(sender Sender, queue *goredis.Client) *Dispatcher {
	return &Dispatcher{sender: sender, queue: queue}
}

// Dispatch hands off a message and returns immediately.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	if d.queue != nil {
		raw, err := json.Marshal(job{Message: msg})
		if err == nil {
			if err := d.queue.RPush(ctx, QueueOutbox, raw).Err(); err == nil {
				return
			}
			logger.Warn(ctx, "mail enqueue failed, sending inline", zap.String("to", msg.To))
		}
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := d.sender.Send(sendCtx, msg); err != nil {
			logger.Error(sendCtx, "mail send failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err))
		}
	}()
}

// Worker drains the outbox list and delivers messages.
type Worker struct {
	sender Sender
	queue  *goredis.Client
	stop   chan struct{}
	done   chan struct{}
}

// NewWorker creates an outbox worker
func NewWorker(sender Sender, queue *goredis.Client) *Worker {
	return &Worker{
		sender: sender,
		queue:  queue,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start runs the drain loop until Stop is called.
func (w *Worker) Start() {
	go w.run()
}

// Stop shuts the worker down and waits for the loop to exit.
func (w *Worker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	ctx := context.Background()
	for {
		select {
		case <-w.stop:
			return
		default:
		}

		result, err := w.queue.BLPop(ctx, 2*time.Second, QueueOutbox).Result()
		if err != nil {
			if !errors.Is(err, goredis.Nil) {
				logger.Warn(ctx, "mail outbox pop failed", zap.Error(err))
				select {
				case <-w.stop:
					return
				case <-time.After(5 * time.Second):
				}
			}
			continue
		}
		if len(result) < 2 {
			continue
		}

		var j job
		if err := json.Unmarshal([]byte(result[1]), &j); err != nil {
			logger.Warn(ctx, "invalid mail job dropped", zap.Error(err))
			continue
		}
		w.deliver(ctx, j)
	}
}

func (w *Worker) deliver(ctx context.Context, j job) {
	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := w.sender.Send(sendCtx, j.Message); err != nil {
		j.Attempt++
		if j.Attempt >= MaxAttempts {
			logger.Error(ctx, "mail job dropped after retries",
				zap.String("to", j.Message.To),
				zap.String("subject", j.Message.Subject),
				zap.Error(err))
			return
		}
		if raw, merr := json.Marshal(j); merr == nil {
			if perr := w.queue.RPush(ctx, QueueOutbox, raw).Err(); perr != nil {
				logger.Error(ctx, "mail job requeue failed", zap.Error(perr))
			}
		}
		return
	}

	logger.Debug(ctx, "mail delivered", zap.String("to", j.Message.To))
}

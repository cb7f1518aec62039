package cleanup

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var (
	ErrQueueFull   = errors.New("cleanup queue is full")
	ErrQueueClosed = errors.New("cleanup queue is closed")
)

// Queue — ограниченная очередь заданий внутри процесса, которую разбирают воркеры.
type Queue struct {
	log     *slog.Logger
	handler *Handler
	jobs    chan string

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewQueue(log *slog.Logger, handler *Handler, size int) *Queue {
	return &Queue{
		log:     log,
		handler: handler,
		jobs:    make(chan string, size),
	}
}

// Start запускает workers воркеров. Они завершаются после Stop,
// доработав уже принятые задания.
func (q *Queue) Start(workers int) {
	for range workers {
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			for url := range q.jobs {
				// ошибка уже залогирована в Handler, повторов нет
				_ = q.handler.Remove(context.Background(), url)
			}
		}()
	}
}

// Enqueue не блокируется: при заполненной очереди возвращает ErrQueueFull.
func (q *Queue) Enqueue(_ context.Context, imageURL string) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- imageURL:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop закрывает очередь и ждёт завершения воркеров.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()
	q.wg.Wait()
}

package cleanup

import (
	"context"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/travel-journal/internal/lib/rabbitmq"
)

// Publisher отправляет задания в RabbitMQ для cmd/image-cleaner.
type Publisher struct {
	mu sync.Mutex
	ch rabbitmq.Channel
}

func NewPublisher(ch rabbitmq.Channel) *Publisher {
	return &Publisher{ch: ch}
}

func (p *Publisher) Enqueue(_ context.Context, imageURL string) error {
	const op = "cleanup.Publisher.Enqueue"
	p.mu.Lock()
	defer p.mu.Unlock()
	err := rabbitmq.PublishMessage(p.ch, rabbitmq.ImagesExchange, rabbitmq.ImageCleanupRoutingKey, Message{ImageURL: imageURL})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

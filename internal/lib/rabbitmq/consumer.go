package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/travel-journal/internal/lib/sl"
)

// maxInFlight ограничивает число одновременно обрабатываемых сообщений.
const maxInFlight = 10

// ConsumeMessages запускает потребителя очереди queueName.
//
// Сообщение подтверждается, если handler вернул nil. При ошибке оно один раз
// возвращается в очередь, повторная неудача отбрасывает его.
// Обработка останавливается при отмене ctx или закрытии канала.
func ConsumeMessages(ctx context.Context, ch *amqp.Channel, queueName string, handler func([]byte) error, log *slog.Logger) error {
	const op = "rabbitmq.ConsumeMessages"
	delivery, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log = log.With(slog.String("op", op), slog.String("queue", queueName))

	sem := make(chan struct{}, maxInFlight)
	go func() {
		for {
			select {
			case d, ok := <-delivery:
				if !ok {
					return
				}
				sem <- struct{}{}
				go func(d amqp.Delivery) {
					defer func() { <-sem }()
					handleDelivery(d, handler, log)
				}(d)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// handleDelivery обрабатывает одно сообщение. Повторно доставленное сообщение
// при ошибке не возвращается в очередь.
func handleDelivery(d amqp.Delivery, handler func([]byte) error, log *slog.Logger) {
	if err := handler(d.Body); err != nil {
		requeue := !d.Redelivered
		if requeue {
			log.Warn("message handling failed, requeue", sl.Err(err))
		} else {
			log.Error("message handling failed after retry, drop", sl.Err(err))
		}
		if nackErr := d.Nack(false, requeue); nackErr != nil {
			log.Error("failed to nack message", sl.Err(nackErr))
		}
		return
	}
	if ackErr := d.Ack(false); ackErr != nil {
		log.Error("failed to ack message", sl.Err(ackErr))
	}
}

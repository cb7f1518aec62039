package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации, которым она привязана к обменнику.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

const (
	// ImagesExchange - direct-обменник для задач над изображениями.
	ImagesExchange = "images"
	// ImageCleanupQueue - очередь удаления изображений удалённых историй.
	ImageCleanupQueue = "images.cleanup"
	// ImageCleanupRoutingKey - ключ маршрутизации для ImageCleanupQueue.
	ImageCleanupRoutingKey = "cleanup"
)

// GetImageQueues возвращает очереди, которые объявляются в ImagesExchange.
func GetImageQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: ImageCleanupQueue, RoutingKey: ImageCleanupRoutingKey},
	}
}

package cleanup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-journal/internal/common"
	"github.com/magabrotheeeer/travel-journal/internal/imagestore"
	"github.com/magabrotheeeer/travel-journal/internal/lib/rabbitmq"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type RemoverMock struct {
	mock.Mock
}

func (m *RemoverMock) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		setup   func(m *RemoverMock)
		wantErr bool
	}{
		{
			name: "removes file",
			body: `{"image_url":"http://localhost:8000/uploads/a.png"}`,
			setup: func(m *RemoverMock) {
				m.On("Remove", mock.Anything, "a.png").Return(nil).Once()
			},
		},
		{
			name: "absent file is success",
			body: `{"image_url":"http://localhost:8000/uploads/a.png"}`,
			setup: func(m *RemoverMock) {
				m.On("Remove", mock.Anything, "a.png").Return(common.ErrNotFound).Once()
			},
		},
		{
			name: "storage failure is retried",
			body: `{"image_url":"http://localhost:8000/uploads/a.png"}`,
			setup: func(m *RemoverMock) {
				m.On("Remove", mock.Anything, "a.png").Return(errors.New("disk error")).Once()
			},
			wantErr: true,
		},
		{name: "malformed body is dropped", body: `not json`, setup: func(*RemoverMock) {}},
		{name: "empty url is dropped", body: `{"image_url":""}`, setup: func(*RemoverMock) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(RemoverMock)
			tt.setup(store)
			h := NewHandler(newNoopLogger(), store)

			err := h.Handle([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestQueue_RemovesFilesInBackground(t *testing.T) {
	dir := t.TempDir()
	store, err := imagestore.NewLocal(dir)
	require.NoError(t, err)
	ctx := context.Background()

	names := []string{"a.png", "b.png", "c.png"}
	for _, n := range names {
		require.NoError(t, store.Save(ctx, n, strings.NewReader("x"), 1, ""))
	}

	q := NewQueue(newNoopLogger(), NewHandler(newNoopLogger(), store), 10)
	q.Start(2)
	for _, n := range names {
		require.NoError(t, q.Enqueue(ctx, "http://localhost:8000/uploads/"+n))
	}
	require.NoError(t, q.Enqueue(ctx, "http://localhost:8000/uploads/missing.png"))
	q.Stop()

	for _, n := range names {
		_, _, err := store.Open(ctx, n)
		assert.ErrorIs(t, err, common.ErrNotFound, n)
	}
}

type blockingRemover struct {
	release chan struct{}
	once    sync.Once
	started chan struct{}
}

func (b *blockingRemover) Remove(context.Context, string) error {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return nil
}

func TestQueue_FullAndClosed(t *testing.T) {
	store := &blockingRemover{release: make(chan struct{}), started: make(chan struct{})}
	q := NewQueue(newNoopLogger(), NewHandler(newNoopLogger(), store), 1)
	q.Start(1)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, "a.png"))
	select {
	case <-store.started:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not pick up the job")
	}
	require.NoError(t, q.Enqueue(ctx, "b.png"))
	assert.ErrorIs(t, q.Enqueue(ctx, "c.png"), ErrQueueFull)

	close(store.release)
	q.Stop()
	assert.ErrorIs(t, q.Enqueue(ctx, "d.png"), ErrQueueClosed)
	q.Stop()
}

type ChannelMock struct {
	mock.Mock
}

func (m *ChannelMock) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublisher_Enqueue(t *testing.T) {
	ch := new(ChannelMock)
	ch.On("Publish", rabbitmq.ImagesExchange, rabbitmq.ImageCleanupRoutingKey, false, false,
		mock.MatchedBy(func(p amqp.Publishing) bool {
			var msg Message
			return json.Unmarshal(p.Body, &msg) == nil &&
				msg.ImageURL == "http://localhost:8000/uploads/a.png" &&
				p.DeliveryMode == amqp.Persistent
		})).Return(nil).Once()

	p := NewPublisher(ch)
	require.NoError(t, p.Enqueue(context.Background(), "http://localhost:8000/uploads/a.png"))
	ch.AssertExpectations(t)
}

func TestPublisher_EnqueueError(t *testing.T) {
	ch := new(ChannelMock)
	ch.On("Publish", mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(errors.New("channel closed")).Once()

	p := NewPublisher(ch)
	err := p.Enqueue(context.Background(), "x.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

//go:build integration
// +build integration

package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vidclone/video-api-go/internal/config"
	"github.com/vidclone/video-api-go/pkg/logger"
)

var (
	loggerInitOnce sync.Once
	loggerInitErr  error
)

func initTestLogger() error {
	loggerInitOnce.Do(func() {
		loggerInitErr = logger.Init("debug", "")
	})
	return loggerInitErr
}

func setupTestRabbitMQ(t *testing.T) (*config.RabbitMQConfig, func()) {
	if err := initTestLogger(); err != nil {
		t.Fatalf("Failed to initialize test logger: %v", err)
	}

	ctx := context.Background()

	rabbitmqContainer, err := rabbitmq.Run(ctx,
		"rabbitmq:3.13-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start rabbitmq container: %v", err)
	}

	host, err := rabbitmqContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get host: %v", err)
	}

	port, err := rabbitmqContainer.MappedPort(ctx, "5672/tcp")
	if err != nil {
		t.Fatalf("Failed to get port: %v", err)
	}

	cfg := &config.RabbitMQConfig{
		Enabled:        true,
		Host:           host,
		Port:           port.Int(),
		User:           "guest",
		Password:       "guest",
		Exchange:       "test.activity",
		Queue:          "test.activity.events",
		RoutingKey:     "activity.#",
		PublishTimeout: 5 * time.Second,
	}

	cleanup := func() {
		if err := rabbitmqContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}

	return cfg, cleanup
}

func TestMessagePublisher_PublishDelivers(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	cfg, cleanup := setupTestRabbitMQ(t)
	defer cleanup()

	// Allow some time for RabbitMQ to be fully ready
	time.Sleep(2 * time.Second)

	mp, err := NewMessagePublisher(cfg)
	require.NoError(t, err)
	defer mp.Close()

	assert.True(t, mp.IsHealthy())

	event := newActivityEvent(EventCommentCreated, "1")
	event.CommentID = "c4"
	event.Author = "Anonymous"

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PublishTimeout)
	defer cancel()
	require.NoError(t, mp.Publish(ctx, event))

	conn, err := amqp.Dial(cfg.URL())
	require.NoError(t, err)
	defer conn.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	var msg amqp.Delivery
	var ok bool
	require.Eventually(t, func() bool {
		msg, ok, err = ch.Get(cfg.Queue, true)
		return err == nil && ok
	}, 10*time.Second, 100*time.Millisecond)

	assert.Equal(t, "activity.comment.created", msg.RoutingKey)
	assert.Equal(t, event.ID.String(), msg.MessageId)
	assert.Equal(t, "application/json", msg.ContentType)

	var got ActivityEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, EventCommentCreated, got.Type)
	assert.Equal(t, "1", got.VideoID)
	assert.Equal(t, "c4", got.CommentID)
}

func TestMessagePublisher_IsHealthy(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	cfg, cleanup := setupTestRabbitMQ(t)
	defer cleanup()

	time.Sleep(2 * time.Second)

	mp, err := NewMessagePublisher(cfg)
	if err != nil {
		t.Fatalf("NewMessagePublisher() error = %v", err)
	}

	if !mp.IsHealthy() {
		t.Error("IsHealthy() = false, want true")
	}

	if err := mp.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if mp.IsHealthy() {
		t.Error("IsHealthy() after Close() = true, want false")
	}
}

func TestMessagePublisher_PublishAfterClose(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	cfg, cleanup := setupTestRabbitMQ(t)
	defer cleanup()

	time.Sleep(2 * time.Second)

	mp, err := NewMessagePublisher(cfg)
	require.NoError(t, err)
	require.NoError(t, mp.Close())

	err = mp.Publish(context.Background(), newActivityEvent(EventVideoUploaded, "6"))
	assert.Error(t, err)
}

func TestNewMessagePublisher_Unreachable(t *testing.T) {
	if err := initTestLogger(); err != nil {
		t.Fatalf("Failed to initialize test logger: %v", err)
	}

	cfg := &config.RabbitMQConfig{
		Host:       "127.0.0.1",
		Port:       1,
		User:       "guest",
		Password:   "guest",
		Exchange:   "test.activity",
		Queue:      "test.activity.events",
		RoutingKey: "activity.#",
	}

	_, err := NewMessagePublisher(cfg)
	assert.Error(t, err)
}

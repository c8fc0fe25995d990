package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

// Notice announces that spots changed on one instance. It carries no spot
// state; receivers re-read the store.
type Notice struct {
	Version    int    `json:"v"`
	InstanceID string `json:"instance_id"`
	Sequence   uint64 `json:"seq"`
	Cause      string `json:"cause"`
}

// Target is told to republish when another instance changed the spots
type Target interface {
	PublishAfterMutation(ctx context.Context, cause string)
}

// Relay fans "spots changed" notices between instances over Redis pub/sub
type Relay struct {
	client     redis.UniversalClient
	channel    string
	instanceID string
	target     Target
	seq        atomic.Uint64
}

// NewClient creates a Redis client for the relay and checks connectivity
func NewClient(ctx context.Context, addr, password string) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		PoolSize: DefaultPoolSize,
	})

	pctx, cancel := context.WithTimeout(ctx, DefaultPingWait)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgPing, err)
	}
	return client, nil
}

// New creates a relay that republishes remote notices to target
func New(client redis.UniversalClient, channel string, target Target) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Relay{
		client:     client,
		channel:    channel,
		instanceID: uuid.NewString(),
		target:     target,
	}
}

// InstanceID identifies this process on the channel
func (r *Relay) InstanceID() string {
	return r.instanceID
}

// Notify publishes a notice for a local change
func (r *Relay) Notify(ctx context.Context, cause string) error {
	data, err := json.Marshal(Notice{
		Version:    noticeSchemaV1,
		InstanceID: r.instanceID,
		Sequence:   r.seq.Add(1),
		Cause:      cause,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalNotice, err)
	}

	nctx, cancel := context.WithTimeout(ctx, NotifyTimeout)
	defer cancel()
	if err := r.client.Publish(nctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPublishNotice, err)
	}
	return nil
}

// Run subscribes to the channel and republishes on notices from other
// instances until ctx is done
func (r *Relay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	// Wait for the subscription confirmation so setup errors surface here
	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		slog.Error(LogMsgSubscribeFailed, "channel", r.channel, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgSubscribe, err)
	}
	slog.Info(LogMsgSubscribed, "channel", r.channel, "instance_id", r.instanceID)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			slog.Info(LogMsgStopped, "channel", r.channel)
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			r.handleMessage(ctx, msg.Payload)
		}
	}
}

// handleMessage reports whether the payload triggered a republish
func (r *Relay) handleMessage(ctx context.Context, payload string) bool {
	if len(payload) > maxNoticePayload {
		slog.Warn(LogMsgInvalidNotice, "reason", "oversized", "size", len(payload))
		return false
	}

	var notice Notice
	if err := json.Unmarshal([]byte(payload), &notice); err != nil {
		slog.Warn(LogMsgInvalidNotice, "error", err)
		return false
	}
	if notice.InstanceID == "" || notice.InstanceID == r.instanceID {
		return false
	}
	if r.target == nil {
		return false
	}

	slog.Debug(LogMsgRemoteChange,
		"from", notice.InstanceID,
		"seq", notice.Sequence,
		"cause", notice.Cause)
	r.target.PublishAfterMutation(ctx, domain.CauseRemote)
	return true
}

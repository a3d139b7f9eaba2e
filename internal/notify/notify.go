// Package notify delivers transient admin notifications.
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/collections-admin-api/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Sink presents a notification. Show is fire-and-forget and never fails.
type Sink interface {
	Show(n models.Notification)
}

// Recorder keeps every notification shown to it
type Recorder struct {
	mu    sync.Mutex
	shown []models.Notification
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Show(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, n)
}

// Shown returns a copy of the recorded notifications
func (r *Recorder) Shown() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, len(r.shown))
	copy(out, r.shown)
	return out
}

// Last returns the most recent notification
func (r *Recorder) Last() (models.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.shown) == 0 {
		return models.Notification{}, false
	}
	return r.shown[len(r.shown)-1], true
}

// LogSink writes notifications to a zerolog logger
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink creates a LogSink
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "notify").Logger()}
}

func (s *LogSink) Show(n models.Notification) {
	event := s.log.Info()
	if n.Category == models.NotificationError {
		event = s.log.Warn()
	}
	event.
		Str("title", n.Title).
		Str("category", string(n.Category)).
		Msg(n.Message)
}

// Publisher is the subset of the go-redis client RedisSink needs
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink publishes notifications as JSON on a Redis channel
// so connected dashboards can display them.
type RedisSink struct {
	pub     Publisher
	channel string
	timeout time.Duration
	log     zerolog.Logger
}

// NewRedisSink creates a RedisSink publishing on channel
func NewRedisSink(pub Publisher, channel string, timeout time.Duration, log zerolog.Logger) *RedisSink {
	return &RedisSink{
		pub:     pub,
		channel: channel,
		timeout: timeout,
		log:     log.With().Str("component", "notify_redis").Logger(),
	}
}

// payload is the wire form published on the channel
type payload struct {
	models.Notification
	SentAt time.Time `json:"sent_at"`
}

// Encode returns the JSON published for n
func Encode(n models.Notification, sentAt time.Time) ([]byte, error) {
	return json.Marshal(payload{Notification: n, SentAt: sentAt.UTC()})
}

func (s *RedisSink) Show(n models.Notification) {
	body, err := Encode(n, time.Now())
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to encode notification")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.pub.Publish(ctx, s.channel, body).Err(); err != nil {
		s.log.Error().Err(err).Str("channel", s.channel).Msg("Failed to publish notification")
	}
}

// Multi fans a notification out to several sinks in order
type Multi []Sink

func (m Multi) Show(n models.Notification) {
	for _, s := range m {
		if s != nil {
			s.Show(n)
		}
	}
}

package service

import (
	"context"
)

// DispatchChannel is how a message reaches its destination.
type DispatchChannel string

const (
	ChannelEmail DispatchChannel = "email"
	ChannelSMS   DispatchChannel = "sms"
	// ChannelPush targets every active device of the user ID in Destination.
	ChannelPush DispatchChannel = "push"
)

// DispatchEvent is the payload published for the dispatcher worker.
type DispatchEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	Channel     DispatchChannel   `json:"channel"`
	Destination string            `json:"destination"`
	Subject     string            `json:"subject"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}

// EventPublisher publishes dispatch events to the message bus.
type EventPublisher interface {
	// PublishDispatchEvent publishes one event. It returns after the bus acknowledged it.
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// Dispatcher delivers a message. Use cases call it fire-and-forget: a failure
// is logged and never fails the calling operation.
type Dispatcher interface {
	Send(ctx context.Context, event *DispatchEvent) error
}

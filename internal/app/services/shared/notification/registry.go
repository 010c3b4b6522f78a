package notification

import (
	"fmt"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/pkg/constvars"
)

type registry struct {
	dispatchers map[string]contracts.NotificationDispatcher
}

// NewRegistry selects dispatchers by Channel. An empty channel is email.
func NewRegistry(dispatchers ...contracts.NotificationDispatcher) contracts.NotificationRegistry {
	byChannel := make(map[string]contracts.NotificationDispatcher, len(dispatchers))
	for _, dispatcher := range dispatchers {
		byChannel[dispatcher.Channel()] = dispatcher
	}
	return &registry{dispatchers: byChannel}
}

func (r *registry) Dispatcher(channel string) (contracts.NotificationDispatcher, error) {
	if channel == "" {
		channel = constvars.ChannelEmail
	}
	dispatcher, ok := r.dispatchers[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}
	return dispatcher, nil
}

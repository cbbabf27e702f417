// Package broker wraps the Pusher Channels client used for client fan-out.
// Delivery, ordering and retry are the broker's responsibility; this layer
// only forwards.
package broker

import (
	"context"
	"fmt"

	"github.com/pusher/pusher-http-go/v5"

	"github.com/okian/podium/pkg/metrics"
)

// Broadcaster publishes named events with payloads to the shared channel.
type Broadcaster interface {
	Publish(ctx context.Context, event string, payload any) error
}

// Authorizer signs channel subscription requests.
type Authorizer interface {
	Authorize(body []byte) ([]byte, error)
}

// Credentials identify the Pusher application.
type Credentials struct {
	AppID   string
	Key     string
	Secret  string
	Cluster string
}

// Pusher forwards events to a single channel on Pusher Channels.
type Pusher struct {
	client  *pusher.Client
	channel string
}

// New builds a Pusher broker for the given credentials and channel. Missing
// credentials fail here, before any publish is attempted.
func New(creds Credentials, channel string) (*Pusher, error) {
	if creds.AppID == "" || creds.Key == "" || creds.Secret == "" {
		return nil, ErrMissingCredentials
	}
	if channel == "" {
		return nil, ErrNoChannel
	}
	return &Pusher{
		client: &pusher.Client{
			AppID:   creds.AppID,
			Key:     creds.Key,
			Secret:  creds.Secret,
			Cluster: creds.Cluster,
		},
		channel: channel,
	}, nil
}

// Channel returns the configured channel name.
func (p *Pusher) Channel() string { return p.channel }

// Publish triggers the event synchronously and propagates broker errors
// unchanged in meaning. No queuing, batching or retry happens here.
func (p *Pusher) Publish(_ context.Context, event string, payload any) error {
	if err := p.client.Trigger(p.channel, event, payload); err != nil {
		metrics.RecordBrokerError()
		return fmt.Errorf("trigger %s: %w", event, err)
	}
	metrics.RecordEventPublished(event)
	return nil
}

// Authorize signs a private-channel subscription request. The body is the raw
// socket_id/channel_name form payload from the client; the signed token is
// returned verbatim.
func (p *Pusher) Authorize(body []byte) ([]byte, error) {
	token, err := p.client.AuthorizePrivateChannel(body)
	if err != nil {
		return nil, fmt.Errorf("authorize channel: %w", err)
	}
	return token, nil
}

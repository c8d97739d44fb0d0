// Package relay provides the `relay` module kind: an endpoint that mirrors
// every event it is triggered with to a socket.io server, so a ground
// station can watch the robot's mode changes live.
package relay

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/specialistvlad/eventbinder/internal/binding"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
	"github.com/specialistvlad/eventbinder/internal/event"
	"github.com/specialistvlad/eventbinder/internal/registry"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const (
	defaultEmitEvent = "robot_event"
	defaultTimeout   = 10 * time.Second
)

// Input defines the `arguments` block of a relay module.
type Input struct {
	URL                string `arg:"url"`
	Namespace          string `arg:"namespace,optional"`
	EmitEvent          string `arg:"emit_event,optional"`
	Timeout            string `arg:"timeout,optional"`
	InsecureSkipVerify bool   `arg:"insecure_skip_verify,optional"`
}

// Message is the payload emitted for each relayed event.
type Message struct {
	Module string `json:"module"`
	Event  uint32 `json:"event"`
}

// emitFunc sends one socket.io event.
type emitFunc func(event string, payload Message)

// Relay is the endpoint of a relay module.
type Relay struct {
	*event.Event
	name       string
	emitEvent  string
	disconnect func()
}

func newRelay(logger *slog.Logger, name, emitEvent string, emit emitFunc, disconnect func()) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Relay{
		Event:      event.New(logger),
		name:       name,
		emitEvent:  emitEvent,
		disconnect: disconnect,
	}
	r.OnAny(func(id uint32) {
		logger.Debug("Relaying event.", "event", r.emitEvent, "id", id)
		emit(r.emitEvent, Message{Module: r.name, Event: id})
	})
	return r
}

// Close disconnects from the socket.io server.
func (r *Relay) Close() error {
	if r.disconnect != nil {
		r.disconnect()
	}
	return nil
}

// Connect dials the socket.io server described by input and returns a relay
// emitting on it. It waits for the connection to be acknowledged.
func Connect(ctx context.Context, name string, input *Input) (*Relay, error) {
	logger := ctxlog.FromContext(ctx).With("url", input.URL)

	parsedURL, err := url.Parse(input.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("url %q must include a scheme and host", input.URL)
	}

	timeout := defaultTimeout
	if input.Timeout != "" {
		timeout, err = time.ParseDuration(input.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
	}
	namespace := input.Namespace
	if namespace == "" {
		namespace = "/"
	}
	emitEvent := input.EmitEvent
	if emitEvent == "" {
		emitEvent = defaultEmitEvent
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if input.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Relay connected.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	logger.Debug("Initiating relay connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}

	emit := func(ev string, payload Message) {
		io.Emit(ev, payload)
	}
	return newRelay(logger, name, emitEvent, emit, func() { io.Disconnect() }), nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the relay kind.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind("relay", &registry.RegisteredKind{
		Description: "Mirrors triggered events to a socket.io server.",
		Events:      map[string]uint32{},
		NewInput:    func() any { return new(Input) },
		New: func(ctx context.Context, name string, input any) (binding.Endpoint, error) {
			relay, err := Connect(ctx, name, input.(*Input))
			if err != nil {
				return nil, err
			}
			return relay, nil
		},
	})
}

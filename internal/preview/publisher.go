// Package preview publishes circuit snapshots to a live socket.io preview
// server.
package preview

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/export"
	"github.com/specialistvlad/circuitgraph/internal/graph"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const (
	// DefaultEvent is the event the snapshot is emitted on.
	DefaultEvent = "circuit"
	// DefaultTimeout bounds the wait for the initial connection.
	DefaultTimeout = 10 * time.Second
)

// ErrConnect is returned when the preview server cannot be reached.
var ErrConnect = errors.New("preview server connection failed")

// Publisher is a graph.Exporter that emits the JSON form of a snapshot to a
// socket.io server. Each export opens and closes its own connection.
type Publisher struct {
	baseURL            string
	path               string
	namespace          string
	event              string
	timeout            time.Duration
	insecureSkipVerify bool
}

// Option customises a Publisher.
type Option func(*Publisher)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) { p.timeout = d }
}

// WithEvent overrides DefaultEvent.
func WithEvent(event string) Option {
	return func(p *Publisher) { p.event = event }
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify() Option {
	return func(p *Publisher) { p.insecureSkipVerify = true }
}

var _ graph.Exporter = (*Publisher)(nil)

// NewPublisher validates rawURL and returns a publisher for the given
// namespace. An empty namespace means the root namespace.
func NewPublisher(rawURL, namespace string, opts ...Option) (*Publisher, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported preview URL scheme '%s' in '%s'", parsedURL.Scheme, rawURL)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("preview URL '%s' has no host", rawURL)
	}
	if namespace == "" {
		namespace = "/"
	}

	p := &Publisher{
		baseURL:   fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host),
		path:      parsedURL.Path,
		namespace: namespace,
		event:     DefaultEvent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Export implements graph.Exporter.
func (p *Publisher) Export(ctx context.Context, snap *graph.Snapshot) error {
	logger := ctxlog.FromContext(ctx).With("preview", p.baseURL, "namespace", p.namespace, "graph", snap.Name)

	data, err := Payload(snap)
	if err != nil {
		return err
	}

	opts := socket.DefaultOptions()
	if p.path != "" && p.path != "/" {
		opts.SetPath(p.path)
	}
	if p.insecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))
	opts.SetReconnection(false)
	opts.SetTimeout(p.timeout)

	connectChan := make(chan error, 1)

	manager := socket.NewManager(p.baseURL, opts)
	io := manager.Socket(p.namespace, opts)
	defer func() {
		logger.Debug("Disconnecting preview client")
		io.Disconnect()
	}()

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected to preview server", "sid", io.Id())
		notify(connectChan, nil)
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("%v", errs)
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		notify(connectChan, err)
	})

	logger.Debug("Connecting to preview server...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrConnect, p.baseURL, err)
		}
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for preview connection: %w", ctx.Err())
	case <-time.After(p.timeout):
		return fmt.Errorf("%w: timed out after %s waiting for %s", ErrConnect, p.timeout, p.baseURL)
	}

	if err := io.Emit(p.event, data); err != nil {
		return fmt.Errorf("failed to emit '%s': %w", p.event, err)
	}
	logger.Info("Published circuit to preview server.", "event", p.event)
	return nil
}

// notify delivers the first connection outcome and drops any later one, so
// the client's event goroutine never blocks on a full channel.
func notify(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}

// Payload converts snap into the generic JSON value sent to the server.
func Payload(snap *graph.Snapshot) (map[string]any, error) {
	raw, err := json.Marshal(export.NewDocument(snap))
	if err != nil {
		return nil, fmt.Errorf("failed to encode preview payload: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to encode preview payload: %w", err)
	}
	return data, nil
}

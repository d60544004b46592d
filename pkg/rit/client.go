package rit

import (
	"context"
	"crypto/tls"
	"log/slog"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/sirosfoundation/go-rit/internal/credentials"
	"github.com/sirosfoundation/go-rit/internal/metacache"
	"github.com/sirosfoundation/go-rit/pkg/envelope"
	"github.com/sirosfoundation/go-rit/pkg/transport"
)

// Endpoint groups
const (
	GroupCollectTouristObjects = "CollectTouristObjects"
	GroupGiveTouristObjects    = "GiveTouristObjects"
	GroupMetadataOfRIT         = "MetadataOfRIT"
	GroupCollectEvents         = "CollectEvents"
)

// SOAP operations
const (
	OpSearchTouristObjects = "searchTouristObjects"
	OpAddModifyObject      = "addModifyObject"
	OpAddModifyObjects     = "addModifyObjects"
	OpGetReport            = "getReport"
	OpGetMetadataOfRIT     = "getMetadataOfRIT"
	OpGetEvents            = "getEvents"
)

// Invoker performs one authenticated call against the catalog.
// *transport.HTTPSClient is the production implementation.
type Invoker interface {
	Invoke(ctx context.Context, operation, endpointGroup string, env *envelope.Envelope) (*transport.Response, error)
}

// ExchangeHandler receives the raw exchange of every successful call when
// the transport captures them.
type ExchangeHandler func(*transport.Exchange)

// Client is a RIT catalog client. A Client is safe for concurrent use when
// its Invoker and MetadataSource are.
type Client struct {
	channel    string
	invoker    Invoker
	clock      clock.Clock
	logger     *slog.Logger
	source     MetadataSource
	cache      *metacache.Cache
	onExchange ExchangeHandler
}

// Option configures a Client
type Option func(*options)

type options struct {
	invoker    Invoker
	clock      clock.Clock
	logger     *slog.Logger
	source     MetadataSource
	cached     bool
	onExchange ExchangeHandler
}

// WithInvoker replaces the HTTPS transport
func WithInvoker(inv Invoker) Option {
	return func(o *options) { o.invoker = inv }
}

// WithClock sets the clock used for metric headers
func WithClock(clk clock.Clock) Option {
	return func(o *options) { o.clock = clk }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetadataSource serves metadata lookups from src instead of fetching
// them on every call.
func WithMetadataSource(src MetadataSource) Option {
	return func(o *options) { o.source = src }
}

// WithMetadataCache keeps fetched metadata per language until
// InvalidateMetadata is called.
func WithMetadataCache() Option {
	return func(o *options) { o.cached = true }
}

// WithExchangeHandler registers a handler for captured exchanges
func WithExchangeHandler(h ExchangeHandler) Option {
	return func(o *options) { o.onExchange = h }
}

// New creates a client. Settings are validated before anything else
// happens; failures have kind ErrConfiguration.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, configError("nil config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = clock.WallClock
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	if o.invoker == nil {
		inv, err := newTransport(cfg, o.logger)
		if err != nil {
			return nil, err
		}
		o.invoker = inv
	}

	c := &Client{
		channel:    cfg.Channel,
		invoker:    o.invoker,
		clock:      o.clock,
		logger:     o.logger,
		source:     o.source,
		onExchange: o.onExchange,
	}
	if c.source == nil && o.cached {
		c.cache = metacache.New(c.FetchIndex, c.logger)
		c.source = c.cache
	}
	return c, nil
}

func newTransport(cfg *Config, logger *slog.Logger) (*transport.HTTPSClient, error) {
	baseURL, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}

	cert, err := credentials.Load(cfg.Certificate, cfg.Secret)
	if err != nil {
		return nil, errors.WithType(errors.Annotate(err, "loading client certificate"), ErrConfiguration)
	}

	tc := transport.DefaultHTTPSConfig()
	tc.BaseURL = baseURL
	tc.Certificates = []tls.Certificate{cert}
	tc.InsecureSkipVerify = cfg.InsecureSkipVerify
	tc.Compression = cfg.Compression
	tc.Capture = cfg.Capture
	tc.Logger = logger
	if cfg.Namespace != "" {
		tc.Namespace = cfg.Namespace
	}
	if cfg.Timeout > 0 {
		tc.Timeout = cfg.Timeout
	}
	if cfg.RootCAFile != "" {
		pool, err := credentials.LoadCertPool(cfg.RootCAFile)
		if err != nil {
			return nil, errors.WithType(errors.Annotate(err, "loading root CAs"), ErrConfiguration)
		}
		tc.RootCAs = pool
	}

	return transport.NewHTTPSClient(tc), nil
}

// Channel returns the distribution channel id
func (c *Client) Channel() string {
	return c.channel
}

// metric builds the header for one request
func (c *Client) metric() envelope.Metric {
	return envelope.NewMetric(c.channel, c.clock)
}

// invoke wraps payload under key and sends it
func (c *Client) invoke(ctx context.Context, operation, group, key string, payload any) (*transport.Response, error) {
	env := envelope.Wrap(operation, key, payload, c.metric())

	resp, err := c.invoker.Invoke(ctx, operation, group, env)
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Body == nil {
		return nil, errors.Errorf("%s: empty response", operation)
	}
	if resp.Exchange != nil && c.onExchange != nil {
		c.onExchange(resp.Exchange)
	}
	return resp, nil
}

func languageOrDefault(language string) string {
	if language == "" {
		return DefaultLanguage
	}
	return language
}

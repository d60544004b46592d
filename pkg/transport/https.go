// Package transport implements the SOAP 1.1 HTTPS transport for the RIT catalog
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/sirosfoundation/go-rit/pkg/compression"
	"github.com/sirosfoundation/go-rit/pkg/envelope"
)

// TLS version constants
const (
	TLS12 = tls.VersionTLS12
	TLS13 = tls.VersionTLS13
)

// ContentType is the SOAP 1.1 request content type
const ContentType = `text/xml; charset="utf-8"`

// DefaultTimeout matches the catalog's own request timeout. Bulk uploads
// can take several minutes to be accepted.
const DefaultTimeout = 900 * time.Second

// HTTPSConfig contains HTTPS client configuration
type HTTPSConfig struct {
	// BaseURL is the environment root; the endpoint group is appended to it
	BaseURL   string
	Namespace string

	MinTLSVersion      uint16
	Certificates       []tls.Certificate
	RootCAs            *x509.CertPool
	InsecureSkipVerify bool

	Timeout         time.Duration
	IdleConnTimeout time.Duration

	// Compression advertises gzip/deflate and decodes compressed responses
	Compression bool
	// Capture records the raw request and response of every exchange
	Capture bool

	Logger *slog.Logger
}

// DefaultHTTPSConfig returns a default HTTPS configuration
func DefaultHTTPSConfig() *HTTPSConfig {
	return &HTTPSConfig{
		Namespace:       envelope.DefaultNamespace,
		MinTLSVersion:   TLS12,
		Timeout:         DefaultTimeout,
		IdleConnTimeout: 90 * time.Second,
		Compression:     true,
	}
}

// Exchange is the raw record of one request/response round trip
type Exchange struct {
	ID       uuid.UUID
	Endpoint string
	Action   string
	Request  []byte
	Response []byte
	Duration time.Duration
}

// Response carries the first element of the SOAP body and, when capture is
// enabled, the exchange that produced it.
type Response struct {
	Body     *etree.Element
	Exchange *Exchange
}

// StatusError is returned for a non-200 response that does not carry a SOAP fault
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// HTTPSClient sends RIT requests over HTTPS with client certificate authentication
type HTTPSClient struct {
	client     *http.Client
	config     *HTTPSConfig
	compressor *compression.Compressor
	logger     *slog.Logger
}

// NewHTTPSClient creates a new HTTPS client
func NewHTTPSClient(config *HTTPSConfig) *HTTPSClient {
	if config == nil {
		config = DefaultHTTPSConfig()
	}
	if config.MinTLSVersion == 0 {
		config.MinTLSVersion = TLS12
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Namespace == "" {
		config.Namespace = envelope.DefaultNamespace
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tlsConfig := &tls.Config{
		MinVersion:         config.MinTLSVersion,
		Certificates:       config.Certificates,
		RootCAs:            config.RootCAs,
		InsecureSkipVerify: config.InsecureSkipVerify, //nolint:gosec // opt-in for test environments
	}

	transport := &http.Transport{
		TLSClientConfig:     tlsConfig,
		IdleConnTimeout:     config.IdleConnTimeout,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		// Content-Encoding is negotiated and decoded here
		DisableCompression: true,
	}

	return &HTTPSClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		config:     config,
		compressor: compression.NewCompressor(),
		logger:     logger,
	}
}

// Endpoint returns the URL of an endpoint group
func (c *HTTPSClient) Endpoint(endpointGroup string) string {
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(endpointGroup, "/")
}

// Invoke serializes env, posts it to the endpoint group and returns the
// parsed response body.
func (c *HTTPSClient) Invoke(ctx context.Context, operation, endpointGroup string, env *envelope.Envelope) (*Response, error) {
	if env == nil {
		return nil, fmt.Errorf("failed to build envelope: nil envelope")
	}
	msg := *env
	if msg.Operation == "" {
		msg.Operation = operation
	}
	payload, err := msg.Marshal(c.config.Namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to build envelope: %w", err)
	}

	endpoint := c.Endpoint(endpointGroup)
	log := c.logger.With("operation", operation, "endpoint", endpoint)
	log.Debug("invoking", "request_bytes", len(payload))

	started := time.Now()
	raw, err := c.Send(ctx, endpoint, operation, payload)
	elapsed := time.Since(started)
	if err != nil {
		log.Debug("invoke failed", "error", err, "duration", elapsed)
		return nil, err
	}

	body, err := envelope.ParseResponse(raw)
	if err != nil {
		log.Debug("invoke failed", "error", err, "duration", elapsed)
		return nil, err
	}
	log.Debug("invoke completed", "response_bytes", len(raw), "duration", elapsed)

	resp := &Response{Body: body}
	if c.config.Capture {
		resp.Exchange = &Exchange{
			ID:       uuid.New(),
			Endpoint: endpoint,
			Action:   operation,
			Request:  payload,
			Response: raw,
			Duration: elapsed,
		}
	}
	return resp, nil
}

// Send posts a SOAP message and returns the decoded response payload. A
// non-200 response carrying a SOAP fault is returned as *envelope.Fault.
func (c *HTTPSClient) Send(ctx context.Context, endpoint, action string, message []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(message))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("SOAPAction", `"`+action+`"`)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", "go-rit/1.0")
	if c.config.Compression {
		req.Header.Set("Accept-Encoding", compression.AcceptEncoding)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	body, err := c.compressor.Decode(resp.Header.Get("Content-Encoding"), raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// SOAP 1.1 reports faults with status 500
		if _, ferr := envelope.ParseResponse(body); ferr != nil {
			if fault, ok := ferr.(*envelope.Fault); ok {
				return nil, fault
			}
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

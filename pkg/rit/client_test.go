package rit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-rit/pkg/envelope"
	"github.com/sirosfoundation/go-rit/pkg/transport"
)

var testNow = time.Date(2024, 3, 18, 12, 0, 0, 0, time.UTC)

type invocation struct {
	operation string
	group     string
	env       *envelope.Envelope
}

// fakeInvoker answers each operation with a canned response body
type fakeInvoker struct {
	calls     []invocation
	responses map[string]string
	err       error
	exchange  *transport.Exchange
}

func (f *fakeInvoker) Invoke(ctx context.Context, operation, group string, env *envelope.Envelope) (*transport.Response, error) {
	f.calls = append(f.calls, invocation{operation: operation, group: group, env: env})
	if f.err != nil {
		return nil, f.err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(f.responses[operation]); err != nil {
		return nil, err
	}
	return &transport.Response{Body: doc.Root(), Exchange: f.exchange}, nil
}

func (f *fakeInvoker) last(t *testing.T) invocation {
	t.Helper()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func certFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.pem")
	require.NoError(t, os.WriteFile(path, []byte("placeholder"), 0o600))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newTestClient(t *testing.T, inv *fakeInvoker, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{
		WithInvoker(inv),
		WithClock(testclock.NewClock(testNow)),
	}, opts...)
	c, err := New(&Config{
		Channel:     "12345",
		Certificate: certFile(t),
		Environment: EnvironmentTest,
	}, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_MissingCertificateFailsBeforeTransport(t *testing.T) {
	inv := &fakeInvoker{}

	_, err := New(&Config{
		Channel:     "12345",
		Certificate: filepath.Join(t.TempDir(), "missing.pem"),
	}, WithInvoker(inv))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, inv.calls)
}

func TestNew_ConfigurationErrors(t *testing.T) {
	cert := certFile(t)

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{"nil config", nil, "nil config"},
		{"empty channel", &Config{Certificate: cert}, "empty distribution channel"},
		{"no certificate", &Config{Channel: "1"}, "no certificate"},
		{"certificate is directory", &Config{Channel: "1", Certificate: t.TempDir()}, "is a directory"},
		{"unknown environment", &Config{Channel: "1", Certificate: cert, Environment: "staging"}, `unknown environment "staging"`},
		{"negative timeout", &Config{Channel: "1", Certificate: cert, Timeout: -time.Second}, "negative timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &fakeInvoker{}
			_, err := New(tt.cfg, WithInvoker(inv))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, inv.calls)
		})
	}
}

func TestNew_InvalidCertificateContent(t *testing.T) {
	_, err := New(&Config{Channel: "1", Certificate: certFile(t)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "loading client certificate")
}

func TestConfig_BaseURL(t *testing.T) {
	cfg := &Config{}
	url, err := cfg.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://intrit.poland.travel/rit/integration/", url)

	cfg.Environment = EnvironmentTest
	url, err = cfg.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://intrittest.poland.travel/rit/integration/", url)

	cfg.Environments = map[string]string{"local": "http://localhost:8080/"}
	_, err = cfg.BaseURL()
	assert.True(t, errors.Is(err, ErrConfiguration))

	cfg.Environment = "local"
	url, err = cfg.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/", url)
}

func TestClient_MetricFromClock(t *testing.T) {
	inv := &fakeInvoker{responses: map[string]string{
		OpSearchTouristObjects: `<searchTouristObjectsResponse/>`,
	}}
	c := newTestClient(t, inv)

	_, err := c.GetAllObjects(context.Background(), "")
	require.NoError(t, err)

	m := inv.last(t).env.Metric
	assert.Equal(t, "12345", m.DistributionChannel)
	assert.Equal(t, "12345", m.Username)
	assert.Equal(t, testNow.Unix(), m.RequestUniqueIdentifier)
	assert.Equal(t, "2024-03-18+00:00", m.RequestDate)
}

func TestClient_NotSupported(t *testing.T) {
	inv := &fakeInvoker{}
	c := newTestClient(t, inv)
	ctx := context.Background()

	calls := map[string]func() error{
		"DeleteObject":  func() error { return c.DeleteObject(ctx, nil) },
		"DeleteObjects": func() error { return c.DeleteObjects(ctx, nil) },
		"SearchByAttributes": func() error {
			_, err := c.SearchByAttributes(ctx, nil)
			return err
		},
		"SearchByCategories": func() error {
			_, err := c.SearchByCategories(ctx, []string{"C001"})
			return err
		},
		"SearchByModificationDate": func() error {
			_, err := c.SearchByModificationDate(ctx, testNow, testNow)
			return err
		},
		"GetFile": func() error {
			_, err := c.GetFile(ctx, "F1")
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				err := call()
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.NotSupported))
				assert.Contains(t, err.Error(), name)
			}
		})
	}
	assert.Empty(t, inv.calls)
}

func TestClient_TransportErrorPropagated(t *testing.T) {
	fault := &envelope.Fault{Code: "S:Server", String: "Authentication failed"}
	inv := &fakeInvoker{err: fault}
	c := newTestClient(t, inv)

	_, err := c.GetReport(context.Background(), "tx-1")
	assert.Same(t, fault, err)

	statusErr := &transport.StatusError{StatusCode: 503}
	inv.err = statusErr
	_, err = c.GetMetadata(context.Background(), "")
	assert.Same(t, statusErr, err)
}

func TestClient_ExchangeHandler(t *testing.T) {
	exchange := &transport.Exchange{Action: OpGetReport}
	inv := &fakeInvoker{
		responses: map[string]string{OpGetReport: `<getReportResponse><return><status>OK</status></return></getReportResponse>`},
		exchange:  exchange,
	}

	var got []*transport.Exchange
	c := newTestClient(t, inv, WithExchangeHandler(func(ex *transport.Exchange) {
		got = append(got, ex)
	}))

	_, err := c.GetReport(context.Background(), "tx-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Same(t, exchange, got[0])
}

func TestClient_EmptyResponse(t *testing.T) {
	c := newTestClient(t, &fakeInvoker{}, WithInvoker(nilInvoker{}))

	_, err := c.GetReport(context.Background(), "tx-1")
	assert.ErrorContains(t, err, "empty response")
}

type nilInvoker struct{}

func (nilInvoker) Invoke(context.Context, string, string, *envelope.Envelope) (*transport.Response, error) {
	return nil, nil
}

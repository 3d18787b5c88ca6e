package httpclient

import (
	"net/http"
	"time"

	"storefront-orders/internal/core/logger"
	"storefront-orders/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every upstream request with its status and duration.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient")

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
// When settings carry a proxy, every request is routed through it.
func NewClient(timeout time.Duration, settings proxy.Settings) *http.Client {
	base := http.DefaultTransport
	if u := settings.URL(); u != nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.Proxy = http.ProxyURL(u)
		base = t
		logger.Named("httpclient").Info("Outbound proxy enabled", zap.String("proxy", settings.HostPort()))
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: base,
		},
		Timeout: timeout,
	}
}

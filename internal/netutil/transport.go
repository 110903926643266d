package netutil

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewPooledTransport returns the HTTP transport used for the owner API
// gateway. The gateway is polled every minute for the life of the
// process, so the transport keeps a small idle pool warm and bounds
// every connection phase rather than leaning on the client timeout
// alone.
func NewPooledTransport(logger *logrus.Logger) *http.Transport {
	return &http.Transport{
		DialContext:           dialContext(logger),
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   2,
	}
}

func dialContext(logger *logrus.Logger) func(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		logger.WithField("addr", addr).Debug("Dialing API gateway")
		return dialer.DialContext(ctx, network, addr)
	}
}

// NewHTTPClient pairs the pooled transport with an overall request
// timeout.
func NewHTTPClient(timeout time.Duration, logger *logrus.Logger) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewPooledTransport(logger),
	}
}

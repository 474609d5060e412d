package client

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
)

// NewTransportForProxy builds a transport that routes requests through the
// given proxy. Supported schemes are http, https and socks5.
func NewTransportForProxy(rawURL string) (*http.Transport, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("proxy url %q has no host", rawURL)
	}

	switch u.Scheme {
	case "http", "https":
		return &http.Transport{
			Proxy:               http.ProxyURL(u),
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			TLSHandshakeTimeout: 10 * time.Second,
		}, nil
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if u.User != nil {
			password, _ := u.User.Password()
			auth = &proxy.Auth{User: u.User.Username(), Password: password}
		}
		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("error creating socks5 dialer: %w", err)
		}
		dialContext := func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
		return &http.Transport{
			DialContext:         dialContext,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			TLSHandshakeTimeout: 10 * time.Second,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
	}
}

// package server runs the loopback callback server for the authorization code flow
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// CallbackServer serves a single OAuth callback on a loopback address and
// shuts down once the flow completes.
type CallbackServer struct {
	handler *OAuthHandler
	httpSrv *http.Server
}

// NewCallbackServer creates a server bound to host:port serving the redirect
// URI's path (usually /callback).
func NewCallbackServer(host string, port int, redirectURI string, handler *OAuthHandler) (*CallbackServer, error) {
	parsed, err := url.Parse(redirectURI)
	if err != nil {
		return nil, fmt.Errorf("invalid redirect URI: %w", err)
	}
	path := parsed.Path
	if path == "" {
		path = "/callback"
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	return &CallbackServer{
		handler: handler,
		httpSrv: &http.Server{
			Addr:    net.JoinHostPort(host, fmt.Sprintf("%d", port)),
			Handler: mux,
		},
	}, nil
}

// Start begins serving in a background goroutine.
func (s *CallbackServer) Start() error {
	listener, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind callback server: %w", err)
	}

	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.handler.Send(OAuthResult{err: fmt.Errorf("callback server failed: %w", err)})
		}
	}()
	return nil
}

// Wait blocks until the flow completes or ctx expires, then shuts the server
// down.
func (s *CallbackServer) Wait(ctx context.Context) (OAuthResult, error) {
	defer s.shutdown()

	select {
	case result := <-s.handler.Result():
		if err := result.Error(); err != nil {
			return result, err
		}
		return result, nil
	case <-ctx.Done():
		return OAuthResult{}, fmt.Errorf("authorization timed out: %w", ctx.Err())
	}
}

func (s *CallbackServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.httpSrv.Shutdown(ctx)
}

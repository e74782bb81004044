package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/travlog/pkg/app"
)

// Transport selects how the journal server is exposed.
type Transport string

const (
	TransportStdio Transport = "stdio"
	// TransportHTTP is the streamable HTTP transport.
	TransportHTTP Transport = "http"
)

const (
	defaultPath    = "/mcp"
	defaultAddr    = "127.0.0.1:8080"
	shutdownBudget = 5 * time.Second
)

// Runner serves the journal tools and resources until ctx is done.
type Runner struct {
	Journal *app.Journal
	Name    string
	Version string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	// OnHTTPListening is called with the bound address, useful with port 0.
	OnHTTPListening func(net.Addr)
	// HTTPServerCert and HTTPServerKey switch the HTTP transport to TLS.
	HTTPServerCert string
	HTTPServerKey  string
}

func (r Runner) Do(ctx context.Context) error {
	if r.Journal == nil {
		return errors.New("mcp runner requires a journal")
	}

	srv := r.server()
	switch r.Transport {
	case "", TransportStdio:
		return server.ServeStdio(srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv)
	}
	return fmt.Errorf("unknown MCP transport %q", r.Transport)
}

func (r Runner) server() *server.MCPServer {
	name, version := r.Name, r.Version
	if name == "" {
		name = "travlog"
	}
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		name+" MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and edit a travel journal of past memories and planned trips."),
		server.WithRecovery(),
	)

	svc := NewService(r.Journal)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// endpoint normalizes the HTTP path, defaulting to /mcp.
func (r Runner) endpoint() string {
	p := strings.TrimSpace(r.HTTPEndpointPath)
	switch {
	case p == "":
		return defaultPath
	case !strings.HasPrefix(p, "/"):
		return "/" + p
	}
	return p
}

func (r Runner) tls() (bool, error) {
	hasCert, hasKey := r.HTTPServerCert != "", r.HTTPServerKey != ""
	if hasCert != hasKey {
		return false, errors.New("both http tls cert and key must be provided")
	}
	return hasCert, nil
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	useTLS, err := r.tls()
	if err != nil {
		return err
	}
	addr := r.HTTPListenAddr
	if addr == "" {
		addr = defaultAddr
	}

	mux := http.NewServeMux()
	mux.Handle(r.endpoint(), server.NewStreamableHTTPServer(srv))
	hs := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", addr, err)
	}
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if useTLS {
			err = hs.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
		} else {
			err = hs.Serve(ln)
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownBudget)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	return g.Wait()
}

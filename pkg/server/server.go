package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/hlog"
	"github.com/yeisme/hellosrv/pkg/configs"
	log2 "github.com/yeisme/hellosrv/pkg/utils/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server binds the configured TCP address and dispatches every accepted
// request to a single handler.
type Server struct {
	cfg     configs.ServerConfig
	logger  log2.Logger
	httpSrv *http.Server
	ln      net.Listener
}

// New wraps handler with access logging (and h2c when enabled) and returns an
// unbound server.
func New(cfg configs.ServerConfig, handler http.Handler, logger log2.Logger) *Server {
	h := withAccessLog(handler, logger)
	if cfg.H2C {
		h = h2c.NewHandler(h, &http2.Server{})
	}

	return &Server{
		cfg:    cfg,
		logger: logger,
		httpSrv: &http.Server{
			Handler: h,
		},
	}
}

// withAccessLog logs every request at debug level. The wrapped handler's
// response is passed through untouched.
func withAccessLog(next http.Handler, logger log2.Logger) http.Handler {
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("proto", r.Proto).
			Str("remote", r.RemoteAddr).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request served")
	})
	return hlog.NewHandler(*logger)(access(next))
}

// Addr returns the configured listen address in host:port form.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Listen binds the TCP listener. A bind failure is returned and is meant to be
// fatal for the caller.
func (s *Server) Listen() error {
	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	s.ln = ln
	s.logger.Debug().Str("addr", ln.Addr().String()).Bool("h2c", s.cfg.H2C).Msg("listener bound")
	return nil
}

// URL returns the operator facing URL of the server. Wildcard and empty hosts
// are shown as localhost; once bound, the actual port is used.
func (s *Server) URL() string {
	host := s.cfg.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	port := s.cfg.Port
	if s.ln != nil {
		if addr, ok := s.ln.Addr().(*net.TCPAddr); ok {
			port = addr.Port
		}
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/"
}

// Serve accepts connections until the server is closed, binding first if
// Listen has not been called.
func (s *Server) Serve() error {
	if err := s.Listen(); err != nil {
		return err
	}
	if err := s.httpSrv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", s.ln.Addr(), err)
	}
	return nil
}

// Close stops the listener and drops open connections immediately.
func (s *Server) Close() error {
	err := s.httpSrv.Close()
	if s.ln != nil {
		// 监听器可能尚未交给 Serve, 此时需要单独关闭
		_ = s.ln.Close()
	}
	return err
}

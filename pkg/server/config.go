package server

import (
	"net/http"
	"net/url"
	"time"
)

// Config configures the preview server.
type Config struct {
	// Address is the listen address (default ":8080").
	Address string

	// Title is the document title of the HTML shell.
	Title string

	// ReadTimeout bounds the wait for the next client frame. Zero disables
	// the deadline.
	ReadTimeout time.Duration

	// WriteTimeout bounds each frame write (default 10s).
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 30s).
	ShutdownTimeout time.Duration

	// MaxMessageSize caps a single client message in bytes (default 64KB).
	MaxMessageSize int64

	// ReadBufferSize and WriteBufferSize size the websocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the Origin of websocket upgrades.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:         ":8080",
		Title:           "vdiff",
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxMessageSize:  64 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     SameOriginCheck,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = d.CheckOrigin
	}
	return c
}

// SameOriginCheck accepts upgrades without an Origin header or whose Origin
// host matches the request host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && u.Host == r.Host
}

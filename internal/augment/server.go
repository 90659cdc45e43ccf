package augment

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"navsync/nav"
)

const defaultIndexHTML = `<!DOCTYPE html>
<html><body>
<h1>Navsync Server</h1>
<form action="/rewrite" method="get">
<h3>Rewrite a page's navigation selection</h3>
URL: <input name="url" size="60"><br>
Tab: <input name="tab"><br>
<button type="submit">Rewrite</button>
</form>
</body></html>`

const defaultSitesDir = "config/sites"

const (
	defaultCacheTTL        = 5 * time.Minute
	defaultUpstreamTimeout = 20 * time.Second
)

// Config describes server wiring and runtime behaviour.
type Config struct {
	IndexHTML       string
	SitesDir        string
	CacheTTL        time.Duration
	UpstreamTimeout time.Duration
	Nav             nav.Options
	Logger          *log.Logger
	Clock           func() time.Time
}

// DefaultConfig populates configuration from environment variables.
func DefaultConfig() Config {
	cfg := Config{
		IndexHTML:       defaultIndexHTML,
		Logger:          log.Default(),
		Clock:           time.Now,
		CacheTTL:        defaultCacheTTL,
		UpstreamTimeout: defaultUpstreamTimeout,
		SitesDir:        strings.TrimSpace(os.Getenv("NAVSYNC_SITES_DIR")),
	}
	if cfg.SitesDir == "" {
		cfg.SitesDir = defaultSitesDir
	}
	if raw := strings.TrimSpace(os.Getenv("NAVSYNC_CACHE_TTL")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
			cfg.CacheTTL = time.Duration(secs) * time.Second
		}
	}
	if raw := strings.TrimSpace(os.Getenv("NAVSYNC_UPSTREAM_TIMEOUT")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.UpstreamTimeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

// Server exposes the HTTP handlers implementing the augmenter behaviour.
type Server struct {
	cfg      Config
	mux      *http.ServeMux
	handler  http.Handler
	logger   *log.Logger
	cache    *pageCache
	sites    *siteConfigStore
	upstream *upstreamClient
	clock    func() time.Time

	liveMu sync.Mutex
	live   *liveSession
}

// New wires a new augmentation server with the provided configuration.
func New(cfg Config) *Server {
	if cfg.IndexHTML == "" {
		cfg.IndexHTML = defaultIndexHTML
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.SitesDir == "" {
		cfg.SitesDir = defaultSitesDir
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.UpstreamTimeout == 0 {
		cfg.UpstreamTimeout = defaultUpstreamTimeout
	}
	s := &Server{
		cfg:      cfg,
		mux:      http.NewServeMux(),
		logger:   cfg.Logger,
		cache:    newPageCache(cfg.Clock, cfg.CacheTTL),
		sites:    newSiteConfigStore(cfg.SitesDir),
		upstream: newUpstreamClient(cfg.UpstreamTimeout),
		clock:    cfg.Clock,
	}
	s.registerRoutes()
	s.handler = withLogging(s.logger, s.mux)
	return s
}

// NewServer builds a server from environment defaults.
func NewServer() http.Handler {
	return New(DefaultConfig())
}

// Handler exposes the HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler { return s }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/rewrite", s.handleRewrite)
	s.mux.HandleFunc("/inspect", s.handleInspect)
	s.mux.HandleFunc("/ping", s.handlePing)
	s.mux.HandleFunc("/live/attach", s.handleLiveAttach)
	s.mux.HandleFunc("/live/select", s.handleLiveSelect)
	s.mux.HandleFunc("/live/current", s.handleLiveCurrent)
}

// liveSession lazily launches the browser allocator on first use.
func (s *Server) liveSessionLocked() *liveSession {
	if s.live == nil {
		s.live = NewLiveSession(s.logger)
	}
	return s.live
}

// Close releases long-lived resources, namely the live browser session.
func (s *Server) Close() {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	if s.live != nil {
		s.live.Close()
		s.live = nil
	}
}

// navOptions resolves the effective nav options for a target URL, applying
// any per-host site override on top of the configured defaults.
func (s *Server) navOptions(target string) nav.Options {
	opts := s.cfg.Nav
	if sc := s.sites.Find(target); sc != nil {
		opts = sc.apply(opts)
	}
	return opts
}

// Package server exposes figure rendering and compilation over HTTP.
//
// Routes:
//
//	GET  /healthz      build information
//	POST /v1/render    figure JSON -> LaTeX source (text/x-tex)
//	POST /v1/compile   figure JSON -> compiled artifact
//
// Request bodies use the JSON form of figure.Figure. Plots read data files
// only when the server has a data directory; references must then be
// relative paths inside it. Every compilation
// runs in its own scratch workspace, which is removed once the response is
// written. Errors are JSON objects {"code": ..., "message": ...}.
package server

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pgfplots/pkg/buildinfo"
	"github.com/matzehuels/pgfplots/pkg/cache"
	"github.com/matzehuels/pgfplots/pkg/compile"
	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/figure"
	"github.com/matzehuels/pgfplots/pkg/pgf"
)

// DefaultMaxBodyBytes limits request bodies.
const DefaultMaxBodyBytes = 4 << 20

// Config configures a Server.
type Config struct {
	Strategy     compile.Strategy
	TempRoot     string
	Timeout      time.Duration
	ValidatePDF  bool
	Cache        cache.Cache
	Logger       *log.Logger
	MaxBodyBytes int64

	// DataDir is the root for data files named in figures. Empty disables
	// data files.
	DataDir string
}

// Server is an http.Handler serving the figure API.
type Server struct {
	router  chi.Router
	runner  *compile.Runner
	logger  *log.Logger
	maxBody int64
	dataDir string
}

// New creates a server. Workspaces are always unique per request.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	s := &Server{
		runner: compile.NewRunner(cfg.Strategy,
			compile.WithScratch(compile.ScratchUnique),
			compile.WithTempRoot(cfg.TempRoot),
			compile.WithTimeout(cfg.Timeout),
			compile.WithValidatePDF(cfg.ValidatePDF),
			compile.WithCache(cfg.Cache),
			compile.WithLogger(cfg.Logger),
		),
		logger:  cfg.Logger,
		maxBody: cfg.MaxBodyBytes,
		dataDir: cfg.DataDir,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Post("/compile", s.handleCompile)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases the artifact cache.
func (s *Server) Close() error {
	return s.runner.Close()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	pic, err := s.decodePicture(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body := pic.Standalone()
	if r.URL.Query().Get("standalone") == "false" {
		body = pic.String()
	}
	w.Header().Set("Content-Type", "text/x-tex; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	pic, err := s.decodePicture(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.CompilePicture(r.Context(), pic)
	if res != nil && res.Workspace != "" {
		defer os.RemoveAll(res.Workspace)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeIO, err, "read artifact"))
		return
	}
	w.Header().Set("Content-Type", contentType(s.runner.Strategy.Extension()))
	if res.Cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodePicture reads a figure from the request body and builds it.
func (s *Server) decodePicture(w http.ResponseWriter, r *http.Request) (*pgf.Picture, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty request body")
	}
	fig, err := figure.Decode(data, figure.FormatJSON)
	if err != nil {
		return nil, err
	}
	for i := range fig.Axes {
		for j, plot := range fig.Axes[i].Plots {
			if plot.Data == nil {
				continue
			}
			if s.dataDir == "" {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"axes[%d].plots[%d]: data files are disabled on this server", i, j)
			}
			if err := errors.ValidatePath(plot.Data.File); err != nil {
				return nil, err
			}
		}
	}
	return fig.Build(s.dataDir)
}

func contentType(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "dvi":
		return "application/x-dvi"
	}
	return "application/octet-stream"
}

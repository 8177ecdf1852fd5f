package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/config"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/logging"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/metrics"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/store"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/story"
)

// Server bundles router and dependencies for the dashboard.
type Server struct {
	cfg     config.Config
	store   *store.Store
	metrics *metrics.Collector
	log     *zap.SugaredLogger
	story   story.Story
	engine  *gin.Engine
}

// New constructs a server with routes, middleware and page templates.
func New(cfg config.Config, sessions *store.Store, collector *metrics.Collector, log *zap.SugaredLogger) (*Server, error) {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.Middleware(log))
	engine.Use(corsMiddleware())

	// Uploads are capped by MaxUploadBytes; anything past this spills to disk.
	engine.MaxMultipartMemory = 32 << 20

	assets, err := openAssets(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("open assets: %w", err)
	}
	tmpl, err := parseTemplates(assets)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	static, err := staticFS(assets)
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}
	engine.StaticFS("/static", static)

	server := &Server{
		cfg:     cfg,
		store:   sessions,
		metrics: collector,
		log:     log,
		story:   story.Default(),
		engine:  engine,
	}
	server.registerRoutes()
	return server, nil
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.store.Len()})
	})

	if s.cfg.MetricsEnabled {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	s.engine.GET("/", s.handlePage)
	s.engine.POST("/upload", s.handlePageUpload)

	s.registerV1Routes()
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

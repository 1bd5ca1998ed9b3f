// Package backend serves a stand-in statement-parsing backend that speaks the
// upload contract and always answers with canned transactions.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/theirongolddev/pfin/internal/upload"
)

const (
	defaultAddr   = "127.0.0.1:8787"
	defaultRecent = 50
	defaultRate   = 60 // uploads per minute
	defaultBurst  = 10
	maxUpload     = "20M"
	formField     = "file"
	uploadHeader  = "X-Upload-ID"
)

var pdfMagic = []byte("%PDF-")

// Config controls the backend runtime behavior.
type Config struct {
	Addr             string
	RecentUploads    int
	UploadsPerMinute int
	Burst            int
	Logger           zerolog.Logger
}

// Receipt records one accepted upload.
type Receipt struct {
	ID           int64     `json:"id"`
	UploadID     string    `json:"upload_id"`
	Filename     string    `json:"filename"`
	SizeBytes    int64     `json:"size_bytes"`
	ReceivedAt   time.Time `json:"received_at"`
	Transactions int       `json:"transactions"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt   time.Time `json:"started_at"`
	Addr        string    `json:"addr"`
	UploadCount int64     `json:"upload_count"`
	Rejected    int64     `json:"rejected"`
	Throttled   int64     `json:"throttled"`
	LastUpload  time.Time `json:"last_upload,omitempty"`
}

// Service is the stand-in backend.
type Service struct {
	cfg     Config
	log     zerolog.Logger
	limiter *rate.Limiter

	mu          sync.RWMutex
	startedAt   time.Time
	nextID      int64
	uploadCount int64
	rejected    int64
	throttled   int64
	receipts    []Receipt
}

// New returns a backend with defaults applied to cfg.
func New(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.RecentUploads < 1 {
		cfg.RecentUploads = defaultRecent
	}
	if cfg.UploadsPerMinute < 1 {
		cfg.UploadsPerMinute = defaultRate
	}
	if cfg.Burst < 1 {
		cfg.Burst = defaultBurst
	}
	return &Service{
		cfg:       cfg,
		log:       cfg.Logger,
		limiter:   rate.NewLimiter(rate.Limit(float64(cfg.UploadsPerMinute)/60.0), cfg.Burst),
		startedAt: time.Now(),
	}
}

// Handler builds the HTTP routes.
func (s *Service) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.RequestID())
	e.Use(s.requestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(maxUpload))

	e.GET("/health", s.handleHealth)
	e.POST("/api/upload-pdf", s.handleUpload, s.throttle)
	e.GET("/v1/uploads", s.handleUploads)
	e.GET("/v1/status", s.handleStatus)
	return e
}

// Run serves until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	e := s.Handler()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("backend listening")
		if err := e.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("backend http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) handleUpload(c echo.Context) error {
	fh, err := c.FormFile(formField)
	if err != nil {
		return s.reject(c, http.StatusBadRequest, "missing file field")
	}

	f, err := fh.Open()
	if err != nil {
		return s.reject(c, http.StatusBadRequest, "unreadable upload")
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil || !bytes.Equal(head, pdfMagic) {
		return s.reject(c, http.StatusUnsupportedMediaType, "file is not a PDF")
	}

	res := upload.MockResult()
	id := uuid.NewString()
	c.Response().Header().Set(uploadHeader, id)
	s.record(Receipt{
		UploadID:     id,
		Filename:     fh.Filename,
		SizeBytes:    fh.Size,
		ReceivedAt:   time.Now(),
		Transactions: len(res.ParsedTransactions),
	})
	return c.JSON(http.StatusOK, res)
}

func (s *Service) handleUploads(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Recent())
}

func (s *Service) handleStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Status())
}

// throttle caps the upload rate across all clients.
func (s *Service) throttle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.limiter.Allow() {
			s.mu.Lock()
			s.throttled++
			s.mu.Unlock()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many uploads, retry shortly"})
		}
		return next(c)
	}
}

func (s *Service) reject(c echo.Context, status int, msg string) error {
	s.mu.Lock()
	s.rejected++
	s.mu.Unlock()
	return c.JSON(status, map[string]string{"error": msg})
}

func (s *Service) record(r Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.uploadCount++
	r.ID = s.nextID
	s.receipts = append(s.receipts, r)
	if len(s.receipts) > s.cfg.RecentUploads {
		s.receipts = s.receipts[len(s.receipts)-s.cfg.RecentUploads:]
	}
}

// Recent returns the retained upload receipts, oldest first.
func (s *Service) Recent() []Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out
}

// Status returns counters for /v1/status.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		StartedAt:   s.startedAt,
		Addr:        s.cfg.Addr,
		UploadCount: s.uploadCount,
		Rejected:    s.rejected,
		Throttled:   s.throttled,
	}
	if n := len(s.receipts); n > 0 {
		st.LastUpload = s.receipts[n-1].ReceivedAt
	}
	return st
}

func (s *Service) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			s.log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}

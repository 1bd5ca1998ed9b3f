// Package upload sends bank statement PDFs to the statement-parsing backend
// and decodes the transactions it returns.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const (
	uploadPath     = "/api/upload-pdf"
	healthPath     = "/health"
	formField      = "file"
	defaultTimeout = 60 * time.Second
	healthTimeout  = 5 * time.Second
	maxBodySize    = 10 << 20 // 10 MB
	fallbackMsg    = "Upload failed"
)

// ErrNoFile indicates an upload was requested without choosing a file.
var ErrNoFile = errors.New("please choose a PDF file first")

// Error is a failed upload as reported to the user.
type Error struct {
	Status  int // HTTP status, 0 for transport errors
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the single human-readable text for an upload error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ue *Error
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMsg
}

// Options configures a Client.
type Options struct {
	BaseURL string // empty selects mock mode
	UseMock bool
	Timeout time.Duration
	Logger  zerolog.Logger
	HTTP    *http.Client
}

// Client talks to the statement-parsing backend.
type Client struct {
	baseURL string
	mock    bool
	timeout time.Duration
	log     zerolog.Logger
	http    *http.Client
}

// NewClient creates a client. With no base URL, or UseMock set, every upload
// returns MockResult without touching the network.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := opts.HTTP
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		baseURL: base,
		mock:    opts.UseMock || base == "",
		timeout: timeout,
		log:     opts.Logger,
		http:    hc,
	}
}

// MockMode reports whether uploads bypass the network.
func (c *Client) MockMode() bool {
	return c.mock
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UploadFile uploads the file at path.
func (c *Client) UploadFile(ctx context.Context, path string) (*Result, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoFile
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("cannot open %s: %v", path, err), Err: err}
	}
	defer f.Close()

	return c.Upload(ctx, filepath.Base(path), f)
}

// Upload sends one statement as the multipart field "file". A refused
// connection or a 404 falls back to MockResult; every other failure is
// returned as *Error.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*Result, error) {
	if c.mock {
		c.log.Info().Msg("no backend configured, using mock data")
		return MockResult(), nil
	}

	body, contentType, err := encodeForm(filename, r)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("reading %s: %v", filename, err), Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, body)
	if err != nil {
		return nil, &Error{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/theirongolddev/pfin/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			c.log.Warn().Err(err).Msg("backend unreachable, using mock data")
			return MockResult(), nil
		}
		c.log.Error().Err(err).Msg("PDF upload failed")
		return nil, &Error{Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("reading response: %v", err), Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		c.log.Warn().Int("status", resp.StatusCode).Msg("upload endpoint not found, using mock data")
		return MockResult(), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ue := &Error{Status: resp.StatusCode, Message: backendMessage(data)}
		if ue.Message == "" {
			ue.Message = fmt.Sprintf("Request failed with status code %d", resp.StatusCode)
		}
		c.log.Error().Int("status", resp.StatusCode).Str("message", ue.Message).Msg("PDF upload failed")
		return nil, ue
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("parsing response: %v", err), Err: err}
	}
	return &result, nil
}

// Health reports whether the backend answers its health endpoint.
// Mock mode always reports false.
func (c *Client) Health(ctx context.Context) bool {
	if c.mock {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func encodeForm(filename string, r io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(formField, filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// backendMessage extracts {"error": "..."} from a failure body.
func backendMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Error)
}

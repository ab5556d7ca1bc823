// Package client is the data-access layer for the course catalog API.
//
// Every call is a single request/response exchange. Failures are returned
// to the caller as they happen: there is no retry, no backoff and no
// local merging of state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const maxErrorBody = 64 << 10

// Doer is the transport the service sends requests through. *http.Client
// satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Token, when set, is sent as a bearer token on every request.
	Token string
	// RequestsPerSecond paces outgoing requests. Zero disables pacing.
	RequestsPerSecond float64
	Burst             int
}

type Option func(*CoursesService)

// WithDoer replaces the default *http.Client.
func WithDoer(d Doer) Option {
	return func(s *CoursesService) {
		s.doer = d
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(s *CoursesService) {
		s.log = l
	}
}

// CoursesService issues the course and lesson queries against the API.
type CoursesService struct {
	baseURL *url.URL
	token   string
	doer    Doer
	limiter *rate.Limiter
	log     *logrus.Logger
}

func NewCoursesService(cfg Config, opts ...Option) (*CoursesService, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &CoursesService{
		baseURL: base,
		token:   cfg.Token,
		doer:    &http.Client{Timeout: timeout},
		log:     quiet,
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *CoursesService) endpoint(path string, query url.Values) string {
	u := *s.baseURL
	u.Path = s.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends one request and returns the body of a 2xx response.
func (s *CoursesService) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	target := s.endpoint(path, query)

	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	started := time.Now()
	resp, err := s.doer.Do(req)
	if err != nil {
		s.log.WithError(err).WithField("url", target).Debug("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	s.log.WithFields(logrus.Fields{
		"method":   method,
		"url":      target,
		"status":   resp.StatusCode,
		"duration": time.Since(started),
	}).Debug("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			Method:     method,
			URL:        target,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       string(text),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}

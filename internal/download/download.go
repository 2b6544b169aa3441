// Package download saves images to local storage and hands them to the share
// mechanism, which on a terminal is the system clipboard.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"

	"pixels/internal/domain"
	"pixels/internal/eventbus"
	"pixels/internal/imageapi"
	"pixels/internal/logging"
)

// Service downloads images into one directory
type Service struct {
	dir     string
	client  *http.Client
	timeout time.Duration
	share   func(string) error
	log     *logrus.Entry
}

// Option customises a Service
type Option func(*Service)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.client = c }
}

// WithShareFunc replaces the clipboard share mechanism
func WithShareFunc(fn func(path string) error) Option {
	return func(s *Service) { s.share = fn }
}

// WithTimeout bounds each download started from a bus event
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService creates a download service writing into dir
func NewService(dir string, opts ...Option) *Service {
	s := &Service{
		dir:     dir,
		client:  imageapi.NewHTTPClient(0),
		timeout: 2 * time.Minute,
		share:   clipboard.WriteAll,
		log:     logging.Component("download"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewServiceWithBus creates a download service that serves DownloadRequested events
func NewServiceWithBus(bus eventbus.EventBus, dir string, opts ...Option) *Service {
	s := NewService(dir, opts...)
	s.Subscribe(bus)
	return s
}

// Dir returns the destination directory
func (s *Service) Dir() string {
	return s.dir
}

// Subscribe wires the service to download requests on bus and returns the unsubscribe func
func (s *Service) Subscribe(bus eventbus.EventBus) func() {
	return bus.Subscribe(eventbus.EventDownloadRequested, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.DownloadRequestedEvent)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		bus.Publish(s.Handle(ctx, event))
	})
}

// Handle runs one request and returns the completion or failure event
func (s *Service) Handle(ctx context.Context, event eventbus.DownloadRequestedEvent) eventbus.DomainEvent {
	url := event.URL
	if url == "" {
		url = event.Image.WebformatURL
	}
	name := ""
	if event.Image != (domain.Image{}) {
		name = event.Image.FileName()
	}

	path, err := s.Download(ctx, url, name)
	if err == nil && event.Share {
		err = s.Share(path)
	}
	if err != nil {
		return eventbus.DownloadFailedEvent{ID: event.ID, URL: url, Share: event.Share, Err: err}
	}
	return eventbus.DownloadCompletedEvent{ID: event.ID, Path: path, Shared: event.Share}
}

// Download fetches rawURL into dir/name. An empty name uses the URL's basename.
// The file only appears once fully written.
func (s *Service) Download(ctx context.Context, rawURL, name string) (string, error) {
	log := s.log.WithField("url", rawURL)

	if name == "" {
		name = domain.BaseName(rawURL)
	}
	if name == "" {
		return "", fmt.Errorf("cannot derive a file name from %q", rawURL)
	}
	name = filepath.Base(name)
	dest := filepath.Join(s.dir, name)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, image/webp, image/gif, */*")

	resp, err := s.client.Do(req)
	if err != nil {
		log.WithError(err).Error("download failed")
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Error("download failed")
		return "", fmt.Errorf("download failed: status code %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".part-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("failed to move image into place: %w", err)
	}

	log.WithField("path", dest).Info("image downloaded")
	return dest, nil
}

// Share hands a downloaded file to the share mechanism
func (s *Service) Share(path string) error {
	if err := s.share(path); err != nil {
		s.log.WithError(err).WithField("path", path).Error("share failed")
		return fmt.Errorf("share failed: %w", err)
	}
	s.log.WithField("path", path).Info("image shared")
	return nil
}

package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microstock-labs/stockmeta/internal/images"
	"github.com/microstock-labs/stockmeta/internal/models"
	"github.com/microstock-labs/stockmeta/internal/notify"
	"github.com/microstock-labs/stockmeta/internal/providers"
)

// ErrMissingCredential is returned before any network activity when no
// API key was supplied.
var ErrMissingCredential = errors.New("API key is required")

// ErrEmptyResponse is a well-formed model response with no usable text;
// it is not retried.
var ErrEmptyResponse = errors.New("no response from model")

// ImageFile is one image queued for metadata generation.
type ImageFile struct {
	Name string
	Data []byte
}

// Config holds the retry, backoff and pacing policy. Durations shape
// how hard the single shared rate limit is pushed.
type Config struct {
	FastModel    string
	QualityModel string

	// Capacity-exhaustion retries (model overloaded)
	CapacityBaseDelay  time.Duration
	CapacityMultiplier int
	CapacityMaxDelay   time.Duration
	CapacityMaxRetries int

	// Connection-level retries
	NetworkBaseDelay  time.Duration
	NetworkMultiplier int
	NetworkMaxDelay   time.Duration
	NetworkMaxRetries int

	// Inter-request pacing for batches
	PacingBase      time.Duration
	PacingErrorBase time.Duration
	PacingStep      time.Duration
}

func DefaultConfig() Config {
	return Config{
		FastModel:    "gemini-2.5-flash",
		QualityModel: "gemini-2.5-pro",

		CapacityBaseDelay:  6 * time.Second,
		CapacityMultiplier: 3,
		CapacityMaxDelay:   30 * time.Second,
		CapacityMaxRetries: 8,

		NetworkBaseDelay:  time.Second,
		NetworkMultiplier: 2,
		NetworkMaxDelay:   10 * time.Second,
		NetworkMaxRetries: 5,

		PacingBase:      3 * time.Second,
		PacingErrorBase: 8 * time.Second,
		PacingStep:      2 * time.Second,
	}
}

// SleepFunc suspends for d or until the context is done. Injected so
// tests can assert the backoff schedule without real delays.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Service drives metadata generation against a generative model
// provider: one request per image, strictly sequential, with adaptive
// retry and pacing around the provider's single rate limit.
type Service struct {
	cfg      Config
	gen      providers.Generator
	notifier notify.Notifier
	sleep    SleepFunc
}

func NewService(cfg Config, gen providers.Generator, notifier notify.Notifier) *Service {
	return &Service{
		cfg:      cfg,
		gen:      gen,
		notifier: notifier,
		sleep:    sleepContext,
	}
}

// GenerateMetadata runs the full single-image pipeline: encode, request
// with retries, parse and clean. A nil error guarantees non-empty
// title, description and keywords.
func (s *Service) GenerateMetadata(ctx context.Context, img ImageFile, apiKey string) (*models.MetadataResult, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	payload, mime := images.PrepareForUpload(img.Data)

	text, err := s.requestText(ctx, apiKey, mime, payload)
	if err != nil {
		return nil, err
	}

	result := parseMetadata(text)
	return &result, nil
}

// modelFor escalates to the high-quality tier once the fast tier has
// failed twice; later retries trade latency for a better shot.
func (s *Service) modelFor(attempt int) string {
	if attempt >= 2 {
		return s.cfg.QualityModel
	}
	return s.cfg.FastModel
}

// capacityDelay is the backoff before capacity-exhaustion retry n.
func (s *Service) capacityDelay(n int) time.Duration {
	return backoffDelay(s.cfg.CapacityBaseDelay, s.cfg.CapacityMultiplier, s.cfg.CapacityMaxDelay, n)
}

// networkDelay is the backoff before connection-failure retry n.
func (s *Service) networkDelay(n int) time.Duration {
	return backoffDelay(s.cfg.NetworkBaseDelay, s.cfg.NetworkMultiplier, s.cfg.NetworkMaxDelay, n)
}

func backoffDelay(base time.Duration, multiplier int, max time.Duration, n int) time.Duration {
	d := base
	for i := 0; i < n; i++ {
		d *= time.Duration(multiplier)
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}

// requestText issues the model request, retrying per failure kind:
// exponential backoff with tier escalation for overload, a one-shot
// alternate part order for invalid-request rejections, and a shorter
// backoff for connection failures. Empty responses fail immediately.
func (s *Service) requestText(ctx context.Context, apiKey, mime string, payload []byte) (string, error) {
	var (
		attempt         int
		capacityRetries int
		networkRetries  int
		altFormatTried  bool
		promptFirst     bool
	)

	for {
		req := providers.Request{
			Model:       s.modelFor(attempt),
			APIKey:      apiKey,
			MimeType:    mime,
			Image:       payload,
			Prompt:      metadataPrompt,
			PromptFirst: promptFirst,
		}

		text, err := s.gen.GenerateContent(ctx, req)
		if err == nil {
			if text == "" {
				return "", ErrEmptyResponse
			}
			return text, nil
		}

		switch {
		case errors.Is(err, providers.ErrEmptyContent):
			return "", fmt.Errorf("%w: %s", ErrEmptyResponse, err)

		case errors.Is(err, providers.ErrOverloaded):
			if capacityRetries >= s.cfg.CapacityMaxRetries {
				return "", err
			}
			delay := s.capacityDelay(capacityRetries)
			s.notifier.Notify("API overloaded, retrying",
				fmt.Sprintf("waiting %s before attempt %d/%d with %s",
					delay, capacityRetries+1, s.cfg.CapacityMaxRetries, s.modelFor(attempt+1)))
			if err := s.sleep(ctx, delay); err != nil {
				return "", err
			}
			capacityRetries++
			attempt++

		case errors.Is(err, providers.ErrInvalidRequest):
			if altFormatTried {
				return "", err
			}
			// One shot: some invalid-argument rejections clear up when
			// the instruction precedes the image.
			s.notifier.Notify("Retrying request", "trying alternate request format")
			altFormatTried = true
			promptFirst = !promptFirst

		default:
			if networkRetries >= s.cfg.NetworkMaxRetries {
				return "", err
			}
			delay := s.networkDelay(networkRetries)
			s.notifier.Notify("Network issue, retrying",
				fmt.Sprintf("attempt %d/%d in %s", networkRetries+1, s.cfg.NetworkMaxRetries, delay))
			if err := s.sleep(ctx, delay); err != nil {
				return "", err
			}
			networkRetries++
			attempt++
		}
	}
}

// GenerateBulkMetadata processes images strictly sequentially with a
// progressive pacing delay between requests; the delay grows with the
// image index and jumps once any image has failed. Failed images are
// omitted from the result, never aborting the batch.
func (s *Service) GenerateBulkMetadata(ctx context.Context, imgs []ImageFile, apiKey string) ([]models.MetadataResult, error) {
	results := make([]models.MetadataResult, 0, len(imgs))
	err := s.GenerateSequence(ctx, imgs, apiKey, func(i int, result *models.MetadataResult, err error) {
		if err == nil {
			results = append(results, *result)
		}
	})
	return results, err
}

// GenerateSequence is the pacing loop under GenerateBulkMetadata: it
// reports every image's outcome through fn, letting callers correlate
// failures with their position in the batch. fn receives a nil result
// for failed images.
func (s *Service) GenerateSequence(ctx context.Context, imgs []ImageFile, apiKey string, fn func(i int, result *models.MetadataResult, err error)) error {
	if apiKey == "" {
		s.notifier.Notify("API key required", "enter your Gemini API key before processing")
		return ErrMissingCredential
	}

	s.notifier.Notify("Bulk processing started",
		fmt.Sprintf("processing %d images with adaptive delays", len(imgs)))

	succeeded := 0
	hasErrors := false

	for i, img := range imgs {
		if i > 0 {
			delay := s.pacingDelay(i, hasErrors)
			s.notifier.Notify("Queue delay",
				fmt.Sprintf("waiting %s before image %d/%d", delay, i+1, len(imgs)))
			if err := s.sleep(ctx, delay); err != nil {
				return err
			}
		}

		s.notifier.Notify("Processing image",
			fmt.Sprintf("%d/%d: %s", i+1, len(imgs), img.Name))

		started := time.Now()
		result, err := s.GenerateMetadata(ctx, img, apiKey)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			hasErrors = true
			s.notifier.Notify("Image failed",
				fmt.Sprintf("%s: %v; continuing with increased delays", img.Name, err))
			fn(i, nil, err)
			continue
		}

		succeeded++
		s.notifier.Notify("Image processed",
			fmt.Sprintf("%s in %.1fs", img.Name, time.Since(started).Seconds()))
		fn(i, result, nil)
	}

	s.notifier.Notify("Bulk processing complete",
		fmt.Sprintf("successfully processed %d/%d images", succeeded, len(imgs)))

	return nil
}

// pacingDelay throttles request i of a batch: a base delay that jumps
// after the first failure, plus a step growing with the index.
func (s *Service) pacingDelay(index int, hasErrors bool) time.Duration {
	base := s.cfg.PacingBase
	if hasErrors {
		base = s.cfg.PacingErrorBase
	}
	return base + time.Duration(index)*s.cfg.PacingStep
}

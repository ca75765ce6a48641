package advisory

import (
	"context"

	apperrors "boutique/internal/errors"
	"boutique/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

const (
	PlaceholderText = "Add items to get styling tips!"
	FallbackText    = "Error getting fashion advice."
	NoAdviceText    = "No advice available at this moment."
)

// Provider generates a short styling tip for the given item descriptors.
type Provider interface {
	Name() string
	Generate(ctx context.Context, items []string) (string, error)
}

type Recorder interface {
	IncAdvice(outcome string)
}

// Service is the only entry point to the remote provider. It never returns
// an error: failures turn into fixed fallback text.
type Service struct {
	provider Provider
	logger   *zap.Logger
	recorder Recorder
}

func NewService(provider Provider, logger *zap.Logger, recorder Recorder) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		recorder: recorder,
	}
}

func (s *Service) Advise(ctx context.Context, items []string) string {
	if len(items) == 0 {
		s.record(metrics.AdviceOutcomePlaceholder)
		return PlaceholderText
	}

	text, err := s.provider.Generate(ctx, items)
	if err != nil {
		if _, ok := apperrors.IsAdvisoryProviderError(err); !ok {
			err = apperrors.NewAdvisoryProviderError(s.provider.Name(), err)
		}
		s.logger.Warn("styling advice unavailable", zap.Int("itemCount", len(items)), zap.Error(err))
		s.record(metrics.AdviceOutcomeFallback)
		return FallbackText
	}
	if text == "" {
		s.logger.Warn("styling advice empty", zap.String("provider", s.provider.Name()))
		s.record(metrics.AdviceOutcomeFallback)
		return NoAdviceText
	}

	s.record(metrics.AdviceOutcomeAdvice)
	return text
}

// Request runs Advise in its own goroutine. The returned channel receives
// exactly one value and is then closed.
func (s *Service) Request(ctx context.Context, items []string) <-chan string {
	out := make(chan string, 1)
	snapshot := append([]string(nil), items...)
	go func() {
		defer close(out)
		out <- s.Advise(ctx, snapshot)
	}()
	return out
}

func (s *Service) record(outcome string) {
	if s.recorder != nil {
		s.recorder.IncAdvice(outcome)
	}
}

// DisabledProvider is used when no provider is configured.
type DisabledProvider struct{}

func (DisabledProvider) Name() string { return "disabled" }

func (DisabledProvider) Generate(ctx context.Context, items []string) (string, error) {
	return "", nil
}

package trust

import (
	"context"
	"log/slog"

	"kredi/internal/scoring/ports"
	"kredi/pkg/domain"
	"kredi/pkg/platform/circuit"
)

// BreakerProvider wraps another provider with a circuit breaker. Lookups are
// fail-open already; the breaker adds one log line per outage transition
// instead of a warning on every evaluation while Redis is degraded.
type BreakerProvider struct {
	inner   ports.TrustSignalProvider
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewBreakerProvider(inner ports.TrustSignalProvider, logger *slog.Logger) *BreakerProvider {
	return &BreakerProvider{
		inner:   inner,
		breaker: circuit.New("trust-signal", circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(2)),
		logger:  logger,
	}
}

func (p *BreakerProvider) PhoneTrustScore(ctx context.Context, borrowerID domain.BorrowerID) (float64, bool, error) {
	score, found, err := p.inner.PhoneTrustScore(ctx, borrowerID)
	if err != nil {
		wasOpen := p.breaker.IsOpen()
		if _, change := p.breaker.RecordFailure(); change.Opened && p.logger != nil {
			p.logger.WarnContext(ctx, "trust signal source marked degraded",
				"breaker", p.breaker.Name(),
				"error", err,
			)
		}
		if wasOpen {
			// Sustained outage: degrade silently to "no signal".
			return 0, false, nil
		}
		return 0, false, err
	}

	if _, change := p.breaker.RecordSuccess(); change.Closed && p.logger != nil {
		p.logger.InfoContext(ctx, "trust signal source recovered", "breaker", p.breaker.Name())
	}
	return score, found, nil
}

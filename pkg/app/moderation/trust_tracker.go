package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/care-collective/safeguard/pkg/infra/cache"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const scoreKeyPattern = "moderation:score:%s"

// ScoreFinder derives a user's moderation score from report history. A nil
// cache disables caching; caching is a perf optimization only and never a
// correctness requirement, so cache errors fall through to a recompute.
//
//go:generate mockery --name=ScoreFinder --dir=. --output=./mocks --filename=score_finder_mock.go --case=underscore --with-expecter
type ScoreFinder interface {
	Find(ctx context.Context, userID uuid.UUID) (*domain.UserScore, error)
}

type trustTracker struct {
	logger  *logrus.Logger
	reports domain.ReportRepository
	cache   cache.Client
	ttl     time.Duration
}

func NewTrustTracker(
	logger *logrus.Logger,
	reports domain.ReportRepository,
	cacheClient cache.Client,
	ttl time.Duration,
) ScoreFinder {
	return &trustTracker{
		logger:  logger,
		reports: reports,
		cache:   cacheClient,
		ttl:     ttl,
	}
}

func (t *trustTracker) Find(ctx context.Context, userID uuid.UUID) (*domain.UserScore, error) {
	key := fmt.Sprintf(scoreKeyPattern, userID)

	if t.cache != nil {
		if raw, err := t.cache.Get(ctx, key); err == nil {
			var score domain.UserScore
			if err := json.Unmarshal([]byte(raw), &score); err == nil {
				return &score, nil
			}
		} else if !cache.IsMiss(err) {
			t.logger.WithError(err).Debug("trust score cache read failed")
		}
	}

	received, verified, err := t.reports.CountByReportedUser(ctx, userID)
	if err != nil {
		// Moderation depends on this score; do not fall back to a neutral
		// value when history is unavailable.
		return nil, fmt.Errorf("failed to load report history: %w", err)
	}

	score := domain.ComputeUserScore(userID, received, verified)

	if t.cache != nil {
		if raw, err := json.Marshal(score); err == nil {
			if err := t.cache.Set(ctx, key, string(raw), t.ttl); err != nil {
				t.logger.WithError(err).Debug("trust score cache write failed")
			}
		}
	}

	return score, nil
}

package moderation

import (
	"context"
	"fmt"

	domain "github.com/care-collective/safeguard/pkg/domain/moderation"
	"github.com/care-collective/safeguard/pkg/infra/metrics"
	"github.com/care-collective/safeguard/pkg/moderation/rules"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ContentModerator screens a message for an identified author. A failed
// trust-score lookup propagates so callers decide fail-open or fail-closed;
// the classifier itself has no side effects.
//
//go:generate mockery --name=ContentModerator --dir=. --output=./mocks --filename=content_moderator_mock.go --case=underscore --with-expecter
type ContentModerator interface {
	Moderate(ctx context.Context, content string, userID uuid.UUID) (*domain.Verdict, error)
}

type contentModerator struct {
	logger *logrus.Logger
	engine *rules.Engine
	scores ScoreFinder
}

func NewContentModerator(
	logger *logrus.Logger,
	engine *rules.Engine,
	scores ScoreFinder,
) ContentModerator {
	return &contentModerator{
		logger: logger,
		engine: engine,
		scores: scores,
	}
}

func (m *contentModerator) Moderate(ctx context.Context, content string, userID uuid.UUID) (*domain.Verdict, error) {
	score, err := m.scores.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve trust score: %w", err)
	}

	verdict := m.engine.Classify(content, score.TrustScore)

	metrics.VerdictTotal.WithLabelValues(string(verdict.SuggestedAction)).Inc()
	for _, category := range verdict.Categories {
		metrics.ViolationTotal.WithLabelValues(string(category)).Inc()
	}

	if verdict.Flagged {
		m.logger.WithFields(logrus.Fields{
			"user_id":    userID,
			"action":     verdict.SuggestedAction,
			"categories": verdict.Categories,
			"confidence": verdict.Confidence,
		}).Info("content flagged")
	}

	return &verdict, nil
}

package privacy

import (
	"context"

	"github.com/care-collective/safeguard/pkg/domain/privacy"
	"github.com/google/uuid"
)

//go:generate mockery --name=HistoryViewer --dir=. --output=./mocks --filename=history_viewer_mock.go --case=underscore --with-expecter
type HistoryViewer interface {
	List(ctx context.Context, userID uuid.UUID, filter privacy.HistoryFilter) ([]privacy.SharingHistory, error)
}

type historyViewer struct {
	history privacy.HistoryRepository
}

func NewHistoryViewer(history privacy.HistoryRepository) HistoryViewer {
	return &historyViewer{history: history}
}

const defaultHistoryLimit = 50

func (v *historyViewer) List(ctx context.Context, userID uuid.UUID, filter privacy.HistoryFilter) ([]privacy.SharingHistory, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultHistoryLimit
	}
	return v.history.ListByUser(ctx, userID, filter)
}

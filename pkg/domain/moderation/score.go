package moderation

import "github.com/google/uuid"

const (
	// BaseTrustScore is where every user starts.
	BaseTrustScore = 75
	// VerifiedReportPenalty is subtracted per verified report.
	VerifiedReportPenalty = 15

	MinTrustScore = 0
	MaxTrustScore = 100
)

type RestrictionLevel string

const (
	LevelNone      RestrictionLevel = "none"
	LevelLimited   RestrictionLevel = "limited"
	LevelSuspended RestrictionLevel = "suspended"
	LevelBanned    RestrictionLevel = "banned"
)

func RestrictionLevelFromString(value string) (RestrictionLevel, error) {
	switch value {
	case string(LevelNone), string(LevelLimited), string(LevelSuspended), string(LevelBanned):
		return RestrictionLevel(value), nil
	default:
		return "", ErrInvalidRestrictionLevel
	}
}

// Capabilities is the derived view of what a user may still do, computed
// from verified-report thresholds. It reflects history only; the persisted
// restriction record remains the administrative source of truth.
type Capabilities struct {
	CanSendMessages       bool `json:"can_send_messages"`
	CanStartConversations bool `json:"can_start_conversations"`
	RequiresPreApproval   bool `json:"requires_pre_approval"`
	MessageLimitPerDay    int  `json:"message_limit_per_day"`
}

// UserScore is derived per call from report history, never stored verbatim.
type UserScore struct {
	UserID           uuid.UUID        `json:"user_id"`
	ReportsReceived  int              `json:"reports_received"`
	ReportsVerified  int              `json:"reports_verified"`
	TrustScore       int              `json:"trust_score"`
	RestrictionLevel RestrictionLevel `json:"restriction_level"`
	Capabilities     Capabilities     `json:"restrictions"`
}

// ComputeUserScore applies the trust formula and the verified-report
// escalation thresholds.
func ComputeUserScore(userID uuid.UUID, received, verified int) *UserScore {
	trust := BaseTrustScore - verified*VerifiedReportPenalty
	if trust < MinTrustScore {
		trust = MinTrustScore
	}
	if trust > MaxTrustScore {
		trust = MaxTrustScore
	}

	level := LevelNone
	caps := Capabilities{
		CanSendMessages:       true,
		CanStartConversations: true,
		RequiresPreApproval:   false,
		MessageLimitPerDay:    100,
	}

	switch {
	case verified >= 5:
		level = LevelBanned
		caps = Capabilities{}
	case verified >= 3:
		level = LevelSuspended
		caps = Capabilities{}
	case verified >= 2 || trust < 40:
		level = LevelLimited
		caps = Capabilities{
			CanSendMessages:     true,
			RequiresPreApproval: true,
			MessageLimitPerDay:  10,
		}
	}

	return &UserScore{
		UserID:           userID,
		ReportsReceived:  received,
		ReportsVerified:  verified,
		TrustScore:       trust,
		RestrictionLevel: level,
		Capabilities:     caps,
	}
}

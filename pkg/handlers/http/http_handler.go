package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Moderation
	ModerateMessageHandler   Handler
	GetTrustScoreHandler     Handler
	CheckRestrictionsHandler Handler

	// Moderation admin
	ApplyActionHandler     Handler
	LiftRestrictionHandler Handler
	ListQueueHandler       Handler
	ProcessReportHandler   Handler

	// Privacy
	GetPrivacySettingsHandler    Handler
	UpdatePrivacySettingsHandler Handler
	UpdateConsentHandler         Handler
	SharingPreferencesHandler    Handler
	ListSharingHistoryHandler    Handler
	RecordExchangeHandler        Handler
	RevokeExchangeHandler        Handler
	DeleteAccountHandler         Handler
	CreateExportHandler          Handler
	ListExportsHandler           Handler
}

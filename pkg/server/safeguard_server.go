package server

import (
	"fmt"

	"github.com/care-collective/safeguard/pkg/config"
	handlers "github.com/care-collective/safeguard/pkg/handlers/http"
	"github.com/care-collective/safeguard/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type (
	SafeguardServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	SafeguardServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewSafeguardServer(di SafeguardServerDI) *SafeguardServer {
	return &SafeguardServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *SafeguardServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting safeguard server")
	return s.Router.Listen(addr)
}

func (s *SafeguardServer) Shutdown() error {
	return s.Router.Shutdown()
}

func (s *SafeguardServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")
	v1.Use(s.middlewareTransport.AuthMiddleware.Middleware())
	{
		moderation := v1.Group("/moderation")
		{
			moderation.Post("/moderate", s.handlerTransport.ModerateMessageHandler.Handle)
			moderation.Get("/restrictions/check", s.handlerTransport.CheckRestrictionsHandler.Handle)

			admin := moderation.Group("/admin", s.middlewareTransport.AdminAuthMiddleware.Middleware())
			{
				admin.Get("/queue", s.handlerTransport.ListQueueHandler.Handle)
				admin.Post("/queue/:report_id", s.handlerTransport.ProcessReportHandler.Handle)
				admin.Post("/actions", s.handlerTransport.ApplyActionHandler.Handle)
				admin.Delete("/restrictions/:user_id", s.handlerTransport.LiftRestrictionHandler.Handle)
				admin.Get("/trust-scores/:user_id", s.handlerTransport.GetTrustScoreHandler.Handle)
			}
		}

		privacy := v1.Group("/privacy")
		{
			privacy.Get("/settings", s.handlerTransport.GetPrivacySettingsHandler.Handle)
			privacy.Put("/settings", s.handlerTransport.UpdatePrivacySettingsHandler.Handle)
			privacy.Put("/consent", s.handlerTransport.UpdateConsentHandler.Handle)
			privacy.Post("/sharing-preferences", s.handlerTransport.SharingPreferencesHandler.Handle)
			privacy.Get("/sharing-history", s.handlerTransport.ListSharingHistoryHandler.Handle)
			privacy.Post("/exchanges", s.handlerTransport.RecordExchangeHandler.Handle)
			privacy.Post("/exchanges/:exchange_id/revoke", s.handlerTransport.RevokeExchangeHandler.Handle)
			privacy.Post("/delete-account", s.handlerTransport.DeleteAccountHandler.Handle)
			privacy.Post("/exports", s.handlerTransport.CreateExportHandler.Handle)
			privacy.Get("/exports", s.handlerTransport.ListExportsHandler.Handle)
		}
	}
}

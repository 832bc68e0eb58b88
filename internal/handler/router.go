package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	businessHandler "github.com/frontdeskhq/frontdesk/backend/internal/handler/business"
	chatHandler "github.com/frontdeskhq/frontdesk/backend/internal/handler/chat"
	middlewarePkg "github.com/frontdeskhq/frontdesk/backend/internal/middleware"
	businessModel "github.com/frontdeskhq/frontdesk/backend/internal/model/business"
	chatService "github.com/frontdeskhq/frontdesk/backend/internal/service/chat"
)

// NewRouter wires HTTP routes to core services. turns may be nil when
// the generation backend is not configured; the chat endpoint then
// reports the assistant as unavailable.
func NewRouter(businesses businessModel.Store, turns *chatService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		businessHandler.New(businesses).RegisterRoutes(api)
		chatHandler.New(turns).RegisterRoutes(api)
	})

	return r
}

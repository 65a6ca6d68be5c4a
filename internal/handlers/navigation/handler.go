package navigation

import (
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/navigation/service"
	"hotelbook/shared/constant"
	"hotelbook/shared/session"
	"hotelbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	navigator service.Navigator
	otel      otel.Otel
}

func New(navigator service.Navigator, otel otel.Otel) Handler {
	return Handler{
		navigator: navigator,
		otel:      otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/navigate", func(r chi.Router) {
		r.Post("/logout", handler.Logout)
		r.Get("/{screen}", handler.Navigate)
	})
}

// Navigate hands the current session over to a screen
// @Summary Navigate to a screen
// @Description Resolve the destination for a screen. Screens that need an identity redirect to their login screen
// @Description when the session does not resolve.
// @Tags Navigation
// @Produce json
// @Param screen path string true "Screen name"
// @Success 200 {object} response.Data[model.Destination]
// @Failure 404 {object} response.Error
// @Router /v1/navigate/{screen} [get]
func (handler *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Navigate")
	defer scope.End()

	screen := chi.URLParam(r, constant.RequestParamScreen)

	destination, err := handler.navigator.Navigate(ctx, screen, session.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("screen", screen).Msg("failed to navigate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, destination)
}

// Logout drops the session and lands on the login screen
// @Summary Logout
// @Tags Navigation
// @Produce json
// @Success 200 {object} response.Data[model.Destination]
// @Router /v1/navigate/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	scope.AddEvent("Session logged out by " + session.Actor(ctx))

	response.WithJSON(w, http.StatusOK, handler.navigator.Logout(ctx))
}

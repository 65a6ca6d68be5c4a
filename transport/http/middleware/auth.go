package middleware

import (
	"context"
	"errors"
	"hotelbook/config"
	"hotelbook/infras/jwt"
	"hotelbook/infras/otel"
	navModel "hotelbook/internal/domains/navigation/model"
	navService "hotelbook/internal/domains/navigation/service"
	"hotelbook/permissions"
	"hotelbook/shared/constant"
	"hotelbook/shared/failure"
	"hotelbook/shared/session"
	"hotelbook/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	navigator  navService.Navigator
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(
	jwtService jwt.JWT,
	navigator navService.Navigator,
	otel otel.Otel,
	permissions *permissions.PermissionData,
	cfg *config.Config,
) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		navigator:  navigator,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Auth validates the bearer token and re-derives the identity it names on every request.
// Routes marked skip still get a session attached when a valid token is sent.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		ctx, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		if skip, _ := ctx.Value(SkipAuthKey("skip")).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path := routePattern(request)
		permission := m.findPermission(path, request.Method)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		sess, err := m.authenticate(ctx, request)

		if permission.Skip {
			scope.End()

			if err == nil {
				request = request.WithContext(session.WithSession(request.Context(), sess))
			}

			next.ServeHTTP(writer, request)

			return
		}

		if err != nil {
			scope.TraceError(err)
			scope.End()

			response.WithRedirect(writer, err, loginScreen(permission))

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(session.WithSession(request.Context(), sess)))
	})
}

func (m *authRoleImpl) authenticate(ctx context.Context, request *http.Request) (*session.Session, error) {
	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == "" {
		return nil, failure.Unauthorized("Missing authorization header") // nolint:wrapcheck
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format") // nolint:wrapcheck
	}

	claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidToken):
			message = "Invalid token"
		case errors.Is(err, jwt.ErrInvalidClaim):
			message = "Invalid token claims"
		default:
			message = "Token validation failed"
		}

		return nil, failure.Unauthorized(message) // nolint:wrapcheck
	}

	if claims.IdentityID == constant.Empty || claims.Role == constant.Empty {
		log.Error().Msg("JWT claims: identity or role is empty")

		return nil, failure.Unauthorized("Invalid token claims") // nolint:wrapcheck
	}

	sess := session.New(claims.IdentityID, claims.Role)

	identity, err := m.navigator.Resolve(ctx, sess)
	if errors.Is(err, navService.ErrNotLoggedIn) {
		log.Warn().Str("identity_id", claims.IdentityID).Msg("token identity did not resolve")

		return nil, failure.Unauthorized("Session is no longer valid") // nolint:wrapcheck
	}

	if err != nil {
		return nil, err
	}

	return session.New(identity.ID, identity.Role), nil
}

// RBAC checks the session role against the roles allowed for the route.
// Requires prior authentication via Auth middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if skip, _ := ctx.Value(SkipAuthKey("skip")).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.FindPermissions(routePattern(request), request.Method)

		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		var role string
		if sess := session.FromContext(ctx); sess != nil {
			role = sess.Role
		}

		if len(permission.Permissions) > 0 && !slices.Contains(permission.Permissions, role) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey for internal service-to-service authentication using API key
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		ctx = context.WithValue(ctx, SkipAuthKey("skip"), false)
		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || apiKey != m.cfg.App.APIKey {
			err := failure.ForbiddenError

			response.WithError(writer, failure.ForbiddenError)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, SkipAuthKey("skip"), true)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) findPermission(path, method string) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	if m.permission.Skip {
		return permissions.Permission{Skip: true}
	}

	return m.permission.FindPermissions(path, method)
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); path != "" {
		return path
	}

	return request.URL.Path
}

// loginScreen picks the screen a rejected caller is sent back to.
func loginScreen(permission permissions.Permission) string {
	if slices.Contains(permission.Permissions, constant.RoleAdmin) && !slices.Contains(permission.Permissions, constant.RoleUser) {
		return navModel.ScreenAdminLogin
	}

	return navModel.ScreenLogin
}

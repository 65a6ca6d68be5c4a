package middleware_test

import (
	"encoding/json"
	"errors"
	"hotelbook/config"
	"hotelbook/infras/jwt"
	jwtMocks "hotelbook/infras/jwt/mocks"
	otelMocks "hotelbook/infras/otel/mocks"
	navMocks "hotelbook/internal/domains/navigation/mocks"
	navModel "hotelbook/internal/domains/navigation/model"
	navService "hotelbook/internal/domains/navigation/service"
	"hotelbook/permissions"
	"hotelbook/shared/constant"
	"hotelbook/shared/session"
	"hotelbook/transport/http/middleware"
	"hotelbook/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/v1/hotels", Method: http.MethodGet, Skip: true},
		{Path: "/v1/bookings/{id}", Method: http.MethodGet, Permissions: []string{constant.RoleUser, constant.RoleAdmin}},
		{Path: "/v1/admin/users", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin}},
	},
}

func newRouter(authRole middleware.AuthRole) http.Handler {
	whoami := func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if sess == nil {
			response.WithMessage(w, http.StatusOK, "anonymous")

			return
		}

		response.WithMessage(w, http.StatusOK, sess.Role+":"+sess.IdentityID)
	}

	router := chi.NewRouter()
	router.Group(func(api chi.Router) {
		api.Use(authRole.APIKey)
		api.Use(authRole.Auth)
		api.Use(authRole.RBAC)

		api.Route("/v1", func(v1 chi.Router) {
			v1.Get("/hotels", whoami)
			v1.Get("/bookings/{id}", whoami)
			v1.Get("/admin/users", whoami)
		})
	})

	return router
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		token          string
		apiKey         string
		setupMocks     func(jwtMock *jwtMocks.MockJWT, navMock *navMocks.MockNavigatorService)
		expectCode     int
		expectMessage  string
		expectRedirect string
	}{
		{
			name:          "public route without token",
			path:          "/v1/hotels",
			setupMocks:    func(*jwtMocks.MockJWT, *navMocks.MockNavigatorService) {},
			expectCode:    http.StatusOK,
			expectMessage: "anonymous",
		},
		{
			name:  "public route attaches a valid session",
			path:  "/v1/hotels",
			token: "user-token",
			setupMocks: func(jwtMock *jwtMocks.MockJWT, navMock *navMocks.MockNavigatorService) {
				jwtMock.EXPECT().ValidateToken(gomock.Any(), "user-token", jwt.AccessToken).
					Return(&jwt.Claims{IdentityID: "user-1", Role: constant.RoleUser}, nil)
				navMock.EXPECT().Resolve(gomock.Any(), session.New("user-1", constant.RoleUser)).
					Return(navModel.Identity{ID: "user-1", Role: constant.RoleUser}, nil)
			},
			expectCode:    http.StatusOK,
			expectMessage: "user:user-1",
		},
		{
			name:           "protected route without token",
			path:           "/v1/bookings/booking-1",
			setupMocks:     func(*jwtMocks.MockJWT, *navMocks.MockNavigatorService) {},
			expectCode:     http.StatusUnauthorized,
			expectRedirect: navModel.ScreenLogin,
		},
		{
			name:  "expired token",
			path:  "/v1/bookings/booking-1",
			token: "expired",
			setupMocks: func(jwtMock *jwtMocks.MockJWT, _ *navMocks.MockNavigatorService) {
				jwtMock.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			expectCode:     http.StatusUnauthorized,
			expectRedirect: navModel.ScreenLogin,
		},
		{
			name:  "deactivated identity fails closed",
			path:  "/v1/admin/users",
			token: "admin-token",
			setupMocks: func(jwtMock *jwtMocks.MockJWT, navMock *navMocks.MockNavigatorService) {
				jwtMock.EXPECT().ValidateToken(gomock.Any(), "admin-token", jwt.AccessToken).
					Return(&jwt.Claims{IdentityID: "admin-1", Role: constant.RoleAdmin}, nil)
				navMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(navModel.Identity{}, navService.ErrNotLoggedIn)
			},
			expectCode:     http.StatusUnauthorized,
			expectRedirect: navModel.ScreenAdminLogin,
		},
		{
			name:  "user on admin route",
			path:  "/v1/admin/users",
			token: "user-token",
			setupMocks: func(jwtMock *jwtMocks.MockJWT, navMock *navMocks.MockNavigatorService) {
				jwtMock.EXPECT().ValidateToken(gomock.Any(), "user-token", jwt.AccessToken).
					Return(&jwt.Claims{IdentityID: "user-1", Role: constant.RoleUser}, nil)
				navMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).
					Return(navModel.Identity{ID: "user-1", Role: constant.RoleUser}, nil)
			},
			expectCode: http.StatusForbidden,
		},
		{
			name:  "admin on admin route",
			path:  "/v1/admin/users",
			token: "admin-token",
			setupMocks: func(jwtMock *jwtMocks.MockJWT, navMock *navMocks.MockNavigatorService) {
				jwtMock.EXPECT().ValidateToken(gomock.Any(), "admin-token", jwt.AccessToken).
					Return(&jwt.Claims{IdentityID: "admin-1", Role: constant.RoleAdmin}, nil)
				navMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).
					Return(navModel.Identity{ID: "admin-1", Role: constant.RoleAdmin}, nil)
			},
			expectCode:    http.StatusOK,
			expectMessage: "admin:admin-1",
		},
		{
			name:          "internal caller with api key",
			path:          "/v1/admin/users",
			apiKey:        "secret",
			setupMocks:    func(*jwtMocks.MockJWT, *navMocks.MockNavigatorService) {},
			expectCode:    http.StatusOK,
			expectMessage: "anonymous",
		},
		{
			name:       "wrong api key",
			path:       "/v1/admin/users",
			apiKey:     "guess",
			setupMocks: func(*jwtMocks.MockJWT, *navMocks.MockNavigatorService) {},
			expectCode: http.StatusForbidden,
		},
		{
			name:  "storage failure while resolving",
			path:  "/v1/bookings/booking-1",
			token: "user-token",
			setupMocks: func(jwtMock *jwtMocks.MockJWT, navMock *navMocks.MockNavigatorService) {
				jwtMock.EXPECT().ValidateToken(gomock.Any(), "user-token", jwt.AccessToken).
					Return(&jwt.Claims{IdentityID: "user-1", Role: constant.RoleUser}, nil)
				navMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(navModel.Identity{}, errors.New("connection refused"))
			},
			expectCode:     http.StatusInternalServerError,
			expectRedirect: navModel.ScreenLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jwtMock := jwtMocks.NewMockJWT(ctrl)
			navMock := navMocks.NewMockNavigatorService(ctrl)
			tt.setupMocks(jwtMock, navMock)

			cfg := &config.Config{}
			cfg.App.APIKey = "secret"

			authRole := middleware.NewAuthRoleMiddleware(jwtMock, navMock, otelMocks.NewOtel(), testPermissions, cfg)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+tt.token)
			}

			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()
			newRouter(authRole).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectCode, rec.Code)

			if tt.expectMessage != "" {
				var body response.Message
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.NotNil(t, body.Message)
				assert.Equal(t, tt.expectMessage, *body.Message)
			}

			if tt.expectRedirect != "" {
				var body response.Error
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectRedirect, body.Redirect)
			}
		})
	}
}

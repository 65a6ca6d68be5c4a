package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelbook/config"
	"hotelbook/infras/jwt"
	jwtMocks "hotelbook/infras/jwt/mocks"
	"hotelbook/infras/otel/mocks"
	adminMocks "hotelbook/internal/domains/admin/mocks"
	adminModel "hotelbook/internal/domains/admin/model"
	"hotelbook/internal/domains/auth/model/dto"
	"hotelbook/internal/domains/auth/service"
	userMocks "hotelbook/internal/domains/user/mocks"
	userModel "hotelbook/internal/domains/user/model"
	"hotelbook/shared/constant"
	"hotelbook/shared/failure"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/password"
	"hotelbook/shared/session"
	"hotelbook/shared/timezone"
)

type fixture struct {
	userRepo  *userMocks.MockUser
	adminRepo *adminMocks.MockAdmin
	jwt       *jwtMocks.MockJWT
	hasher    password.Hasher
	svc       service.Auth
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	hasher := password.NewSHA256()

	f := fixture{
		userRepo:  userMocks.NewMockUser(ctrl),
		adminRepo: adminMocks.NewMockAdmin(ctrl),
		jwt:       jwtMocks.NewMockJWT(ctrl),
		hasher:    hasher,
	}

	f.svc = service.New(f.userRepo, f.adminRepo, hasher, &config.Config{}, mocks.NewOtel(), f.jwt)

	return f
}

func (f fixture) digest(t *testing.T, plain string) string {
	t.Helper()

	digest, err := f.hasher.Hash(plain)
	require.NoError(t, err)

	return digest
}

func (f fixture) user(t *testing.T) userModel.User {
	question := "What is your pet's name?"
	answer := f.digest(t, "testanswer")

	return userModel.User{
		ID:               "user-id-123",
		FirstName:        "Ann",
		LastName:         "Lee",
		Email:            "a@x.com",
		Password:         f.digest(t, "secret1"),
		SecurityQuestion: &question,
		SecurityAnswer:   &answer,
		Active:           true,
		Metadata:         gModel.NewMetadata(constant.ContextGuest, timezone.Now()),
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 900}
}

func TestAuthService_Signup(t *testing.T) {
	valid := dto.SignupRequest{
		FullName:        "Ann Lee",
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		TermsAccepted:   true,
	}

	tests := []struct {
		name     string
		mutate   func(req *dto.SignupRequest)
		setup    func(f fixture)
		wantKind failure.Kind
		wantErr  bool
	}{
		{
			name: "successful signup",
			setup: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user userModel.User) error {
					assert.Equal(t, "Ann", user.FirstName)
					assert.Equal(t, "Lee", user.LastName)
					assert.NoError(t, f.hasher.Verify("secret1", user.Password))

					return nil
				})
			},
		},
		{
			name:     "password mismatch",
			mutate:   func(req *dto.SignupRequest) { req.ConfirmPassword = "secret2" },
			setup:    func(fixture) {},
			wantKind: failure.KindInvalidInput,
			wantErr:  true,
		},
		{
			name:     "terms not accepted",
			mutate:   func(req *dto.SignupRequest) { req.TermsAccepted = false },
			setup:    func(fixture) {},
			wantKind: failure.KindInvalidInput,
			wantErr:  true,
		},
		{
			name: "duplicate email",
			setup: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindDuplicateEntry,
			wantErr:  true,
		},
		{
			name: "security answer is normalised before hashing",
			mutate: func(req *dto.SignupRequest) {
				req.SecurityQuestion = "Pet?"
				req.SecurityAnswer = "  TestAnswer "
			},
			setup: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user userModel.User) error {
					require.NotNil(t, user.SecurityAnswer)
					assert.NoError(t, f.hasher.Verify("testanswer", *user.SecurityAnswer))

					return nil
				})
			},
		},
		{
			name: "storage error",
			setup: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantKind: failure.KindStorageError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			req := valid
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			res, err := f.svc.Signup(context.Background(), req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "a@x.com", res.Email)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.LoginRequest
		setup    func(f fixture, user userModel.User)
		wantKind failure.Kind
		wantErr  bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "a@x.com", Password: "secret1"},
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), user.ID, user.Email, constant.RoleUser).Return(tokenPair(), nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@x.com", Password: "secret1"},
			setup: func(f fixture, _ userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantKind: failure.KindInvalidCredentials,
			wantErr:  true,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "a@x.com", Password: "wrong"},
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantKind: failure.KindInvalidCredentials,
			wantErr:  true,
		},
		{
			name: "deactivated user",
			req:  dto.LoginRequest{Email: "a@x.com", Password: "secret1"},
			setup: func(f fixture, user userModel.User) {
				user.Active = false
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantKind: failure.KindAccountDeactivated,
			wantErr:  true,
		},
		{
			name: "deactivated user with wrong password is still invalid credentials",
			req:  dto.LoginRequest{Email: "a@x.com", Password: "wrong"},
			setup: func(f fixture, user userModel.User) {
				user.Active = false
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantKind: failure.KindInvalidCredentials,
			wantErr:  true,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "a@x.com", Password: "secret1"},
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("token generation failed"))
			},
			wantKind: failure.KindStorageError,
			wantErr:  true,
		},
		{
			name: "last login not recorded still logs in",
			req:  dto.LoginRequest{Email: "a@x.com", Password: "secret1"},
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			user := f.user(t)
			tt.setup(f, user)

			res, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, user.ID, res.Identity.ID)
			assert.Equal(t, constant.RoleUser, res.Identity.Role)
			assert.Equal(t, "Ann Lee", res.Identity.Name)
		})
	}
}

func TestAuthService_AdminLogin(t *testing.T) {
	f := newFixture(t)
	admin := adminModel.Admin{ID: "admin-1", Name: "Admin", Email: "admin@hotel.com", Password: f.digest(t, "admin123"), Active: true}

	f.adminRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
	f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), admin.ID, admin.Email, constant.RoleAdmin).Return(tokenPair(), nil)
	f.adminRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("ignored"))

	res, err := f.svc.AdminLogin(context.Background(), dto.LoginRequest{Email: "admin@hotel.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, constant.RoleAdmin, res.Identity.Role)

	f.adminRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)

	_, err = f.svc.AdminLogin(context.Background(), dto.LoginRequest{Email: "admin@hotel.com", Password: "nope"})
	assert.True(t, failure.IsKind(err, failure.KindInvalidCredentials))
}

func TestAuthService_SecurityQuestion(t *testing.T) {
	f := newFixture(t)
	user := f.user(t)

	f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

	res, err := f.svc.SecurityQuestion(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, *user.SecurityQuestion, res.Question)

	user.SecurityQuestion = nil
	f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

	_, err = f.svc.SecurityQuestion(context.Background(), "a@x.com")
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestAuthService_ResetPassword(t *testing.T) {
	valid := dto.ResetPasswordRequest{
		Email:           "a@x.com",
		Question:        "what is your pet's name?",
		Answer:          "  TESTANSWER ",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	}

	tests := []struct {
		name     string
		mutate   func(req *dto.ResetPasswordRequest)
		setup    func(f fixture, user userModel.User)
		wantKind failure.Kind
		wantErr  bool
	}{
		{
			name: "matching answer resets password",
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					digest, ok := fields[userModel.FieldPassword].(string)
					require.True(t, ok)
					assert.NoError(t, f.hasher.Verify("newsecret", digest))

					return nil
				})
			},
		},
		{
			name:   "wrong answer",
			mutate: func(req *dto.ResetPasswordRequest) { req.Answer = "other" },
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantKind: failure.KindInvalidCredentials,
			wantErr:  true,
		},
		{
			name:   "wrong question",
			mutate: func(req *dto.ResetPasswordRequest) { req.Question = "first school?" },
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantKind: failure.KindInvalidCredentials,
			wantErr:  true,
		},
		{
			name: "unknown email",
			setup: func(f fixture, _ userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantKind: failure.KindInvalidCredentials,
			wantErr:  true,
		},
		{
			name:     "confirmation mismatch",
			mutate:   func(req *dto.ResetPasswordRequest) { req.ConfirmPassword = "different" },
			setup:    func(fixture, userModel.User) {},
			wantKind: failure.KindInvalidInput,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f, f.user(t))

			req := valid
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			err := f.svc.ResetPassword(context.Background(), req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := newFixture(t)

	f.jwt.EXPECT().RefreshTokens(gomock.Any(), "valid-refresh-token").Return(tokenPair(), nil)

	res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", res.AccessToken)

	f.jwt.EXPECT().RefreshTokens(gomock.Any(), "invalid-refresh-token").Return(nil, errors.New("invalid token"))

	_, err = f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "invalid-refresh-token"})
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		sess    *session.Session
		req     dto.ChangePasswordRequest
		setup   func(f fixture, user userModel.User)
		wantErr bool
	}{
		{
			name: "user changes password",
			sess: session.New("user-id-123", constant.RoleUser),
			req:  dto.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "newsecret"},
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "admin changes password",
			sess: session.New("admin-1", constant.RoleAdmin),
			req:  dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "newsecret"},
			setup: func(f fixture, _ userModel.User) {
				f.adminRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{ID: "admin-1", Password: f.digest(t, "admin123")}, nil)
				f.adminRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "no session",
			req:     dto.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "newsecret"},
			setup:   func(fixture, userModel.User) {},
			wantErr: true,
		},
		{
			name: "user vanished",
			sess: session.New("user-id-123", constant.RoleUser),
			req:  dto.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "newsecret"},
			setup: func(f fixture, _ userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong current password",
			sess: session.New("user-id-123", constant.RoleUser),
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newsecret"},
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "update password error",
			sess: session.New("user-id-123", constant.RoleUser),
			req:  dto.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "newsecret"},
			setup: func(f fixture, user userModel.User) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f, f.user(t))

			ctx := context.Background()
			if tt.sess != nil {
				ctx = session.WithSession(ctx, tt.sess)
			}

			err := f.svc.ChangePassword(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

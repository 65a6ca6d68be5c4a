package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/jwt"
	"hotelbook/infras/otel"
	adminModel "hotelbook/internal/domains/admin/model"
	adminRepo "hotelbook/internal/domains/admin/repository"
	"hotelbook/internal/domains/auth/model/dto"
	userModel "hotelbook/internal/domains/user/model"
	userRepo "hotelbook/internal/domains/user/repository"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/password"
	"hotelbook/shared/session"
	"hotelbook/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

const msgInvalidCredentials = "invalid email or password"

type Auth interface {
	Signup(ctx context.Context, req dto.SignupRequest) (dto.SignupResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	AdminLogin(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	SecurityQuestion(ctx context.Context, email string) (dto.SecurityQuestionResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	adminRepo  adminRepo.Admin
	hasher     password.Hasher
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, adminRepo adminRepo.Admin, hasher password.Hasher, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		hasher:     hasher,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.SignupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Password != req.ConfirmPassword {
		return res, failure.InvalidInput("passwords do not match") // nolint:wrapcheck
	}

	if !req.TermsAccepted {
		return res, failure.InvalidInput("terms and conditions must be accepted") // nolint:wrapcheck
	}

	exists, err := s.userRepo.Exist(ctx, byEmail(userModel.TableName, userModel.FieldEmail, req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.DuplicateEntry("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	var hashedAnswer string

	if strings.TrimSpace(req.SecurityQuestion) != "" {
		hashedAnswer, err = s.hasher.Hash(password.NormalizeAnswer(req.SecurityAnswer))
		if err != nil {
			log.Error().Err(err).Msg("failed to hash security answer")

			return res, fmt.Errorf("failed to hash security answer: %w", err)
		}
	}

	user := req.ToUserModel(hashedPassword, hashedAnswer)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	return dto.SignupResponse{ID: user.ID, Email: user.Email}, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := byEmail(userModel.TableName, userModel.FieldEmail, req.Email)

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.InvalidCredentials(msgInvalidCredentials) // nolint:wrapcheck
	}

	if err := s.hasher.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentials(msgInvalidCredentials) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.AccountDeactivated("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, constant.RoleUser)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}, user.ID)

	if err := s.userRepo.Update(ctx, lastLogin, emailFilter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)
	res.Identity = dto.Identity{ID: user.ID, Role: constant.RoleUser, Name: user.FullName(), Email: user.Email}

	return res, nil
}

func (s *serviceImpl) AdminLogin(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := byEmail(adminModel.TableName, adminModel.FieldEmail, req.Email)

	admin, err := s.adminRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty || s.hasher.Verify(req.Password, admin.Password) != nil {
		log.Warn().Str("email", req.Email).Msg("failed admin login attempt")

		return res, failure.InvalidCredentials(msgInvalidCredentials) // nolint:wrapcheck
	}

	if !admin.Active {
		return res, failure.AccountDeactivated("admin account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, admin.ID, admin.Email, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}, admin.ID)

	if err := s.adminRepo.Update(ctx, lastLogin, emailFilter); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)
	res.Identity = dto.Identity{ID: admin.ID, Role: constant.RoleAdmin, Name: admin.Name, Email: admin.Email}

	return res, nil
}

func (s *serviceImpl) SecurityQuestion(ctx context.Context, email string) (res dto.SecurityQuestionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SecurityQuestion")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, byEmail(userModel.TableName, userModel.FieldEmail, email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty || user.SecurityQuestion == nil || *user.SecurityQuestion == "" {
		return res, failure.NotFound("no security question found for this email") // nolint:wrapcheck
	}

	return dto.SecurityQuestionResponse{Email: user.Email, Question: *user.SecurityQuestion}, nil
}

// ResetPassword accepts the stored question and a matching answer as proof of ownership. Nothing is
// sent to the user; the new password takes effect immediately.
func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.NewPassword != req.ConfirmPassword {
		return failure.InvalidInput("passwords do not match") // nolint:wrapcheck
	}

	emailFilter := byEmail(userModel.TableName, userModel.FieldEmail, req.Email)

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if !answerMatches(s.hasher, user, req.Question, req.Answer) {
		log.Warn().Str("email", req.Email).Msg("password reset with wrong security answer")

		return failure.InvalidCredentials("security question or answer is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, user.ID)

	if err = s.userRepo.Update(ctx, updatedFields, emailFilter); err != nil {
		log.Error().Err(err).Msg("failed to reset password")

		return fmt.Errorf("failed to reset password: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("password reset via security question")

	return nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// ChangePassword updates the password of whoever holds the session, user or admin.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	sess := session.FromContext(ctx)
	if sess == nil {
		return failure.Unauthorized("not logged in") // nolint:wrapcheck
	}

	var (
		current string
		update  func(map[string]any, gDto.FilterGroup) error
		filter  gDto.FilterGroup
	)

	if sess.IsAdmin() {
		filter = shared.FilterByID(sess.IdentityID, adminModel.FieldID, adminModel.TableName)

		admin, getErr := s.adminRepo.Get(ctx, filter)
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to get admin")

			return fmt.Errorf("failed to get admin: %w", getErr)
		}

		if admin.ID == constant.Empty {
			return failure.NotFound("admin not found") // nolint:wrapcheck
		}

		current = admin.Password
		update = func(fields map[string]any, f gDto.FilterGroup) error { return s.adminRepo.Update(ctx, fields, f) }
	} else {
		filter = shared.FilterByID(sess.IdentityID, userModel.FieldID, userModel.TableName)

		user, getErr := s.userRepo.Get(ctx, filter)
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to get user")

			return fmt.Errorf("failed to get user: %w", getErr)
		}

		if user.ID == constant.Empty {
			return failure.NotFound("user not found") // nolint:wrapcheck
		}

		current = user.Password
		update = func(fields map[string]any, f gDto.FilterGroup) error { return s.userRepo.Update(ctx, fields, f) }
	}

	if err := s.hasher.Verify(req.CurrentPassword, current); err != nil {
		return failure.InvalidCredentials("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, sess.IdentityID)

	if err = update(updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func answerMatches(hasher password.Hasher, user userModel.User, question, answer string) bool {
	if user.ID == constant.Empty || user.SecurityQuestion == nil || user.SecurityAnswer == nil {
		return false
	}

	if !strings.EqualFold(strings.TrimSpace(*user.SecurityQuestion), strings.TrimSpace(question)) {
		return false
	}

	return hasher.Verify(password.NormalizeAnswer(answer), *user.SecurityAnswer) == nil
}

func byEmail(table, field, email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    table,
			},
		},
	}
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Navigator=MockNavigatorService

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/infras/otel"
	adminModel "hotelbook/internal/domains/admin/model"
	adminRepo "hotelbook/internal/domains/admin/repository"
	"hotelbook/internal/domains/navigation/model"
	userModel "hotelbook/internal/domains/user/model"
	userRepo "hotelbook/internal/domains/user/repository"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	"hotelbook/shared/failure"
	"hotelbook/shared/session"

	"github.com/rs/zerolog/log"
)

// ErrNotLoggedIn is returned when a session does not resolve to an active identity.
var ErrNotLoggedIn = errors.New("not logged in")

type Navigator interface {
	Navigate(ctx context.Context, screen string, sess *session.Session) (model.Destination, error)
	Resolve(ctx context.Context, sess *session.Session) (model.Identity, error)
	Logout(ctx context.Context) model.Destination
}

type serviceImpl struct {
	userRepo  userRepo.User
	adminRepo adminRepo.Admin
	otel      otel.Otel
}

func New(userRepo userRepo.User, adminRepo adminRepo.Admin, otel otel.Otel) Navigator {
	return &serviceImpl{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		otel:      otel,
	}
}

// Navigate hands the session over to screen. Screens that need an identity re-read it by primary key
// and send the caller to the matching login screen when that fails.
func (s *serviceImpl) Navigate(ctx context.Context, name string, sess *session.Session) (res model.Destination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Navigate")
	defer scope.End()
	defer scope.TraceIfError(err)

	screen, ok := model.Screens[name]
	if !ok {
		return res, failure.NotFound("screen not found") // nolint:wrapcheck
	}

	if !screen.NeedsIdentity() {
		return model.Destination{Screen: screen.Name}, nil
	}

	redirect := model.Destination{Screen: screen.Login, Redirected: true}

	if sess == nil || sess.Role != screen.Role {
		return redirect, nil
	}

	identity, err := s.Resolve(ctx, sess)
	if errors.Is(err, ErrNotLoggedIn) {
		log.Warn().Str("identity_id", sess.IdentityID).Str("screen", name).Msg("session did not resolve, redirecting to login")

		return redirect, nil
	}

	if err != nil {
		return res, err
	}

	return model.Destination{
		Screen:   screen.Name,
		Session:  session.New(identity.ID, identity.Role),
		Identity: &identity,
	}, nil
}

// Resolve re-fetches the identity a session claims. Missing rows and inactive users fail closed.
func (s *serviceImpl) Resolve(ctx context.Context, sess *session.Session) (res model.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sess == nil || sess.IdentityID == constant.Empty {
		return res, ErrNotLoggedIn
	}

	switch sess.Role {
	case constant.RoleAdmin:
		admin, err := s.adminRepo.Get(ctx, shared.FilterByID(sess.IdentityID, adminModel.FieldID, adminModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get admin")

			return res, fmt.Errorf("failed to get admin: %w", err)
		}

		if admin.ID == constant.Empty || !admin.Active {
			return res, ErrNotLoggedIn
		}

		return model.Identity{ID: admin.ID, Role: constant.RoleAdmin, Name: admin.Name, Email: admin.Email}, nil
	case constant.RoleUser:
		user, err := s.userRepo.Get(ctx, shared.FilterByID(sess.IdentityID, userModel.FieldID, userModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get user")

			return res, fmt.Errorf("failed to get user: %w", err)
		}

		if user.ID == constant.Empty || !user.Active {
			return res, ErrNotLoggedIn
		}

		return model.Identity{ID: user.ID, Role: constant.RoleUser, Name: user.FullName(), Email: user.Email}, nil
	default:
		return res, ErrNotLoggedIn
	}
}

func (s *serviceImpl) Logout(ctx context.Context) model.Destination {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()

	return model.Destination{Screen: model.ScreenLogin}
}

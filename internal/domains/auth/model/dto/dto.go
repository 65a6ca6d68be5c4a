package dto

import (
	"hotelbook/infras/jwt"
	userModel "hotelbook/internal/domains/user/model"
	"hotelbook/shared/constant"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SignupRequest struct {
	FullName         string `json:"full_name"         validate:"required,max=200"`
	Email            string `json:"email"             validate:"required,email"`
	Phone            string `json:"phone"             validate:"omitempty,max=30"`
	Address          string `json:"address"           validate:"omitempty,max=255"`
	Password         string `json:"password"          validate:"required,min=6"`
	ConfirmPassword  string `json:"confirm_password"  validate:"required"`
	TermsAccepted    bool   `json:"terms_accepted"`
	SecurityQuestion string `json:"security_question" validate:"omitempty,max=255"`
	SecurityAnswer   string `json:"security_answer"   validate:"required_with=SecurityQuestion,max=255"`
}

// ToUserModel builds the row to insert; hashedAnswer is ignored unless a security question was given.
func (r *SignupRequest) ToUserModel(hashedPassword, hashedAnswer string) userModel.User {
	first, last := userModel.SplitFullName(r.FullName)

	user := userModel.User{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:     optional(r.Phone),
		Address:   optional(r.Address),
		Password:  hashedPassword,
		Active:    true,
		Metadata:  gModel.NewMetadata(constant.ContextGuest, timezone.Now()),
	}

	if question := strings.TrimSpace(r.SecurityQuestion); question != "" {
		user.SecurityQuestion = &question
		user.SecurityAnswer = &hashedAnswer
	}

	return user
}

type SignupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

// Identity is the account a token pair was issued for.
type Identity struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
	Identity     Identity `json:"identity"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required"`
}

type SecurityQuestionResponse struct {
	Email    string `json:"email"`
	Question string `json:"question"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Question        string `json:"question"         validate:"required"`
	Answer          string `json:"answer"           validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}

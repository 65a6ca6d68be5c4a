package model

import (
	"hotelbook/shared/constant"
	"hotelbook/shared/session"
)

const (
	ScreenLogin          = "login"
	ScreenSignup         = "signup"
	ScreenForgotPassword = "forgot_password"
	ScreenAdminLogin     = "admin_login"

	ScreenHome     = "home"
	ScreenBookings = "bookings"
	ScreenProfile  = "profile"
	ScreenFeedback = "feedback"
	ScreenSearch   = "search"

	ScreenAdminDashboard = "admin_dashboard"
	ScreenAdminBookings  = "admin_bookings"
	ScreenAdminUsers     = "admin_users"
	ScreenAdminHotels    = "admin_hotels"
	ScreenAdminReports   = "admin_reports"
)

// RoleNone marks a screen that is reachable without an identity.
const RoleNone = "none"

type Screen struct {
	Name  string
	Role  string
	Login string
}

// NeedsIdentity reports whether the screen is only shown to a logged in identity.
func (s Screen) NeedsIdentity() bool {
	return s.Role != RoleNone
}

var Screens = map[string]Screen{
	ScreenLogin:          {Name: ScreenLogin, Role: RoleNone},
	ScreenSignup:         {Name: ScreenSignup, Role: RoleNone},
	ScreenForgotPassword: {Name: ScreenForgotPassword, Role: RoleNone},
	ScreenAdminLogin:     {Name: ScreenAdminLogin, Role: RoleNone},

	ScreenHome:     {Name: ScreenHome, Role: constant.RoleUser, Login: ScreenLogin},
	ScreenBookings: {Name: ScreenBookings, Role: constant.RoleUser, Login: ScreenLogin},
	ScreenProfile:  {Name: ScreenProfile, Role: constant.RoleUser, Login: ScreenLogin},
	ScreenFeedback: {Name: ScreenFeedback, Role: constant.RoleUser, Login: ScreenLogin},
	ScreenSearch:   {Name: ScreenSearch, Role: constant.RoleUser, Login: ScreenLogin},

	ScreenAdminDashboard: {Name: ScreenAdminDashboard, Role: constant.RoleAdmin, Login: ScreenAdminLogin},
	ScreenAdminBookings:  {Name: ScreenAdminBookings, Role: constant.RoleAdmin, Login: ScreenAdminLogin},
	ScreenAdminUsers:     {Name: ScreenAdminUsers, Role: constant.RoleAdmin, Login: ScreenAdminLogin},
	ScreenAdminHotels:    {Name: ScreenAdminHotels, Role: constant.RoleAdmin, Login: ScreenAdminLogin},
	ScreenAdminReports:   {Name: ScreenAdminReports, Role: constant.RoleAdmin, Login: ScreenAdminLogin},
}

// Identity is the row a session points at, re-read on every handoff.
type Identity struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Destination is where a handoff lands. Session and Identity are nil unless the screen needs them.
type Destination struct {
	Screen     string           `json:"screen"`
	Redirected bool             `json:"redirected"`
	Session    *session.Session `json:"session,omitempty"`
	Identity   *Identity        `json:"identity,omitempty"`
}

package model

import (
	"hotelbook/shared/model"
	"time"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

// Admin is a back office identity. Admins are seeded and never sign up.
type Admin struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}

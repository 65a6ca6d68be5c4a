package model

import (
	"hotelbook/shared/model"
	"strings"
	"time"
)

const (
	TableName   = "users"
	EntityName  = "user"
	CachePrefix = "user:"

	FieldID               = "id"
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldAddress          = "address"
	FieldPassword         = "password"
	FieldSecurityQuestion = "security_question"
	FieldSecurityAnswer   = "security_answer"
	FieldActive           = "active"
	FieldLastLogin        = "last_login"
)

type User struct {
	ID               string     `db:"id"`
	FirstName        string     `db:"first_name"`
	LastName         string     `db:"last_name"`
	Email            string     `db:"email"`
	Phone            *string    `db:"phone"`
	Address          *string    `db:"address"`
	Password         string     `db:"password"`
	SecurityQuestion *string    `db:"security_question"`
	SecurityAnswer   *string    `db:"security_answer"`
	Active           bool       `db:"active"`
	LastLogin        *time.Time `db:"last_login"`
	model.Metadata
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Summary is a user row with the aggregates the back office shows next to it.
type Summary struct {
	User
	BookingCount int     `db:"booking_count"`
	TotalSpent   float64 `db:"total_spent"`
}

// SplitFullName splits at the first whitespace run; everything after it is the last name.
func SplitFullName(fullName string) (first, last string) {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return "", ""
	}

	return fields[0], strings.Join(fields[1:], " ")
}

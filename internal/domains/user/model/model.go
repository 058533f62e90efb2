package model

import "classbook/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldFullName = "full_name"
	FieldActive   = "active"
)

type User struct {
	ID       string  `db:"id"`
	Username string  `db:"username"`
	Email    string  `db:"email"`
	Password string  `db:"password"`
	Role     string  `db:"role"`
	FullName *string `db:"full_name"`
	Active   bool    `db:"active"`
	model.Metadata
}

package models

import (
	"database/sql"
	"time"
)

// User mirrors a row of the users table.
type User struct {
	UserID       int64         `db:"user_id"`
	Email        string        `db:"email"`
	PasswordHash string        `db:"password_hash"`
	FullName     string        `db:"full_name"`
	Role         string        `db:"role"`
	CompanyID    int64         `db:"company_id"`
	ManagerID    sql.NullInt64 `db:"manager_id"`
	CreatedAt    time.Time     `db:"created_at"`
}

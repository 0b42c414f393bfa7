package model

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleOperator UserRole = "OPERATOR"
)

// Principal is the authenticated caller of the admin API.
type Principal struct {
	UserID uuid.UUID
	Role   UserRole
}

// IsOperator reports whether the caller may trigger reloads and read
// dataset stats.
func (p Principal) IsOperator() bool {
	return p.Role == UserRoleAdmin || p.Role == UserRoleOperator
}

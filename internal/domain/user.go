package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RolePartner, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("role[%s] is not valid", s)
}

type User struct {
	ID     uuid.UUID
	Email  string
	Name   string
	Role   Role
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserUpdate struct {
	Role   *Role
	Active *bool
}

type UserPage struct {
	Users []User
	Total int
}

package models

import "errors"

// Papel fechado, com parse exaustivo na borda de autorização.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBarber Role = "barber"
	RoleClient Role = "client"
)

var ErrInvalidRole = errors.New("invalid role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleBarber:
		return RoleBarber, nil
	case RoleClient:
		return RoleClient, nil
	}
	return "", ErrInvalidRole
}

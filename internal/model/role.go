package model

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDeliverer  Role = "deliverer"
)

// ParseRole accepts the backend's capitalized object types ("Customer") as well.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleRestaurant, RoleDeliverer:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Mutates reports whether the role may change an order's status at all.
func (r Role) Mutates() bool {
	return r == RoleRestaurant || r == RoleDeliverer
}

func (r Role) String() string {
	return string(r)
}

package domain

import "errors"

var ErrUnauthorized = errors.New("unauthorized")

// ErrValidation marks caller errors: missing required fields, unknown enum
// values, or a sparse update carrying no effective fields. Wrap it with a
// specific message.
var ErrValidation = errors.New("invalid input")

// Actor is the authenticated subject performing an operation, decoded from
// the session token claims.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// WriteRule declares who may perform a mutation: admins always pass, and the
// user named by GrantedTo (project owner, task assignee) passes unless the
// rule is AdminOnly.
type WriteRule struct {
	AdminOnly bool
	GrantedTo string
}

// Authorize evaluates rule against the actor. Every use-case mutation
// funnels through here so the permission table lives in one place.
func Authorize(a Actor, rule WriteRule) error {
	if a.IsAdmin() {
		return nil
	}
	if !rule.AdminOnly && rule.GrantedTo != "" && rule.GrantedTo == a.ID {
		return nil
	}
	return ErrUnauthorized
}

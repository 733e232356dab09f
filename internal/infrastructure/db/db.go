// Package db implements the entity repositories on top of the Gateway
// contract. The repositories are backend-agnostic: they write ? placeholders
// and let each gateway handle binding, so the same code runs against the
// embedded SQLite store and the hosted Postgres service.
package db

import "errors"

// ErrDuplicate is returned (wrapped) by gateways when a statement violates a
// unique constraint. Repositories translate it into the matching domain
// error.
var ErrDuplicate = errors.New("unique constraint violation")

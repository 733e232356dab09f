package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is owned by exactly one user. OwnerID must reference an existing
// user at creation time; the creating use case enforces that, not the store.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectView is a Project enriched with the owner's display name on read
// paths. OwnerName is computed by a left join and is nil when the owner row
// no longer exists; it is never persisted.
type ProjectView struct {
	Project
	OwnerName *string `json:"owner_name,omitempty"`
}

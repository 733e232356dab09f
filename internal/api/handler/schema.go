package handler

import (
	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// messageResponse is the envelope returned by mutations that have no body to
// return (updates, deletes).
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	ClientID     string `json:"client_id"     validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

type loginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

type verifyRequest struct {
	Token string `json:"token" validate:"required"`
}

type verifyResponse struct {
	Valid bool              `json:"valid"`
	User  ports.TokenClaims `json:"user"`
}

// --- Users ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin colaborador"`
	// Optional: a credential pair is generated when absent.
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin colaborador"`
}

// --- Projects ---

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// --- Tasks ---

type createTaskRequest struct {
	Title       string `json:"title"      validate:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"project_id" validate:"required"`
	AssignedTo  string `json:"assigned_to"`
	Status      string `json:"status"     validate:"omitempty,oneof=pending in_progress completed"`
}

type updateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	AssignedTo  *string `json:"assigned_to"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

package handler

import (
	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type userRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=20" label:"Name"`
	Lastname string `json:"lastname" validate:"required,min=3,max=20" label:"Lastname"`
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required,password,min=8" label:"Password"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN MODERATOR USER" label:"Role"`
}

func (r *userRequest) input() ports.UserInput {
	return ports.UserInput{
		Name:     r.Name,
		Lastname: r.Lastname,
		Email:    r.Email,
		Password: r.Password,
		Role:     domain.Role(r.Role),
	}
}

// userUpdateRequest makes the password optional. A missing password keeps
// the stored one.
type userUpdateRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=20" label:"Name"`
	Lastname string `json:"lastname" validate:"required,min=3,max=20" label:"Lastname"`
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"omitempty,password,min=8" label:"Password"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN MODERATOR USER" label:"Role"`
}

func (r *userUpdateRequest) input() ports.UserInput {
	return (*userRequest)(r).input()
}

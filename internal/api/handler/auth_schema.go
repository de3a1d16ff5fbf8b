package handler

import "github.com/hrmsystem/hrm-api/internal/core/ports"

type signInRequest struct {
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

func (r *signInRequest) input() ports.SignInInput {
	return ports.SignInInput{Email: r.Email, Password: r.Password}
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=20" label:"Name"`
	Lastname string `json:"lastname" validate:"required,min=3,max=20" label:"Lastname"`
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required,password,min=8" label:"Password"`
}

func (r *signUpRequest) input() ports.SignUpInput {
	return ports.SignUpInput{Name: r.Name, Lastname: r.Lastname, Email: r.Email, Password: r.Password}
}

package handler

import (
	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

type registerRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

type updateProfileRequest struct {
	Name        *string             `json:"name"`
	Bio         *string             `json:"bio"`
	Company     *string             `json:"company"`
	Position    *string             `json:"position"`
	Website     *string             `json:"website"`
	SocialLinks *domain.SocialLinks `json:"socialLinks"`
	Preferences *domain.Preferences `json:"preferences"`
}

func (r updateProfileRequest) patch() ports.ProfilePatch {
	return ports.ProfilePatch{
		Name:        r.Name,
		Bio:         r.Bio,
		Company:     r.Company,
		Position:    r.Position,
		Website:     r.Website,
		SocialLinks: r.SocialLinks,
		Preferences: r.Preferences,
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

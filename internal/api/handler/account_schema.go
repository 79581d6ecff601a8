package handler

import "github.com/praktyka/records-api/internal/core/domain"

// registerRequest checks presence only; the address is stored as given,
// whatever its shape.
type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest uses a pointer so an explicit false still passes the
// presence check.
type updateUserRequest struct {
	HasCompany *bool `json:"hasCompany" validate:"required"`
}

// userResponse is the public projection of a user. The password hash is
// never part of any response payload.
type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"isAdmin"`
	HasCompany bool   `json:"hasCompany"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type updateUserResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsAdmin:    u.IsAdmin,
		HasCompany: u.HasCompany,
	}
}

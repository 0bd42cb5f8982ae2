package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	RegisterRequest struct {
		Name              string `json:"name" validate:"required"`
		Email             string `json:"email" validate:"required,email"`
		Password          string `json:"password" validate:"required,min=6"`
		Location          string `json:"location" validate:"omitempty"`
		DietaryPreference string `json:"dietary_preference" validate:"omitempty"`
		HouseholdSize     int    `json:"household_size" validate:"omitempty,min=1"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateProfileRequest struct {
		Name              *string `json:"name" validate:"omitempty,min=1"`
		Location          *string `json:"location" validate:"omitempty"`
		DietaryPreference *string `json:"dietary_preference" validate:"omitempty"`
		HouseholdSize     *int    `json:"household_size" validate:"omitempty,min=1"`
		Password          *string `json:"password" validate:"omitempty,min=6"`
	}

	// UserProfile never carries the password hash.
	UserProfile struct {
		ID                string    `json:"id"`
		Name              string    `json:"name"`
		Email             string    `json:"email"`
		Location          string    `json:"location"`
		DietaryPreference string    `json:"dietary_preference"`
		HouseholdSize     int       `json:"household_size"`
		CreatedAt         time.Time `json:"created_at"`
	}

	LoginResponse struct {
		Token string      `json:"token"`
		User  UserProfile `json:"user"`
	}
)

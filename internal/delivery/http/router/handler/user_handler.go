package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pokeradar/internal/delivery/http/response"
	"pokeradar/internal/domain/entity"
	"pokeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AccountUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type userResponse struct {
	ChatID       string    `json:"chat_id"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Username     string    `json:"username,omitempty"`
	RadiusMeters float64   `json:"radius_meters"`
	CreatedAt    time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ChatID:       user.ChatID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		RadiusMeters: user.RadiusMeters,
		CreatedAt:    user.CreatedAt,
	}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	user, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User registered successfully")
}

// GetUser handles the user lookup request.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.uc.Get(c.Request().Context(), c.Param("chat_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

type updatePositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UpdatePosition records a new position for the user.
func (h *UserHandler) UpdatePosition(c echo.Context) error {
	var req updatePositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdatePosition(c.Request().Context(), c.Param("chat_id"), req.Latitude, req.Longitude); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Position updated")
}

type setRadiusRequest struct {
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
}

// SetRadius changes the user's notification radius.
func (h *UserHandler) SetRadius(c echo.Context) error {
	var req setRadiusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid radius input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SetRadius(c.Request().Context(), c.Param("chat_id"), req.RadiusMeters); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Radius updated")
}

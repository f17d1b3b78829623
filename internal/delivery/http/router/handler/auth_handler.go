// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "sitd/internal/delivery/context"
	"sitd/internal/delivery/http/response"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/errors"
	"sitd/internal/usecase"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,max=50"`
}

// TokenRequest is the OAuth2 password grant body of POST /auth/token, accepted as form or JSON.
type TokenRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse is the OAuth2 token response. It is returned without the envelope.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthHandler serves registration, login and the current-user endpoints.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register creates an account and returns it without the hash.
func (h *AuthHandler) Register(c echo.Context) error {
	req := new(RegisterRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Token exchanges email and password for a bearer token.
func (h *AuthHandler) Token(c echo.Context) error {
	req := new(TokenRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
	})
}

// Me returns the authenticated caller.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("no authenticated identity")
	}

	return response.Success(c, http.StatusOK, newIdentityResponse(identity))
}

// AdminPing answers only callers that pass the admin role check.
func (h *AuthHandler) AdminPing(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"ok":  true,
		"msg": "pong from admin",
	})
}

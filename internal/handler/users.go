package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/lightbnb/internal/auth"
	"github.com/iliyamo/lightbnb/internal/config"
	"github.com/iliyamo/lightbnb/internal/logger"
	"github.com/iliyamo/lightbnb/internal/middleware"
	"github.com/iliyamo/lightbnb/internal/model"
	"github.com/iliyamo/lightbnb/internal/repository"
)

// UserHandler serves registration, login, logout and the current user.
type UserHandler struct {
	Users    UserStore
	Auth     config.AuthConfig
	Sessions auth.Revoker
}

func NewUserHandler(users UserStore, cfg config.AuthConfig, sessions auth.Revoker) *UserHandler {
	return &UserHandler{Users: users, Auth: cfg, Sessions: sessions}
}

type registerReq struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (r *registerReq) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
}

func (r *loginReq) normalize() { r.Email = normalizeEmail(r.Email) }

// Register creates an account and signs the new user in.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	hash, err := auth.HashPassword(req.Password, h.Auth.BcryptCost)
	if err != nil {
		return storageFailure(c, "hash password failed", err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.AddUser(ctx, model.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return storageFailure(c, "create user failed", err)
	}
	return h.signIn(c, http.StatusCreated, u)
}

// Login verifies the credentials and returns a fresh access token.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetUserWithEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return storageFailure(c, "load user failed", err)
	}
	if !auth.CheckPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	return h.signIn(c, http.StatusOK, u)
}

func (h *UserHandler) signIn(c echo.Context, status int, u model.User) error {
	ttl := time.Duration(h.Auth.AccessTTLMin) * time.Minute
	tok, err := auth.NewAccessToken(h.Auth.JWTSecret, u.ID, ttl)
	if err != nil {
		return storageFailure(c, "issue token failed", err)
	}
	logger.FromEcho(c).Info("user signed in", zap.Int64("user_id", u.ID))
	return c.JSON(status, authResp{User: u, Access: tokenPart{Token: tok.Token, Expires: tok.Exp}})
}

// Logout revokes the access token used for this request.
func (h *UserHandler) Logout(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
	}
	if err := h.Sessions.Revoke(c.Request().Context(), s.TokenID, s.Exp); err != nil {
		return storageFailure(c, "logout failed", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed in user.
func (h *UserHandler) Me(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not signed in"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetUserWithID(ctx, s.UserID)
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return storageFailure(c, "load user failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cedarhouse/restaurant-api/internal/api/metrics"
	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

type verifyResponse struct {
	User domain.PublicUser `json:"user"`
}

// Signup creates a new user account and returns a session token.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req, "All fields are required"); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.ResultFailure).Inc()
		return err
	}

	session, err := h.authService.SignUp(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.ResultFailure).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.ResultSuccess).Inc()
	return c.JSON(http.StatusCreated, sessionResponse{
		Message: "User created successfully",
		Token:   session.Token,
		User:    session.User,
	})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req, "Email and password required"); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.ResultFailure).Inc()
		return err
	}

	session, err := h.authService.LogIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		result := metrics.ResultFailure
		if errors.Is(err, domain.ErrTooManyAttempts) {
			result = metrics.ResultThrottled
			metrics.LoginThrottledTotal.Inc()
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", result).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.ResultSuccess).Inc()
	return c.JSON(http.StatusOK, sessionResponse{
		Message: "Login successful",
		Token:   session.Token,
		User:    session.User,
	})
}

// Verify returns the current state of the token's owner.
//
// @Summary      Verify token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  verifyResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verifyResponse{User: user})
}

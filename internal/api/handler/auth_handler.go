package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerpilot/advisor-api/internal/api/metrics"
	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Skills:      u.Skills,
		CareerGoals: u.CareerGoals,
	}
}

// Signup registers a new account and returns it with a bearer token.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		// Duplicate email is a 400 on this endpoint, matching the
		// original public contract.
		if err == domain.ErrDuplicateEmail {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{User: toUserResponse(user), Token: token})
}

// Login authenticates a user and returns a fresh bearer token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: toUserResponse(user), Token: token})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// ProfileHandler exposes the authenticated user's profile.
type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the authenticated user's profile, without the password hash.
//
// @Summary      Get profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileService.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update applies a partial profile update and returns the user with a newly
// issued token. Omitted fields keep their stored value; skills and career
// goals set to "" are cleared.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, token, err := h.profileService.Update(c.Request().Context(), userID, ports.UpdateProfileInput{
		Name:        req.Name,
		Skills:      req.Skills,
		CareerGoals: req.CareerGoals,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: toUserResponse(user), Token: token})
}

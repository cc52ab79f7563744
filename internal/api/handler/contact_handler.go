package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerpilot/advisor-api/internal/api/metrics"
	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// ContactHandler relays contact-form submissions.
type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Send relays a contact message to the configured recipient.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.contactService.Send(c.Request().Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		metrics.ContactMessagesTotal.WithLabelValues("failed").Inc()
		if errors.Is(err, domain.ErrMailNotConfigured) {
			return err
		}
		// The central handler would log this as unhandled; relay failures are
		// expected enough to deserve a friendlier message.
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message.")
	}

	metrics.ContactMessagesTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Message sent successfully!"})
}

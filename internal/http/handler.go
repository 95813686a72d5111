package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"plate-reminder-service/internal/config"
	"plate-reminder-service/internal/domain/reminder"
	"plate-reminder-service/internal/service"
)

type Handler struct {
	reminderService *service.ReminderService
	config          *config.Config
	log             zerolog.Logger
}

func NewHandler(
	reminderService *service.ReminderService,
	cfg *config.Config,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		reminderService: reminderService,
		config:          cfg,
		log:             log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/reminders", h.createReminder)
		api.GET("/districts", h.listDistricts)
	}
}

type createReminderRequest struct {
	Consent *bool  `json:"consent" binding:"required"`
	Plate   string `json:"plate" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Channel string `json:"channel" binding:"required"`
}

func (h *Handler) createReminder(c *gin.Context) {
	var payload createReminderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(reminder.KindInvalidInput, err.Error()))
		return
	}

	channel, err := reminder.ParseChannel(payload.Channel)
	if err != nil {
		h.writeError(c, err)
		return
	}

	result, err := h.reminderService.Register(reminder.Request{
		Consent: *payload.Consent,
		Plate:   payload.Plate,
		Contact: payload.Contact,
		Channel: channel,
	}, time.Now())
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.log.Info().
		Str("plate", result.Plate).
		Str("region", result.RegionCode).
		Str("channel", result.Channel).
		Msg("reminder registration accepted")

	c.JSON(http.StatusCreated, successResponse(result))
}

func (h *Handler) listDistricts(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(h.config.Districts))
}

// writeError maps error kinds onto status classes: consent denial is
// forbidden, an unknown district is unprocessable, other input faults are bad
// requests, anything untyped is a server error.
func (h *Handler) writeError(c *gin.Context, err error) {
	var rerr *reminder.Error
	if !errors.As(err, &rerr) {
		h.log.Error().Err(err).Msg("reminder registration failed")
		c.JSON(http.StatusInternalServerError, errorResponse("", "internal error"))
		return
	}

	status := http.StatusBadRequest
	switch rerr.Kind {
	case reminder.KindConsentDenied:
		status = http.StatusForbidden
	case reminder.KindUnknownDistrict:
		status = http.StatusUnprocessableEntity
	}

	h.log.Warn().
		Str("kind", string(rerr.Kind)).
		Str("detail", rerr.Detail).
		Msg("reminder registration rejected")

	c.JSON(status, errorResponse(rerr.Kind, rerr.Detail))
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(kind reminder.Kind, message string) gin.H {
	resp := gin.H{
		"error": message,
	}
	if kind != "" {
		resp["kind"] = string(kind)
	}
	return resp
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialstream/internal/auth"
	"socialstream/internal/config"
	"socialstream/internal/domain"
	"socialstream/internal/http/dto"
	"socialstream/internal/http/middleware"
	"socialstream/internal/http/resp"
	"socialstream/internal/queue"
	"socialstream/internal/service/comments"
	"socialstream/internal/service/notify"
	"socialstream/internal/service/social"
)

type Handler struct {
	cfg      *config.Config
	comments *comments.Service
	notify   *notify.Service
	social   *social.Service
	log      *zap.Logger
	pub      queue.Publisher
}

func NewHandler(cfg *config.Config, commentsSvc *comments.Service, notifySvc *notify.Service, socialSvc *social.Service, logger *zap.Logger, publisher queue.Publisher) *Handler {
	return &Handler{
		cfg:      cfg,
		comments: commentsSvc,
		notify:   notifySvc,
		social:   socialSvc,
		log:      logger,
		pub:      publisher,
	}
}

// caller aborts with 401 when the auth middleware did not run; routes are
// always mounted behind it, so the miss is a wiring bug.
func (h *Handler) caller(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.Identity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Code: resp.CodeUnauthorized, Message: "authentication required"})
		return auth.Identity{}, false
	}
	return identity, true
}

func (h *Handler) writeError(c *gin.Context, err error, message string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: resp.CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Code: resp.CodeForbidden, Message: err.Error()})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSelfFollow),
		errors.Is(err, domain.ErrInvalidNotificationType):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: err.Error()})
	default:
		h.log.Error(message, append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: message})
	}
}

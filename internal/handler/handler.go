package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/CreativeMB/Server/internal/logger"
	"github.com/CreativeMB/Server/internal/notify"
	"github.com/CreativeMB/Server/internal/user"

	"github.com/gin-gonic/gin"
)

// UserDeleter runs the cascading deletion workflow.
type UserDeleter interface {
	Run(ctx context.Context, target user.Target) user.Outcome
}

// OrderNotifier sends the new-order notification email.
type OrderNotifier interface {
	Notify(ctx context.Context, rawTitle string) notify.Outcome
}

type Handler struct {
	deleter  UserDeleter
	notifier OrderNotifier
}

func NewHandler(deleter UserDeleter, notifier OrderNotifier) *Handler {
	return &Handler{
		deleter:  deleter,
		notifier: notifier,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/correo", h.notifyOrder)
	r.POST("/eliminar-usuario", h.deleteUser)
}

type orderRequest struct {
	Titulo string `json:"titulo"`
}

func (h *Handler) notifyOrder(c *gin.Context) {

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Titulo) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"mensaje": "El campo 'titulo' es requerido en el cuerpo de la petición.",
		})
		return
	}

	result := h.notifier.Notify(c.Request.Context(), req.Titulo)

	if result.Status == "ok" {
		c.JSON(http.StatusOK, result)
		return
	}

	c.JSON(http.StatusInternalServerError, result)
}

type deleteRequest struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

func (h *Handler) deleteUser(c *gin.Context) {

	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"mensaje": "El campo 'uid' o 'email' del usuario es requerido.",
		})
		return
	}

	target := user.ByID(req.UID)
	if strings.TrimSpace(req.UID) == "" {
		target = user.ByEmail(req.Email)
	}

	logger.Info("deletion requested", map[string]any{
		"uid":   req.UID,
		"email": req.Email,
	})

	outcome := h.deleter.Run(c.Request.Context(), target)

	c.JSON(statusFor(outcome), outcome)
}

// statusFor maps workflow outcomes onto response codes; the workflow
// itself only classifies.
func statusFor(o user.Outcome) int {
	switch o.Kind {
	case user.KindInvalidInput:
		return http.StatusBadRequest
	case user.KindNotFound:
		return http.StatusNotFound
	case user.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

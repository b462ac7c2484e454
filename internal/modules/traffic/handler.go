package traffic

import (
	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler handles traffic logging and analytics HTTP requests.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the public visit endpoint and the admin analytics
// endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/traffic", h.logVisit)
	rg.GET("/admin/traffic/analytics", authMW, h.analytics)
}

// logVisit POST /traffic
//
// The insert runs off the request goroutine: a failed write must never
// fail the caller's page render.
func (h *Handler) logVisit(c *gin.Context) {
	var dto LogVisitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	go func() {
		if err := h.svc.Log(&dto); err != nil {
			h.logger.Warn("traffic log write failed", zap.Error(err))
		}
	}()
	response.Accepted(c)
}

// analytics GET /admin/traffic/analytics  [auth]
func (h *Handler) analytics(c *gin.Context) {
	report, err := h.svc.Analytics()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, report)
}

package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/pkg/response"
)

// Handler handles authentication HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, rateLimitMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/login", rateLimitMW, h.login)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.svc.Login(dto.Password)
	if err != nil {
		response.Unauthorized(c, "Invalid password")
		return
	}
	response.OK(c, loginResponse{Token: token})
}

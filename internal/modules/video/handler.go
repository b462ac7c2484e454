package video

import (
	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/pkg/response"
)

// Handler handles video HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts public and admin video routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/videos", h.publicList)

	admin := rg.Group("/admin/videos", authMW)
	admin.GET("", h.adminList)
	admin.GET("/:id", h.getByID)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// publicList GET /videos[?category=]
func (h *Handler) publicList(c *gin.Context) {
	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var err error
	var videos interface{}
	if lq.Category != "" {
		videos, err = h.svc.ListByCategory(lq.Category)
	} else {
		videos, err = h.svc.List()
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, videos)
}

// adminList GET /admin/videos  [auth]
func (h *Handler) adminList(c *gin.Context) {
	videos, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, videos)
}

// getByID GET /admin/videos/:id  [auth]
func (h *Handler) getByID(c *gin.Context) {
	video, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if video == nil {
		response.NotFound(c, "Video not found")
		return
	}
	response.OK(c, video)
}

// create POST /admin/videos  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateVideoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	if !validDuration(dto.Duration) {
		response.UnprocessableEntity(c, "duration must be MM:SS or HH:MM:SS")
		return
	}

	video, err := h.svc.Create(&dto)
	if err != nil {
		if err == ErrVideoURLExists {
			response.Conflict(c, "A video with this URL already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, video)
}

// update PUT /admin/videos/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateVideoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	if dto.Duration != nil && !validDuration(*dto.Duration) {
		response.UnprocessableEntity(c, "duration must be MM:SS or HH:MM:SS")
		return
	}

	video, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if err == ErrVideoURLExists {
			response.Conflict(c, "A video with this URL already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	if video == nil {
		response.NotFound(c, "Video not found")
		return
	}
	response.OK(c, video)
}

// delete DELETE /admin/videos/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	found, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Video not found")
		return
	}
	response.NoContent(c)
}

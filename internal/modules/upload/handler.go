package upload

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/pkg/response"
)

type imageUploadDTO struct {
	Slug      string `json:"slug"      binding:"required"`
	ImageType string `json:"imageType" binding:"required,oneof=thumbnail header"`
}

type videoCoverUploadDTO struct {
	VideoID string `json:"videoId" binding:"required"`
}

type uploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

// Handler issues presigned upload URLs to admins.
type Handler struct {
	gw *Gateway
}

func NewHandler(gw *Gateway) *Handler {
	return &Handler{gw: gw}
}

// RegisterRoutes mounts upload-URL routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/admin/uploads", authMW)
	g.POST("/image-url", h.imageUploadURL)
	g.POST("/video-cover-url", h.videoCoverUploadURL)
}

// imageUploadURL POST /admin/uploads/image-url  [auth]
func (h *Handler) imageUploadURL(c *gin.Context) {
	var dto imageUploadDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	// thumbnail -> public/thumbnails/{slug}.jpg, header -> public/headers/{slug}.jpg
	h.respond(c, fmt.Sprintf("public/%ss/%s.jpg", dto.ImageType, dto.Slug))
}

// videoCoverUploadURL POST /admin/uploads/video-cover-url  [auth]
func (h *Handler) videoCoverUploadURL(c *gin.Context) {
	var dto videoCoverUploadDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	h.respond(c, fmt.Sprintf("public/video-covers/%s.jpg", dto.VideoID))
}

func (h *Handler) respond(c *gin.Context, key string) {
	uploadURL, err := h.gw.PresignPut(c.Request.Context(), key, "image/jpeg")
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, uploadURLResponse{
		UploadURL: uploadURL,
		PublicURL: h.gw.PublicURL(key),
	})
}

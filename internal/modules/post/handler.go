package post

import (
	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/models"
	"github.com/harborview/realty-core/internal/pkg/markdown"
	"github.com/harborview/realty-core/internal/pkg/pagination"
	"github.com/harborview/realty-core/internal/pkg/response"
)

// Handler handles blog post HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts public and admin post routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	posts := rg.Group("/posts")
	posts.GET("", h.publicList)
	posts.GET("/featured", h.featured)
	posts.GET("/:slug", h.getBySlug)

	admin := rg.Group("/admin/posts", authMW)
	admin.GET("", h.adminList)
	admin.GET("/:id", h.getByID)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// publicList GET /posts
func (h *Handler) publicList(c *gin.Context) {
	q, err := pagination.FromContext(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, pag, err := h.svc.PublicList(q, lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if posts == nil {
		posts = []models.PostModel{}
	}
	c.JSON(200, gin.H{"posts": posts, "pagination": pag})
}

// featured GET /posts/featured
func (h *Handler) featured(c *gin.Context) {
	post, err := h.svc.Featured()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		// Empty store is not an error for the featured slot.
		response.OK(c, nil)
		return
	}
	response.OK(c, toDetail(post))
}

// getBySlug GET /posts/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "Post not found")
		return
	}
	response.OK(c, toDetail(post))
}

// adminList GET /admin/posts  [auth]
func (h *Handler) adminList(c *gin.Context) {
	posts, err := h.svc.AdminList()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, posts)
}

// getByID GET /admin/posts/:id  [auth]
func (h *Handler) getByID(c *gin.Context) {
	post, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "Post not found")
		return
	}
	response.OK(c, post)
}

// create POST /admin/posts  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	post, err := h.svc.Create(&dto)
	if err != nil {
		if err == ErrSlugExists {
			response.Conflict(c, "A post with this slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, post)
}

// update PUT /admin/posts/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if err == ErrSlugExists {
			response.Conflict(c, "A post with this slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "Post not found")
		return
	}
	response.OK(c, post)
}

// delete DELETE /admin/posts/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	found, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Post not found")
		return
	}
	response.NoContent(c)
}

func toDetail(p *models.PostModel) postDetail {
	return postDetail{
		PostModel:     *p,
		ContentHTML:   markdown.Render(p.Content),
		ContentZhHTML: markdown.Render(p.ContentZh),
	}
}

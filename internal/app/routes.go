package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harborview/realty-core/internal/middleware"
	"github.com/harborview/realty-core/internal/modules/auth"
	"github.com/harborview/realty-core/internal/modules/contact"
	"github.com/harborview/realty-core/internal/modules/post"
	"github.com/harborview/realty-core/internal/modules/traffic"
	"github.com/harborview/realty-core/internal/modules/upload"
	"github.com/harborview/realty-core/internal/modules/video"
	"github.com/harborview/realty-core/internal/pkg/mail"
	pkgredis "github.com/harborview/realty-core/internal/pkg/redis"
	"github.com/harborview/realty-core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db

	authMW := middleware.Auth()
	var rateLimitMW gin.HandlerFunc
	if rc != nil {
		rateLimitMW = middleware.RateLimit(rc.Raw())
	} else {
		rateLimitMW = middleware.RateLimit(nil)
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api/v1")
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})

	// Auth
	auth.NewHandler(auth.NewService(a.cfg)).RegisterRoutes(api, rateLimitMW)

	// Content
	post.NewHandler(post.NewService(db)).RegisterRoutes(api, authMW)
	video.NewHandler(video.NewService(db)).RegisterRoutes(api, authMW)

	// Presigned uploads
	upload.NewHandler(upload.NewGateway(a.cfg.S3)).RegisterRoutes(api, authMW)

	// Traffic logging and analytics
	traffic.NewHandler(traffic.NewService(db), a.logger).RegisterRoutes(api, authMW)

	// Contact intake
	sender := mail.New(a.cfg.Mail)
	contactSvc := contact.NewService(sender, a.cfg.Mail.ContactTo, a.logger)
	contact.NewHandler(contactSvc).RegisterRoutes(api, rateLimitMW)
}

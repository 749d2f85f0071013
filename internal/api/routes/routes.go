package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atelier-works/portfolio-api/internal/api/handlers"
	"github.com/atelier-works/portfolio-api/internal/api/middleware"
	"github.com/atelier-works/portfolio-api/internal/auth"
	"github.com/atelier-works/portfolio-api/internal/crypto"
)

// Deps bundles everything the route table needs. Handlers are constructed by
// the caller; this package only decides which middleware guards which path.
type Deps struct {
	Issuer    *auth.Issuer
	Decryptor *crypto.TransportDecryptor
	Log       *logrus.Logger

	Media      *handlers.MediaHandler
	Contact    *handlers.ContactHandler
	Career     *handlers.CareerHandler
	Work       *handlers.WorkHandler
	WorkDetail *handlers.WorkDetailHandler
	Instagram  *handlers.InstagramHandler
	Token      *handlers.TokenHandler // nil unless token minting is enabled
}

func Register(r *gin.Engine, d Deps) {
	readAuth := middleware.RequireReadAccess(d.Issuer)
	writeAuth := middleware.RequireWriteAccess(d.Issuer)
	decrypt := middleware.TransportDecrypt(d.Decryptor, d.Log)

	api := r.Group("/api/v1")

	if d.Token != nil {
		api.POST("/token", d.Token.Mint)
	}

	contact := api.Group("/contact-us")
	{
		contact.POST("", decrypt, d.Contact.Create)
		contact.GET("", readAuth, d.Contact.List)
		contact.GET("/:contactId", readAuth, d.Contact.Get)
	}

	// Career submissions carry resumes and personal details, so every route
	// including reads sits behind the write capability.
	career := api.Group("/career")
	{
		career.POST("", writeAuth, decrypt, d.Career.Create)
		career.GET("", writeAuth, d.Career.List)
		career.GET("/:careerId", writeAuth, d.Career.Get)
		career.PUT("/:careerId", writeAuth, decrypt, d.Career.Update)
		career.DELETE("/:careerId", writeAuth, d.Career.Delete)
	}

	media := api.Group("/media")
	{
		media.POST("/upload", writeAuth, d.Media.Upload)
		media.GET("", readAuth, d.Media.List)
		media.GET("/:mediaId", readAuth, d.Media.Get)
		media.DELETE("/:mediaId", writeAuth, d.Media.Delete)
		media.POST("/bulk-delete", writeAuth, d.Media.BulkDelete)
	}

	work := api.Group("/work-data")
	{
		work.POST("", writeAuth, d.Work.Create)
		work.GET("", readAuth, d.Work.List)
		work.GET("/:workId", readAuth, d.Work.Get)
		work.GET("/slug/:slug", readAuth, d.Work.GetBySlug)
		work.PUT("/:workId", writeAuth, d.Work.Update)
		work.DELETE("/:workId", writeAuth, d.Work.Delete)
	}

	detail := api.Group("/work-detail-data")
	{
		detail.POST("", writeAuth, d.WorkDetail.Create)
		detail.GET("", readAuth, d.WorkDetail.List)
		detail.GET("/:workDetailId", readAuth, d.WorkDetail.Get)
		detail.PUT("/:workDetailId", writeAuth, d.WorkDetail.Update)
		detail.DELETE("/:workDetailId", writeAuth, d.WorkDetail.Delete)
	}

	instagram := api.Group("/instagram")
	{
		instagram.POST("", writeAuth, d.Instagram.Create)
		instagram.GET("", readAuth, d.Instagram.List)
		instagram.GET("/:postId", readAuth, d.Instagram.Get)
		instagram.PUT("/:postId", writeAuth, d.Instagram.Update)
		instagram.DELETE("/:postId", writeAuth, d.Instagram.Delete)
	}
}

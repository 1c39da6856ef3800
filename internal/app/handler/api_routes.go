package handler

import (
	"net/http"

	"etatcivil/internal/app/middleware"
	"etatcivil/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes déclare les routes HTTP et leurs contraintes de rôle
func (h *APIHandler) RegisterAPIRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.RegisterUser)
			authGroup.POST("/login", h.LoginUser)
			authGroup.POST("/logout", auth.WithAuthCheck(), h.LogoutUser)
			authGroup.GET("/profile", auth.WithAuthCheck(), h.GetUserProfile)
			authGroup.PUT("/profile", auth.WithAuthCheck(), h.UpdateUserProfile)
		}

		// Catalogue consultable sans compte, administrable par l'admin
		docTypes := api.Group("/document-types")
		{
			docTypes.GET("", h.GetDocumentTypes)
			docTypes.GET("/:id", h.GetDocumentType)
			docTypes.POST("", auth.WithAuthCheck(role.Admin), h.CreateDocumentType)
			docTypes.PUT("/:id", auth.WithAuthCheck(role.Admin), h.UpdateDocumentType)
			docTypes.DELETE("/:id", auth.WithAuthCheck(role.Admin), h.DeleteDocumentType)
		}

		requests := api.Group("/requests")
		{
			requests.POST("", auth.WithAuthCheck(role.Citizen, role.Admin), h.CreateRequest)
			requests.GET("", auth.WithAuthCheck(), h.GetRequests)
			requests.GET("/:id", auth.WithAuthCheck(), h.GetRequest)

			// Instruction des dossiers: agents et administrateurs
			requests.PUT("/:id/review", auth.WithAuthCheck(role.Agent, role.Admin), h.StartReview)
			requests.PUT("/:id/approve", auth.WithAuthCheck(role.Agent, role.Admin), h.ApproveRequest)
			requests.PUT("/:id/reject", auth.WithAuthCheck(role.Agent, role.Admin), h.RejectRequest)
			requests.POST("/:id/notes", auth.WithAuthCheck(), h.AddNote)

			requests.POST("/:id/payment", auth.WithAuthCheck(role.Citizen, role.Admin), h.InitializePayment)
			// Callback prestataire: pas de JWT, clé statique X-Payment-Key
			requests.PUT("/:id/payment/confirm", h.ConfirmPayment)

			requests.POST("/:id/document", auth.WithAuthCheck(role.Agent, role.Admin), h.GenerateDocument)
			requests.GET("/:id/document", auth.WithAuthCheck(), h.DownloadDocument)
		}
	}
}

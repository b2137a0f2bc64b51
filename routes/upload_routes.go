package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/where-app/api-go/controllers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := r.Group("/upload")
	{
		// Single file upload URL generation
		upload.POST("/presigned-url", uploadController.GetPresignedURL)

		// Confirm upload completion
		upload.POST("/confirm", uploadController.ConfirmUpload)
	}
}

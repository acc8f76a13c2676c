package router

import (
	"github.com/gin-gonic/gin"

	"szerzodes-gpt/api/handler"
	"szerzodes-gpt/api/response"
)

func RegisterRoutes(r *gin.Engine, generationH *handler.GenerationHandler, contractH *handler.ContractHandler, ragH *handler.RAGHandler) {
	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			response.Success(c, gin.H{"status": "ok"})
		})

		contracts := api.Group("/contracts")
		{
			contracts.POST("/generate-from-template", generationH.GenerateFromTemplate)
			contracts.POST("/generate", generationH.Generate)
			contracts.POST("/review", generationH.Review)
			contracts.POST("/apply-suggestions", generationH.ApplySuggestions)
			contracts.POST("/improve", generationH.Improve)

			contracts.POST("/extract-text", contractH.ExtractText)
			contracts.POST("/export", contractH.Export)

			contracts.POST("", contractH.Create)
			contracts.GET("", contractH.List)
			contracts.POST("/search", contractH.Search)
			contracts.GET("/:id", contractH.Get)
			contracts.DELETE("/:id", contractH.Delete)
		}

		rag := api.Group("/rag")
		{
			rag.POST("/search", ragH.Search)
		}
	}
}

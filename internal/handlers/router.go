package handlers

import "github.com/gin-gonic/gin"

// NewRouter wires the four operations the presentation layer calls.
func NewRouter(sessionHandler *SessionHandler, betHandler *BetHandler) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := router.Group("/api")
	{
		api.POST("/session", sessionHandler.Open)
		api.POST("/session/delete", sessionHandler.Close)
		api.POST("/bet", betHandler.Resolve)
		api.POST("/cashout", betHandler.Cashout)
	}

	return router
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewPublicHandler serves the unauthenticated sanity-check endpoint the
// front end pings before login.
func NewPublicHandler(public *gin.RouterGroup) {
	public.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"1": "Never gonna give you up, never gonna let you down.",
			"2": "Never gonna run around and desert you.",
			"3": "Never gonna make you cry, never gonna say goodbye.",
			"4": "Never gonna tell a lie and hurt you.",
		})
	})
}

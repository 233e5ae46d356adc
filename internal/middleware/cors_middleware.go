package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORSMiddleware adapts the rs/cors handler to gin. Preflight requests are
// answered and aborted here; everything else only picks up the response
// headers and continues down the chain.
func CORSMiddleware(allowOrigin string) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{allowOrigin},
		AllowedMethods: []string{http.MethodHead, http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		// Credentialed CORS cannot be combined with a wildcard origin.
		AllowCredentials: allowOrigin != "*",
	})
	return func(gc *gin.Context) {
		c.HandlerFunc(gc.Writer, gc.Request)
		if !gc.IsAborted() && gc.Writer.Written() {
			gc.AbortWithStatus(gc.Writer.Status())
		}
	}
}

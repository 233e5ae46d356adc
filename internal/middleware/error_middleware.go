package middleware

import (
	"net/http"

	"auth-service/internal/transport/httpdto"
	"auth-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := l
		if log == nil {
			log = logger.GetGlobalLogger()
		}
		if log != nil {
			log.WithContext(c.Request.Context()).Errorf("request error: %s", err.Error())
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, httpdto.NewInternalErrorResponse(err.Error()))
		}
	}
}

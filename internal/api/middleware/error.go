package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"microgrid-twin/internal/api/models"
)

// ErrorHandler recovers from handler panics and turns them into the
// standard error envelope so clients never see a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		case fmt.Stringer:
			msg = v.String()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery converts panics into 500 responses. The panic value is also
// surfaced through the request context so RequestLogger picks it up.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				c.Set("error", fmt.Sprintf("panic: %v", rec))
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
					logger.Any("panic", rec),
					logger.String("request_id", c.GetString("request_id")),
					logger.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ginext.H{"message": "internal server error"},
				)
			}
		}()

		c.Next()
	}
}

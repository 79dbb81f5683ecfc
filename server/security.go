package server

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// securityMiddleware adds the standard hardening headers to every response.
func securityMiddleware() gin.HandlerFunc {
	sec := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})
	return func(c *gin.Context) {
		// Process writes the response itself when it rejects a request.
		if err := sec.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"talentdesk/pkg/utils"
)

const KeyRequestID = "X-Request-ID"

// RequestID honors an inbound X-Request-ID and mints one otherwise, in the
// same 32-hex shape as entity IDs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" {
			rid = utils.NewID()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}

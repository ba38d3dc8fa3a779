package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const REQUEST_ID_HEADER = "X-Request-ID"

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	ctx.Header("X-XSS-Protection", "1; mode=block")
	ctx.Next()
}

// RequestID propagates the caller's request id or assigns a new one.
func RequestID(ctx *gin.Context) {
	rid := ctx.GetHeader(REQUEST_ID_HEADER)
	if _, err := uuid.Parse(rid); err != nil {
		rid = uuid.NewString()
	}
	ctx.Set("request_id", rid)
	ctx.Header(REQUEST_ID_HEADER, rid)
	ctx.Next()
}

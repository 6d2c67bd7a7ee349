package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vayras/ta-backend/pkg/response"
)

// BodyLimit 请求体大小限制中间件
// 声明了 Content-Length 且超限的请求直接返回 413；
// 未声明长度的请求由 MaxBytesReader 截断，解码失败后由 Handler 返回 400
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}

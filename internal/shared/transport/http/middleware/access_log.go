package middleware

import (
	"net/http"

	"CastleRealm/internal/shared/transport"
	"CastleRealm/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

// AccessLog 统一写 HTTP 访问日志。websocket 升级成功的请求不在这里记，
// 连接内的每条消息由 ws 路由单独记录。
func AccessLog(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		action := c.Request.Method + " " + route

		ctx := transport.NewContextWithParent(c.Request.Context(), action)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		switch {
		case status == http.StatusSwitchingProtocols:
			return
		case status >= http.StatusInternalServerError:
			transport.SetBizCode(ctx, transport.BizCode(transport.SystemError))
		case status >= http.StatusBadRequest:
			transport.SetBizCode(ctx, transport.BizCode(transport.InvalidParam))
		default:
			transport.SetBizCode(ctx, transport.BizCode(transport.OK))
		}

		transport.WriteAccessLog(ctx, log)
	}
}

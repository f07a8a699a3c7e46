package ws

import (
	"net/http"

	"CastleRealm/modules/kit/logx"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Server 负责把 HTTP 请求升级成 websocket 连接并挂上路由。
type Server struct {
	router   *Router
	log      logx.Logger
	cmdRate  rate.Limit
	cmdBurst int
}

func NewServer(r *Router, l logx.Logger, cmdRate float64, cmdBurst int) *Server {
	if cmdRate <= 0 {
		cmdRate = 30
	}
	if cmdBurst <= 0 {
		cmdBurst = 60
	}
	return &Server{
		router:   r,
		log:      l,
		cmdRate:  rate.Limit(cmdRate),
		cmdBurst: cmdBurst,
	}
}

func (s *Server) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	upgrader := websocket.Upgrader{
		// 允许所有CORS跨域请求
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	wsConn, err := upgrader.Upgrade(resp, req, nil)
	if err != nil {
		s.log.Error("websocket upgrade error", zap.Error(err))
		return
	}

	s.log.Info("websocket upgrade success", zap.String("addr", wsConn.RemoteAddr().String()))

	conn := NewConn(wsConn, s.router, rate.NewLimiter(s.cmdRate, s.cmdBurst), s.log)
	conn.Run()
}

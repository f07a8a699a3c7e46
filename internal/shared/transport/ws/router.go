package ws

import (
	"context"

	"CastleRealm/internal/shared/logs"
	"CastleRealm/internal/shared/transport"
	"CastleRealm/modules/kit/logx"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, req *Request)

// Router 按事件名分发入站消息。未注册的事件记日志后丢弃，不回错误。
type Router struct {
	handlers map[string]HandlerFunc
	log      logx.Logger
}

func NewRouter(l logx.Logger) *Router {
	if l == nil {
		l = logx.NewZapLogger(logs.Logger())
	}
	return &Router{
		handlers: make(map[string]HandlerFunc),
		log:      l,
	}
}

func (r *Router) Handle(event string, h HandlerFunc) {
	r.handlers[event] = h
}

func (r *Router) Dispatch(req *Request) {
	if req == nil || req.Event == "" {
		return
	}

	ctx := transport.NewContext("WS " + req.Event)
	defer r.writeAccessLog(ctx)

	h, ok := r.handlers[req.Event]
	if !ok {
		r.log.Info("ws unknown event dropped", zap.String("event", req.Event))
		transport.SetBizCode(ctx, transport.BizCode(transport.Ignored))
		transport.SetErrorReason(ctx, "UNKNOWN_EVENT")
		return
	}

	h(ctx, req)
}

func (r *Router) writeAccessLog(ctx context.Context) {
	transport.WriteAccessLog(ctx, r.log)
}

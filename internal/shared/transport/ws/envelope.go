package ws

// 入站信封：{event, payload}；出站信封：{event, data}。
// 协议是事件驱动的：命令不单独应答，调用方从后续的单播/广播事件推断结果。

type Inbound struct {
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload"`
}

type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Request 是路由分发给 handler 的入站消息。
type Request struct {
	Event   string
	Payload map[string]any
	Conn    WSConn
}

// WSConn 是一条客户端连接的抽象，session/广播层只依赖它。
type WSConn interface {
	SetProperty(key string, value any)
	GetProperty(key string) any
	RemoveProperty(key string)
	Addr() string
	Push(event string, data any)
	Close()
	// Done 用于感知连接生命周期结束（连接关闭时该 channel 会被关闭）
	Done() <-chan struct{}
}

const (
	// ConnKeyPlayerID 绑定在连接上的玩家身份，由 join 事件写入，连接存续期内不变。
	ConnKeyPlayerID = "playerId"
)

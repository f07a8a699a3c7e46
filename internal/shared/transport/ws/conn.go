package ws

import (
	"encoding/json"
	"fmt"
	"sync"

	"CastleRealm/modules/kit/logx"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const outChanSize = 256

// Conn 包装一条 websocket 连接：独立的读/写 goroutine，出站走缓冲 channel。
// 发送是 fire-and-forget：慢消费者丢消息，绝不阻塞发送方。
type Conn struct {
	conn    *websocket.Conn
	router  *Router
	outChan chan *Outbound
	limiter *rate.Limiter
	log     logx.Logger

	sync.RWMutex
	property map[string]any

	done      chan struct{}
	closeOnce sync.Once
}

func NewConn(wsConn *websocket.Conn, router *Router, limiter *rate.Limiter, l logx.Logger) *Conn {
	return &Conn{
		conn:     wsConn,
		router:   router,
		outChan:  make(chan *Outbound, outChanSize),
		limiter:  limiter,
		property: make(map[string]any),
		done:     make(chan struct{}),
		log:      l,
	}
}

func (c *Conn) SetProperty(key string, value any) {
	c.Lock()
	defer c.Unlock()
	c.property[key] = value
}

func (c *Conn) GetProperty(key string) any {
	c.RLock()
	defer c.RUnlock()
	return c.property[key]
}

func (c *Conn) RemoveProperty(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.property, key)
}

func (c *Conn) Addr() string {
	return c.conn.RemoteAddr().String()
}

// Push 投递出站事件。出站队列满时丢弃并告警，不阻塞调用方。
func (c *Conn) Push(event string, data any) {
	msg := &Outbound{Event: event, Data: data}
	select {
	case c.outChan <- msg:
	case <-c.done:
	default:
		c.log.Warn("ws out chan full, drop message",
			zap.String("event", event), zap.String("addr", c.Addr()))
	}
}

func (c *Conn) Run() {
	go c.readLoop()
	go c.writeLoop()
}

func (c *Conn) readLoop() {
	defer func() {
		if err := recover(); err != nil {
			c.log.Error("ws read loop panic", zap.String("err", fmt.Sprintf("%v", err)))
		}
		c.Close()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.log.Info("ws read closed", zap.Error(err))
			return
		}

		if c.limiter != nil && !c.limiter.Allow() {
			c.log.Warn("ws command rate limited, drop", zap.String("addr", c.Addr()))
			continue
		}

		// 解码失败只丢这一条消息，连接保持打开。
		in := Inbound{}
		if err := json.Unmarshal(data, &in); err != nil {
			c.log.Warn("ws malformed envelope dropped", zap.Error(err))
			continue
		}

		c.router.Dispatch(&Request{Event: in.Event, Payload: in.Payload, Conn: c})
	}
}

func (c *Conn) writeLoop() {
	for {
		select {
		case msg, ok := <-c.outChan:
			if !ok {
				return
			}
			c.write(msg)
		case <-c.done:
			return
		}
	}
}

func (c *Conn) write(msg *Outbound) {
	raw, err := json.Marshal(msg)
	if err != nil {
		c.log.Error("ws marshal outbound error", zap.Error(err), zap.String("event", msg.Event))
		return
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		c.log.Error("ws write error", zap.Error(err))
	}
}

func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		_ = c.conn.Close()
		close(c.done)
	})
}

func (c *Conn) Done() <-chan struct{} {
	return c.done
}

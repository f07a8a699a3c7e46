// Package tracex 在 context 里携带 trace_id / span_id，日志适配层取用。
// 网关对每条入站命令各起一个 trace，span 区分命令内的处理段。
package tracex

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type ctxKey int

const (
	keyTraceID ctxKey = iota
	keySpanID
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, keyTraceID, traceID)
}

func TraceIDFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(keyTraceID).(string)
	return s, ok && s != ""
}

func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, keySpanID, spanID)
}

func SpanIDFrom(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(keySpanID).(string)
	return s, ok && s != ""
}

// NewTraceID 生成 16 字节随机 trace_id（hex）。
func NewTraceID() string { return randHex(16) }

// NewSpanID 生成 8 字节随机 span_id（hex）。
func NewSpanID() string { return randHex(8) }

func randHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}

// Package broadcast 把游戏事件扇出到在线连接。
// 推送是尽力而为：慢连接丢帧，不阻塞世界推进。
package broadcast

import (
	"CastleRealm/internal/shared/session"
	"CastleRealm/internal/shared/transport/ws"
	"CastleRealm/modules/kit/logx"
)

type Broadcaster struct {
	sessions session.Manager
	log      logx.Logger
}

func New(sessions session.Manager, log logx.Logger) *Broadcaster {
	return &Broadcaster{sessions: sessions, log: log}
}

// Broadcast 推给所有已绑定玩家，可排除若干 playerID（通常是事件发起者）。
func (b *Broadcaster) Broadcast(event string, data any, excludePlayerID ...string) {
	excluded := make(map[string]struct{}, len(excludePlayerID))
	for _, id := range excludePlayerID {
		excluded[id] = struct{}{}
	}
	b.sessions.Range(func(playerID string, conn ws.WSConn) bool {
		if _, skip := excluded[playerID]; !skip {
			conn.Push(event, data)
		}
		return true
	})
}

// SendToPlayer 单播；玩家未绑定连接时静默丢弃。
func (b *Broadcaster) SendToPlayer(playerID, event string, data any) {
	conn, ok := b.sessions.GetConn(playerID)
	if !ok {
		return
	}
	conn.Push(event, data)
}

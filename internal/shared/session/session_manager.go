package session

import (
	"sync"

	"CastleRealm/internal/shared/transport/ws"
)

// Manager 维护 玩家ID <-> 连接 的一对一绑定。
type Manager interface {
	Bind(playerID string, conn ws.WSConn)
	UnbindConn(conn ws.WSConn)
	UnbindPlayer(playerID string)
	GetConn(playerID string) (ws.WSConn, bool)
	GetPlayerID(conn ws.WSConn) (string, bool)
	Range(fn func(playerID string, conn ws.WSConn) bool)
}

type SessMgr struct {
	sync.RWMutex
	player2conn map[string]ws.WSConn
	conn2player map[ws.WSConn]string
	watched     map[ws.WSConn]struct{}
}

func NewSessMgr() Manager {
	return &SessMgr{
		player2conn: make(map[string]ws.WSConn),
		conn2player: make(map[ws.WSConn]string),
		watched:     make(map[ws.WSConn]struct{}),
	}
}

func (s *SessMgr) Bind(playerID string, conn ws.WSConn) {
	if conn == nil || playerID == "" {
		return
	}
	s.Lock()
	defer s.Unlock()

	// 每条连接只起一次 watcher：连接关闭后自动解绑，避免 conn2player 膨胀
	if _, ok := s.watched[conn]; !ok {
		s.watched[conn] = struct{}{}
		go s.watchConnDone(conn)
	}

	oldConn := s.player2conn[playerID]
	// 同一玩家重复绑定时踢掉旧连接
	if oldConn != nil && oldConn != conn {
		oldConn.Close()
	}
	s.player2conn[playerID] = conn
	s.conn2player[conn] = playerID
}

func (s *SessMgr) watchConnDone(conn ws.WSConn) {
	<-conn.Done()
	s.UnbindConn(conn)
}

func (s *SessMgr) UnbindConn(conn ws.WSConn) {
	s.Lock()
	defer s.Unlock()
	playerID := s.conn2player[conn]
	delete(s.watched, conn)
	delete(s.conn2player, conn)
	if s.player2conn[playerID] == conn {
		delete(s.player2conn, playerID)
	}
}

func (s *SessMgr) UnbindPlayer(playerID string) {
	s.Lock()
	defer s.Unlock()
	conn, ok := s.player2conn[playerID]
	if ok {
		delete(s.watched, conn)
		delete(s.conn2player, conn)
	}
	delete(s.player2conn, playerID)
}

func (s *SessMgr) GetConn(playerID string) (ws.WSConn, bool) {
	s.RLock()
	defer s.RUnlock()
	conn, ok := s.player2conn[playerID]
	return conn, ok
}

func (s *SessMgr) GetPlayerID(conn ws.WSConn) (string, bool) {
	s.RLock()
	defer s.RUnlock()
	playerID, ok := s.conn2player[conn]
	return playerID, ok
}

// Range 遍历当前绑定的连接快照；fn 返回 false 停止遍历。
// 遍历基于快照，fn 内允许再调用本管理器的方法。
func (s *SessMgr) Range(fn func(playerID string, conn ws.WSConn) bool) {
	s.RLock()
	snapshot := make(map[string]ws.WSConn, len(s.player2conn))
	for id, conn := range s.player2conn {
		snapshot[id] = conn
	}
	s.RUnlock()

	for id, conn := range snapshot {
		if !fn(id, conn) {
			return
		}
	}
}

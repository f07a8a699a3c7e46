// Package alliance 在存储之上提供联盟的创建与加入校验。
package alliance

import (
	"unicode/utf8"

	"CastleRealm/internal/game/entity"
	"CastleRealm/internal/game/store"
	"CastleRealm/internal/shared/utils"
	"CastleRealm/modules/kit/logx"
)

const (
	tagMinLen = 3
	tagMaxLen = 5
)

type Registry struct {
	store *store.Store
	log   logx.Logger
}

func NewRegistry(s *store.Store, log logx.Logger) *Registry {
	return &Registry{store: s, log: log}
}

// Create 建盟：tag 长度 3..5 个字符，创建者不得已有联盟。
// 校验失败返回 nil 且不产生任何状态变化。
func (r *Registry) Create(name, tag, leaderID string) *entity.Alliance {
	if name == "" || !validTag(tag) {
		return nil
	}
	a, ok := r.store.CreateAlliance(utils.NextIDString(), name, tag, leaderID)
	if !ok {
		return nil
	}
	return a
}

// Join 入盟。联盟不存在、玩家不存在或已有联盟时返回 false。
func (r *Registry) Join(playerID, allianceID string) (*entity.Alliance, bool) {
	return r.store.JoinAlliance(playerID, allianceID)
}

func validTag(tag string) bool {
	n := utf8.RuneCountInString(tag)
	return n >= tagMinLen && n <= tagMaxLen
}

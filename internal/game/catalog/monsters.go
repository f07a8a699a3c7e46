package catalog

import "CastleRealm/internal/game/entity"

// MonsterInfo 是野怪的基础参数，血量与奖励按等级线性放大。
type MonsterInfo struct {
	Name        string
	BaseHealth  int64
	BaseDamage  int64
	BaseRewards entity.Resources
}

var monsters = map[entity.MonsterType]MonsterInfo{
	entity.MonsterCentaur: {
		Name:        "Centaur",
		BaseHealth:  5000,
		BaseDamage:  150,
		BaseRewards: entity.Resources{Food: 500, Wood: 500, Stone: 300, Iron: 200, Gold: 5},
	},
	entity.MonsterGriffin: {
		Name:        "Griffin",
		BaseHealth:  8000,
		BaseDamage:  250,
		BaseRewards: entity.Resources{Food: 800, Wood: 800, Stone: 500, Iron: 350, Gold: 10},
	},
	entity.MonsterYeti: {
		Name:        "Yeti",
		BaseHealth:  12000,
		BaseDamage:  400,
		BaseRewards: entity.Resources{Food: 1200, Wood: 1200, Stone: 800, Iron: 600, Gold: 15},
	},
}

func GetMonster(t entity.MonsterType) (MonsterInfo, bool) {
	m, ok := monsters[t]
	return m, ok
}

func MonsterTypes() []entity.MonsterType {
	return []entity.MonsterType{entity.MonsterCentaur, entity.MonsterGriffin, entity.MonsterYeti}
}

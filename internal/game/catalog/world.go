package catalog

import "CastleRealm/internal/game/entity"

// 世界与成长相关的全局常量。
const (
	WorldWidth  = 500
	WorldHeight = 500

	MaxCastleLevel = 30

	// 兵种克制时的战力修正，只作为目录数据提供。
	CombatBonusModifier   = 1.5
	CombatPenaltyModifier = 0.7

	// 资源点容量 = PlotCapacityPerLevel × 等级。
	PlotCapacityPerLevel = 10000
	PlotMaxLevel         = 5

	MonsterMaxLevel = 10

	InitialPower = 100
)

// InitialResources 是新玩家的初始库存。
func InitialResources() entity.Resources {
	return entity.Resources{Food: 2000, Wood: 2000, Stone: 1000, Iron: 500, Gold: 100}
}

// castleTierRequirements: 兵种阶 -> 所需城堡等级。
var castleTierRequirements = map[int]int{
	1: 1, 2: 4, 3: 7, 4: 10, 5: 13,
	6: 16, 7: 19, 8: 22, 9: 26, 10: 30,
}

// RequiredCastleLevel 返回训练某阶兵种所需的城堡等级。
func RequiredCastleLevel(tier int) (int, bool) {
	lv, ok := castleTierRequirements[tier]
	return lv, ok
}

package catalog

import (
	"math"

	"CastleRealm/internal/game/entity"
)

// AddResources 逐项相加。
func AddResources(a, b entity.Resources) entity.Resources {
	return entity.Resources{
		Food:  a.Food + b.Food,
		Wood:  a.Wood + b.Wood,
		Stone: a.Stone + b.Stone,
		Iron:  a.Iron + b.Iron,
		Gold:  a.Gold + b.Gold,
	}
}

// SubtractResources 逐项相减并在 0 处截断，库存不会为负。
func SubtractResources(from, cost entity.Resources) entity.Resources {
	return entity.Resources{
		Food:  clampZero(from.Food - cost.Food),
		Wood:  clampZero(from.Wood - cost.Wood),
		Stone: clampZero(from.Stone - cost.Stone),
		Iron:  clampZero(from.Iron - cost.Iron),
		Gold:  clampZero(from.Gold - cost.Gold),
	}
}

func clampZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// MultiplyResources 逐项乘以系数后向下取整。
func MultiplyResources(r entity.Resources, multiplier float64) entity.Resources {
	return entity.Resources{
		Food:  int64(math.Floor(float64(r.Food) * multiplier)),
		Wood:  int64(math.Floor(float64(r.Wood) * multiplier)),
		Stone: int64(math.Floor(float64(r.Stone) * multiplier)),
		Iron:  int64(math.Floor(float64(r.Iron) * multiplier)),
		Gold:  int64(math.Floor(float64(r.Gold) * multiplier)),
	}
}

// CanAfford 要求五项资源全部足够。
func CanAfford(cost, available entity.Resources) bool {
	return available.Food >= cost.Food &&
		available.Wood >= cost.Wood &&
		available.Stone >= cost.Stone &&
		available.Iron >= cost.Iron &&
		available.Gold >= cost.Gold
}

// UpgradeCost 返回从 currentLevel 升到下一级的开销：基础开销 × 1.5^currentLevel。
func UpgradeCost(t entity.BuildingType, currentLevel int) (entity.Resources, bool) {
	info, ok := GetBuilding(t)
	if !ok {
		return entity.Resources{}, false
	}
	return MultiplyResources(info.BaseUpgradeCost, math.Pow(1.5, float64(currentLevel))), true
}

// UpgradeTime 返回升级耗时（秒）：基础耗时 × 1.3^currentLevel，向下取整。
func UpgradeTime(t entity.BuildingType, currentLevel int) (int64, bool) {
	info, ok := GetBuilding(t)
	if !ok {
		return 0, false
	}
	return int64(math.Floor(float64(info.BaseUpgradeTime) * math.Pow(1.3, float64(currentLevel)))), true
}

// PlayerPower 重算玩家战力：基础 100 + 每建筑等级 10 + Σ(兵阶 × 数量)。
func PlayerPower(p *entity.Player) int64 {
	power := int64(InitialPower)
	for _, b := range p.Buildings {
		power += int64(b.Level) * 10
	}
	for _, u := range p.Troops {
		power += int64(u.Tier) * u.Count
	}
	return power
}

// TrainingCost 返回训练 count 个兵的总开销。
func TrainingCost(t entity.TroopType, tier int, count int64) (entity.Resources, bool) {
	info, ok := GetTroop(t, tier)
	if !ok {
		return entity.Resources{}, false
	}
	c := info.TrainingCost
	return entity.Resources{
		Food:  c.Food * count,
		Wood:  c.Wood * count,
		Stone: c.Stone * count,
		Iron:  c.Iron * count,
		Gold:  c.Gold * count,
	}, true
}

// TrainingTime 返回训练 count 个兵的总耗时（秒）。
func TrainingTime(t entity.TroopType, tier int, count int64) (int64, bool) {
	info, ok := GetTroop(t, tier)
	if !ok {
		return 0, false
	}
	return info.TrainingTime * count, true
}

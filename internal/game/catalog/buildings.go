package catalog

import "CastleRealm/internal/game/entity"

// BuildingInfo 是单个建筑种类的静态参数。
type BuildingInfo struct {
	Name            string
	MaxLevel        int
	BaseUpgradeCost entity.Resources
	BaseUpgradeTime int64 // 秒
	Produces        entity.ResourceKind
	ProductionRate  int64 // 每级每游戏分钟产量
}

var buildings = map[entity.BuildingType]BuildingInfo{
	entity.BuildingCastle: {
		Name:            "Castle",
		MaxLevel:        30,
		BaseUpgradeCost: entity.Resources{Food: 200, Wood: 200, Stone: 100, Iron: 50},
		BaseUpgradeTime: 60,
	},
	entity.BuildingBarracks: {
		Name:            "Barracks",
		MaxLevel:        30,
		BaseUpgradeCost: entity.Resources{Food: 100, Wood: 150, Stone: 50, Iron: 30},
		BaseUpgradeTime: 30,
	},
	entity.BuildingStables: {
		Name:            "Stables",
		MaxLevel:        30,
		BaseUpgradeCost: entity.Resources{Food: 120, Wood: 100, Stone: 60, Iron: 40},
		BaseUpgradeTime: 30,
	},
	entity.BuildingRange: {
		Name:            "Range",
		MaxLevel:        30,
		BaseUpgradeCost: entity.Resources{Food: 80, Wood: 180, Stone: 40, Iron: 30},
		BaseUpgradeTime: 30,
	},
	entity.BuildingSiegeWorkshop: {
		Name:            "Siege Workshop",
		MaxLevel:        30,
		BaseUpgradeCost: entity.Resources{Food: 100, Wood: 200, Stone: 100, Iron: 80},
		BaseUpgradeTime: 35,
	},
	entity.BuildingDrillGrounds: {
		Name:            "Drill Grounds",
		MaxLevel:        20,
		BaseUpgradeCost: entity.Resources{Food: 150, Wood: 150, Stone: 80, Iron: 50},
		BaseUpgradeTime: 25,
	},
	entity.BuildingWatchtower: {
		Name:            "Watchtower",
		MaxLevel:        20,
		BaseUpgradeCost: entity.Resources{Food: 100, Wood: 120, Stone: 100, Iron: 40},
		BaseUpgradeTime: 20,
	},
	entity.BuildingBlacksmith: {
		Name:            "Blacksmith",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 80, Wood: 100, Stone: 80, Iron: 100},
		BaseUpgradeTime: 30,
	},
	entity.BuildingCollege: {
		Name:            "College",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 150, Wood: 150, Stone: 100, Iron: 80},
		BaseUpgradeTime: 35,
	},
	entity.BuildingFortress: {
		Name:            "Fortress",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 120, Wood: 150, Stone: 120, Iron: 60},
		BaseUpgradeTime: 25,
	},
	entity.BuildingMarket: {
		Name:            "Market",
		MaxLevel:        20,
		BaseUpgradeCost: entity.Resources{Food: 100, Wood: 100, Stone: 60, Iron: 40},
		BaseUpgradeTime: 20,
	},
	entity.BuildingEmbassy: {
		Name:            "Embassy",
		MaxLevel:        20,
		BaseUpgradeCost: entity.Resources{Food: 120, Wood: 120, Stone: 80, Iron: 50},
		BaseUpgradeTime: 20,
	},
	entity.BuildingDepot: {
		Name:            "Depot",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 100, Wood: 100, Stone: 100, Iron: 60},
		BaseUpgradeTime: 15,
	},
	entity.BuildingFarm: {
		Name:            "Farm",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 50, Wood: 80, Stone: 30, Iron: 20},
		BaseUpgradeTime: 15,
		Produces:        entity.ResourceFood,
		ProductionRate:  100,
	},
	entity.BuildingLumberMill: {
		Name:            "Lumber Mill",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 50, Wood: 80, Stone: 30, Iron: 20},
		BaseUpgradeTime: 15,
		Produces:        entity.ResourceWood,
		ProductionRate:  100,
	},
	entity.BuildingQuarry: {
		Name:            "Quarry",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 50, Wood: 80, Stone: 30, Iron: 20},
		BaseUpgradeTime: 15,
		Produces:        entity.ResourceStone,
		ProductionRate:  80,
	},
	entity.BuildingIronMine: {
		Name:            "Iron Mine",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 50, Wood: 80, Stone: 30, Iron: 20},
		BaseUpgradeTime: 15,
		Produces:        entity.ResourceIron,
		ProductionRate:  60,
	},
	entity.BuildingMilitaryTent: {
		Name:            "Military Tent",
		MaxLevel:        20,
		BaseUpgradeCost: entity.Resources{Food: 100, Wood: 120, Stone: 60, Iron: 40},
		BaseUpgradeTime: 20,
	},
	entity.BuildingHospital: {
		Name:            "Hospital",
		MaxLevel:        25,
		BaseUpgradeCost: entity.Resources{Food: 120, Wood: 100, Stone: 80, Iron: 60},
		BaseUpgradeTime: 25,
	},
	entity.BuildingHallOfWar: {
		Name:            "Hall of War",
		MaxLevel:        20,
		BaseUpgradeCost: entity.Resources{Food: 150, Wood: 150, Stone: 100, Iron: 80},
		BaseUpgradeTime: 30,
	},
}

// GetBuilding 返回建筑种类的静态参数。
func GetBuilding(t entity.BuildingType) (BuildingInfo, bool) {
	info, ok := buildings[t]
	return info, ok
}

// BuildingTypes 返回全部建筑种类（顺序不保证）。
func BuildingTypes() []entity.BuildingType {
	out := make([]entity.BuildingType, 0, len(buildings))
	for t := range buildings {
		out = append(out, t)
	}
	return out
}

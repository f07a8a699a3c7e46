package catalog

import (
	"fmt"

	"CastleRealm/internal/game/entity"
)

// TroopInfo 是单个兵种某一阶的静态参数。
type TroopInfo struct {
	Name          string
	Category      entity.TroopCategory
	Tier          int
	TrainingCost  entity.Resources
	TrainingTime  int64 // 秒/单位
	Attack        int
	Defense       int
	Health        int
	Speed         int
	Load          int
	StrongAgainst entity.TroopCategory
	WeakAgainst   entity.TroopCategory
}

// row 压缩表格行，参数顺序：食/木/石/铁、训练秒、攻/防/血/速/载。
func row(name string, cat entity.TroopCategory, tier int, f, w, s, i, t int64, atk, def, hp, spd, load int, strong, weak entity.TroopCategory) TroopInfo {
	return TroopInfo{
		Name:          fmt.Sprintf("%s T%d", name, tier),
		Category:      cat,
		Tier:          tier,
		TrainingCost:  entity.Resources{Food: f, Wood: w, Stone: s, Iron: i},
		TrainingTime:  t,
		Attack:        atk,
		Defense:       def,
		Health:        hp,
		Speed:         spd,
		Load:          load,
		StrongAgainst: strong,
		WeakAgainst:   weak,
	}
}

var (
	inf = entity.CategoryInfantry
	cav = entity.CategoryCavalry
	arc = entity.CategoryArcher
	sie = entity.CategorySiege
)

// 阶数从 1 到 10，切片下标 = tier-1。
var troops = map[entity.TroopType][]TroopInfo{
	entity.TroopShieldSoldier: {
		row("Shield Soldier", inf, 1, 50, 20, 10, 5, 30, 8, 15, 100, 5, 20, cav, ""),
		row("Shield Soldier", inf, 2, 80, 30, 15, 8, 45, 12, 22, 150, 5, 25, cav, ""),
		row("Shield Soldier", inf, 3, 120, 45, 22, 12, 60, 18, 32, 220, 5, 30, cav, ""),
		row("Shield Soldier", inf, 4, 180, 65, 35, 18, 90, 26, 45, 310, 5, 35, cav, ""),
		row("Shield Soldier", inf, 5, 260, 95, 50, 28, 120, 38, 62, 450, 5, 40, cav, ""),
		row("Shield Soldier", inf, 6, 370, 135, 72, 40, 150, 54, 85, 620, 5, 45, cav, ""),
		row("Shield Soldier", inf, 7, 520, 190, 100, 58, 180, 75, 115, 850, 5, 50, cav, ""),
		row("Shield Soldier", inf, 8, 720, 265, 140, 82, 210, 102, 155, 1150, 5, 55, cav, ""),
		row("Shield Soldier", inf, 9, 980, 365, 195, 115, 240, 138, 208, 1550, 5, 60, cav, ""),
		row("Shield Soldier", inf, 10, 1320, 500, 270, 160, 300, 185, 280, 2080, 5, 70, cav, ""),
	},
	entity.TroopPikeman: {
		row("Pikeman", inf, 1, 60, 15, 12, 8, 30, 15, 8, 90, 6, 18, cav, sie),
		row("Pikeman", inf, 2, 95, 25, 18, 12, 45, 22, 12, 135, 6, 22, cav, sie),
		row("Pikeman", inf, 3, 140, 38, 28, 18, 60, 32, 18, 200, 6, 28, cav, sie),
		row("Pikeman", inf, 4, 210, 55, 42, 28, 90, 45, 26, 285, 6, 32, cav, sie),
		row("Pikeman", inf, 5, 300, 80, 60, 40, 120, 62, 38, 410, 6, 38, cav, sie),
		row("Pikeman", inf, 6, 425, 115, 85, 58, 150, 85, 54, 570, 6, 42, cav, sie),
		row("Pikeman", inf, 7, 595, 160, 120, 80, 180, 115, 75, 780, 6, 48, cav, sie),
		row("Pikeman", inf, 8, 820, 225, 165, 115, 210, 155, 102, 1060, 6, 52, cav, sie),
		row("Pikeman", inf, 9, 1115, 310, 230, 160, 240, 208, 138, 1430, 6, 58, cav, sie),
		row("Pikeman", inf, 10, 1500, 425, 315, 220, 300, 280, 185, 1920, 6, 65, cav, sie),
	},
	entity.TroopMeleeCavalry: {
		row("Melee Cavalry", cav, 1, 70, 25, 8, 12, 35, 12, 7, 85, 10, 25, arc, inf),
		row("Melee Cavalry", cav, 2, 110, 38, 12, 18, 50, 18, 10, 128, 10, 30, arc, inf),
		row("Melee Cavalry", cav, 3, 165, 55, 18, 28, 70, 26, 15, 190, 11, 35, arc, inf),
		row("Melee Cavalry", cav, 4, 245, 82, 28, 42, 100, 38, 22, 270, 11, 42, arc, inf),
		row("Melee Cavalry", cav, 5, 350, 120, 40, 60, 135, 54, 32, 390, 12, 48, arc, inf),
		row("Melee Cavalry", cav, 6, 495, 170, 58, 85, 165, 75, 45, 540, 12, 55, arc, inf),
		row("Melee Cavalry", cav, 7, 690, 235, 80, 120, 200, 102, 62, 740, 13, 62, arc, inf),
		row("Melee Cavalry", cav, 8, 950, 330, 115, 170, 230, 138, 85, 1010, 13, 68, arc, inf),
		row("Melee Cavalry", cav, 9, 1290, 450, 160, 235, 270, 185, 115, 1360, 14, 75, arc, inf),
		row("Melee Cavalry", cav, 10, 1740, 615, 220, 320, 330, 250, 155, 1830, 14, 85, arc, inf),
	},
	entity.TroopCavalryShooter: {
		row("Cavalry Shooter", cav, 1, 65, 30, 10, 10, 35, 14, 6, 80, 9, 22, arc, inf),
		row("Cavalry Shooter", cav, 2, 100, 45, 15, 15, 50, 20, 9, 120, 9, 28, arc, inf),
		row("Cavalry Shooter", cav, 3, 150, 68, 22, 22, 70, 29, 13, 178, 10, 32, arc, inf),
		row("Cavalry Shooter", cav, 4, 225, 100, 32, 32, 100, 42, 19, 255, 10, 38, arc, inf),
		row("Cavalry Shooter", cav, 5, 320, 145, 48, 48, 135, 59, 28, 368, 11, 45, arc, inf),
		row("Cavalry Shooter", cav, 6, 455, 205, 68, 68, 165, 82, 38, 510, 11, 52, arc, inf),
		row("Cavalry Shooter", cav, 7, 635, 285, 95, 95, 200, 112, 52, 700, 12, 58, arc, inf),
		row("Cavalry Shooter", cav, 8, 870, 395, 132, 132, 230, 151, 72, 955, 12, 65, arc, inf),
		row("Cavalry Shooter", cav, 9, 1185, 540, 180, 180, 270, 203, 98, 1285, 13, 72, arc, inf),
		row("Cavalry Shooter", cav, 10, 1600, 730, 245, 245, 330, 273, 132, 1730, 13, 80, arc, inf),
	},
	entity.TroopArcher: {
		row("Archer", arc, 1, 55, 35, 5, 8, 28, 16, 5, 70, 7, 15, sie, cav),
		row("Archer", arc, 2, 85, 52, 8, 12, 42, 23, 7, 105, 7, 18, sie, cav),
		row("Archer", arc, 3, 125, 78, 12, 18, 58, 34, 10, 155, 7, 22, sie, cav),
		row("Archer", arc, 4, 190, 115, 18, 28, 85, 48, 15, 222, 8, 26, sie, cav),
		row("Archer", arc, 5, 270, 165, 28, 40, 115, 67, 22, 320, 8, 30, sie, cav),
		row("Archer", arc, 6, 385, 235, 40, 58, 145, 92, 30, 445, 8, 35, sie, cav),
		row("Archer", arc, 7, 540, 330, 55, 80, 175, 125, 42, 610, 9, 40, sie, cav),
		row("Archer", arc, 8, 745, 455, 78, 115, 205, 169, 58, 830, 9, 45, sie, cav),
		row("Archer", arc, 9, 1015, 620, 105, 160, 240, 228, 78, 1120, 9, 50, sie, cav),
		row("Archer", arc, 10, 1370, 840, 142, 220, 290, 307, 105, 1510, 10, 55, sie, cav),
	},
	entity.TroopCrossbowman: {
		row("Crossbowman", arc, 1, 60, 38, 8, 10, 30, 18, 6, 75, 6, 16, sie, cav),
		row("Crossbowman", arc, 2, 92, 58, 12, 15, 45, 26, 9, 112, 6, 20, sie, cav),
		row("Crossbowman", arc, 3, 138, 85, 18, 22, 62, 38, 13, 165, 6, 24, sie, cav),
		row("Crossbowman", arc, 4, 205, 128, 28, 32, 90, 54, 18, 238, 7, 28, sie, cav),
		row("Crossbowman", arc, 5, 295, 185, 40, 48, 120, 75, 26, 342, 7, 32, sie, cav),
		row("Crossbowman", arc, 6, 420, 265, 58, 68, 150, 102, 36, 476, 7, 38, sie, cav),
		row("Crossbowman", arc, 7, 585, 370, 80, 95, 185, 138, 50, 652, 8, 42, sie, cav),
		row("Crossbowman", arc, 8, 810, 510, 115, 132, 215, 187, 68, 888, 8, 48, sie, cav),
		row("Crossbowman", arc, 9, 1100, 695, 160, 180, 250, 252, 92, 1198, 8, 52, sie, cav),
		row("Crossbowman", arc, 10, 1485, 940, 220, 245, 300, 339, 124, 1615, 9, 58, sie, cav),
	},
	entity.TroopAssaultCart: {
		row("Assault Cart", sie, 1, 80, 50, 20, 15, 45, 10, 20, 150, 3, 10, inf, arc),
		row("Assault Cart", sie, 2, 125, 75, 30, 22, 65, 15, 28, 225, 3, 12, inf, arc),
		row("Assault Cart", sie, 3, 185, 115, 45, 32, 90, 22, 40, 335, 3, 15, inf, arc),
		row("Assault Cart", sie, 4, 280, 170, 68, 48, 125, 32, 56, 485, 3, 18, inf, arc),
		row("Assault Cart", sie, 5, 400, 245, 98, 70, 165, 45, 78, 700, 4, 22, inf, arc),
		row("Assault Cart", sie, 6, 570, 350, 140, 100, 205, 62, 108, 970, 4, 26, inf, arc),
		row("Assault Cart", sie, 7, 795, 490, 195, 140, 245, 85, 148, 1330, 4, 30, inf, arc),
		row("Assault Cart", sie, 8, 1095, 675, 270, 195, 285, 115, 202, 1810, 4, 35, inf, arc),
		row("Assault Cart", sie, 9, 1490, 920, 365, 265, 330, 155, 275, 2450, 5, 40, inf, arc),
		row("Assault Cart", sie, 10, 2010, 1240, 495, 360, 400, 208, 370, 3300, 5, 48, inf, arc),
	},
	entity.TroopTrebuchet: {
		row("Trebuchet", sie, 1, 75, 55, 18, 12, 40, 25, 8, 120, 2, 8, inf, arc),
		row("Trebuchet", sie, 2, 115, 82, 28, 18, 60, 36, 12, 180, 2, 10, inf, arc),
		row("Trebuchet", sie, 3, 172, 125, 42, 28, 85, 52, 18, 268, 2, 12, inf, arc),
		row("Trebuchet", sie, 4, 260, 185, 62, 42, 120, 75, 26, 390, 2, 15, inf, arc),
		row("Trebuchet", sie, 5, 370, 265, 90, 60, 160, 105, 38, 560, 3, 18, inf, arc),
		row("Trebuchet", sie, 6, 530, 380, 128, 85, 200, 145, 52, 780, 3, 22, inf, arc),
		row("Trebuchet", sie, 7, 740, 530, 180, 120, 240, 198, 72, 1070, 3, 26, inf, arc),
		row("Trebuchet", sie, 8, 1020, 730, 248, 165, 280, 269, 98, 1455, 3, 30, inf, arc),
		row("Trebuchet", sie, 9, 1385, 995, 335, 225, 325, 364, 135, 1970, 4, 35, inf, arc),
		row("Trebuchet", sie, 10, 1870, 1340, 452, 305, 390, 492, 182, 2660, 4, 42, inf, arc),
	},
}

// GetTroop 返回兵种某一阶的静态参数，tier 取值 1..10。
func GetTroop(t entity.TroopType, tier int) (TroopInfo, bool) {
	rows, ok := troops[t]
	if !ok || tier < 1 || tier > len(rows) {
		return TroopInfo{}, false
	}
	return rows[tier-1], true
}

// CategoryOf 返回兵种的战斗类别；类别由兵种决定，不可独立设置。
func CategoryOf(t entity.TroopType) (entity.TroopCategory, bool) {
	rows, ok := troops[t]
	if !ok || len(rows) == 0 {
		return "", false
	}
	return rows[0].Category, true
}

// TroopTypes 返回全部兵种（顺序不保证）。
func TroopTypes() []entity.TroopType {
	out := make([]entity.TroopType, 0, len(troops))
	for t := range troops {
		out = append(out, t)
	}
	return out
}

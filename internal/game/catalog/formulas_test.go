package catalog

import (
	"testing"

	"CastleRealm/internal/game/entity"
)

func TestUpgradeCost_按当前等级乘幂(t *testing.T) {
	// 农场基础开销 {50,80,30,20,0}，从 1 级升 2 级乘 1.5。
	cost, ok := UpgradeCost(entity.BuildingFarm, 1)
	if !ok {
		t.Fatal("缺少农场目录项")
	}
	want := entity.Resources{Food: 75, Wood: 120, Stone: 45, Iron: 30, Gold: 0}
	if cost != want {
		t.Fatalf("cost = %+v, want %+v", cost, want)
	}

	// 0 级即基础开销本身。
	base, _ := UpgradeCost(entity.BuildingFarm, 0)
	if base != (entity.Resources{Food: 50, Wood: 80, Stone: 30, Iron: 20}) {
		t.Fatalf("base cost = %+v", base)
	}
}

func TestUpgradeTime_向下取整且单调递增(t *testing.T) {
	// 15 × 1.3 = 19.5，取整 19。
	sec, ok := UpgradeTime(entity.BuildingFarm, 1)
	if !ok || sec != 19 {
		t.Fatalf("UpgradeTime(farm,1) = %d, want 19", sec)
	}

	prev := int64(0)
	for lv := 0; lv < 29; lv++ {
		cur, _ := UpgradeTime(entity.BuildingCastle, lv)
		if cur < prev {
			t.Fatalf("等级 %d 耗时 %d 小于上一级 %d", lv, cur, prev)
		}
		prev = cur
	}
}

func TestSubtractResources_在零处截断(t *testing.T) {
	got := SubtractResources(
		entity.Resources{Food: 100, Wood: 10, Stone: 0, Iron: 5, Gold: 1},
		entity.Resources{Food: 50, Wood: 20, Stone: 1, Iron: 5, Gold: 0},
	)
	want := entity.Resources{Food: 50, Wood: 0, Stone: 0, Iron: 0, Gold: 1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCanAfford_五项资源逐项判断(t *testing.T) {
	have := entity.Resources{Food: 100, Wood: 100, Stone: 100, Iron: 100, Gold: 10}
	if !CanAfford(entity.Resources{Food: 100, Gold: 10}, have) {
		t.Fatal("恰好足够也应允许")
	}
	if CanAfford(entity.Resources{Food: 100, Gold: 11}, have) {
		t.Fatal("任意一项不足即拒绝")
	}
}

func TestTrainingCost_按数量线性放大(t *testing.T) {
	// 一阶盾兵 {50,20,10,5,0}。
	cost, ok := TrainingCost(entity.TroopShieldSoldier, 1, 10)
	if !ok {
		t.Fatal("缺少盾兵目录项")
	}
	want := entity.Resources{Food: 500, Wood: 200, Stone: 100, Iron: 50}
	if cost != want {
		t.Fatalf("cost = %+v, want %+v", cost, want)
	}

	sec, _ := TrainingTime(entity.TroopShieldSoldier, 1, 10)
	if sec != 300 {
		t.Fatalf("TrainingTime = %d, want 300", sec)
	}
}

func TestGetTroop_越界阶数返回false(t *testing.T) {
	if _, ok := GetTroop(entity.TroopArcher, 0); ok {
		t.Fatal("tier 0 不应存在")
	}
	if _, ok := GetTroop(entity.TroopArcher, 11); ok {
		t.Fatal("tier 11 不应存在")
	}
	info, ok := GetTroop(entity.TroopArcher, 10)
	if !ok || info.Attack != 307 {
		t.Fatalf("archer T10 = %+v", info)
	}
}

func TestCatalog_覆盖全部兵种与建筑(t *testing.T) {
	if n := len(TroopTypes()); n != 8 {
		t.Fatalf("兵种数量 = %d", n)
	}
	for _, tt := range TroopTypes() {
		for tier := 1; tier <= 10; tier++ {
			if _, ok := GetTroop(tt, tier); !ok {
				t.Fatalf("缺少 %s T%d", tt, tier)
			}
		}
	}
	if n := len(BuildingTypes()); n != 20 {
		t.Fatalf("建筑数量 = %d", n)
	}
	for tier := 1; tier <= 10; tier++ {
		if _, ok := RequiredCastleLevel(tier); !ok {
			t.Fatalf("缺少 T%d 的城堡等级门槛", tier)
		}
	}
}

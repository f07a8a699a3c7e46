package store

import (
	"testing"

	"CastleRealm/internal/game/catalog"
	"CastleRealm/internal/game/entity"
)

func TestAddPlayer_初始状态完整(t *testing.T) {
	s := newWithSeed(1)
	p := s.AddPlayer("p1", "alice")

	if p.CastleLevel != 1 || p.Power != catalog.InitialPower {
		t.Fatalf("castleLevel=%d power=%d", p.CastleLevel, p.Power)
	}
	if p.Resources != catalog.InitialResources() {
		t.Fatalf("resources = %+v", p.Resources)
	}
	if len(p.Buildings) != 4 {
		t.Fatalf("起始建筑数 = %d", len(p.Buildings))
	}
	wantIDs := map[string]entity.BuildingType{
		"castle_main":  entity.BuildingCastle,
		"farm_1":       entity.BuildingFarm,
		"lumberMill_1": entity.BuildingLumberMill,
		"barracks_1":   entity.BuildingBarracks,
	}
	for _, b := range p.Buildings {
		if wantIDs[b.ID] != b.Type || b.Level != 1 {
			t.Fatalf("意外的起始建筑 %+v", b)
		}
	}
	if p.Position.X < 0 || p.Position.X >= catalog.WorldWidth ||
		p.Position.Y < 0 || p.Position.Y >= catalog.WorldHeight {
		t.Fatalf("出生点越界 %+v", p.Position)
	}

	// 重复加入返回同一玩家而不是重置。
	s.UpdatePlayer("p1", func(p *entity.Player) { p.Resources.Gold = 999 })
	again := s.AddPlayer("p1", "alice")
	if again.Resources.Gold != 999 {
		t.Fatal("重复 AddPlayer 不应重置状态")
	}
}

func TestGetPlayer_交出的是拷贝(t *testing.T) {
	s := newWithSeed(2)
	s.AddPlayer("p1", "alice")

	c1, _ := s.GetPlayer("p1")
	c1.Resources.Food = 0
	c1.Buildings[0].Level = 99

	c2, _ := s.GetPlayer("p1")
	if c2.Resources.Food != 2000 || c2.Buildings[0].Level != 1 {
		t.Fatal("外部改动泄漏进存储")
	}
}

func TestUpdatePlayer_锁内变更并返回新拷贝(t *testing.T) {
	s := newWithSeed(3)
	s.AddPlayer("p1", "alice")

	after, ok := s.UpdatePlayer("p1", func(p *entity.Player) {
		p.Resources = catalog.SubtractResources(p.Resources, entity.Resources{Food: 500})
	})
	if !ok || after.Resources.Food != 1500 {
		t.Fatalf("after = %+v", after.Resources)
	}
	if _, ok := s.UpdatePlayer("nobody", func(*entity.Player) {}); ok {
		t.Fatal("不存在的玩家应返回 false")
	}
}

func TestGenerateWorld_数量与数值范围(t *testing.T) {
	s := newWithSeed(4)
	s.GenerateWorld()

	monsters := s.Monsters()
	if len(monsters) != 30 {
		t.Fatalf("野怪数 = %d", len(monsters))
	}
	for _, m := range monsters {
		info, ok := catalog.GetMonster(m.Type)
		if !ok {
			t.Fatalf("未知野怪类型 %s", m.Type)
		}
		if m.Level < 1 || m.Level > 10 {
			t.Fatalf("%s 等级越界 %d", m.ID, m.Level)
		}
		if m.Health != info.BaseHealth*int64(m.Level) || m.Health != m.MaxHealth {
			t.Fatalf("%s 血量 %d 与等级 %d 不符", m.ID, m.Health, m.Level)
		}
		if m.Rewards.Food != info.BaseRewards.Food*int64(m.Level) {
			t.Fatalf("%s 奖励与等级不符", m.ID)
		}
	}

	plots := s.Plots()
	if len(plots) != 50 {
		t.Fatalf("资源点数 = %d", len(plots))
	}
	for _, p := range plots {
		if p.Level < 1 || p.Level > 5 {
			t.Fatalf("%s 等级越界 %d", p.ID, p.Level)
		}
		if p.Capacity != int64(p.Level)*10000 || p.Remaining != p.Capacity {
			t.Fatalf("%s 容量 %d 与等级 %d 不符", p.ID, p.Capacity, p.Level)
		}
	}
}

func TestCreateAlliance_创建者互斥(t *testing.T) {
	s := newWithSeed(5)
	s.AddPlayer("p1", "alice")
	s.AddPlayer("p2", "bob")

	a, ok := s.CreateAlliance("a1", "Knights", "KNT", "p1")
	if !ok || a.LeaderID != "p1" || len(a.Members) != 1 {
		t.Fatalf("a = %+v ok = %v", a, ok)
	}
	p1, _ := s.GetPlayer("p1")
	if p1.AllianceID != "a1" {
		t.Fatal("创建者未入盟")
	}

	// 已有联盟者再建盟失败，且不留下半成品。
	if _, ok := s.CreateAlliance("a2", "Second", "SND", "p1"); ok {
		t.Fatal("重复建盟应失败")
	}
	if _, ok := s.GetAlliance("a2"); ok {
		t.Fatal("失败的建盟不应留下联盟")
	}
}

func TestJoinAlliance_互斥与成员列表(t *testing.T) {
	s := newWithSeed(6)
	s.AddPlayer("p1", "alice")
	s.AddPlayer("p2", "bob")
	s.CreateAlliance("a1", "Knights", "KNT", "p1")

	a, ok := s.JoinAlliance("p2", "a1")
	if !ok || len(a.Members) != 2 {
		t.Fatalf("a = %+v ok = %v", a, ok)
	}
	if _, ok := s.JoinAlliance("p2", "a1"); ok {
		t.Fatal("已入盟玩家再次加入应失败")
	}
	if _, ok := s.JoinAlliance("p1", "missing"); ok {
		t.Fatal("不存在的联盟应失败")
	}
}

package store

import (
	"fmt"

	"CastleRealm/internal/game/catalog"
	"CastleRealm/internal/game/entity"
)

const (
	monsterCount = 30
	plotCount    = 50
)

// GenerateWorld 生成开服地图：野怪与资源点各一批，位置与等级随机。
// 只应在启动时调用一次。
func (s *Store) GenerateWorld() {
	s.mu.Lock()
	defer s.mu.Unlock()

	kinds := catalog.MonsterTypes()
	for i := 0; i < monsterCount; i++ {
		kind := kinds[s.rnd.Intn(len(kinds))]
		level := s.rnd.Intn(catalog.MonsterMaxLevel) + 1
		info, _ := catalog.GetMonster(kind)
		health := info.BaseHealth * int64(level)

		id := fmt.Sprintf("monster_%d", i)
		s.monsters[id] = &entity.Monster{
			ID:        id,
			Type:      kind,
			Level:     level,
			Position:  s.randomPosition(),
			Health:    health,
			MaxHealth: health,
			Rewards:   catalog.MultiplyResources(info.BaseRewards, float64(level)),
		}
	}

	resourceKinds := []entity.ResourceKind{
		entity.ResourceFood, entity.ResourceWood, entity.ResourceStone, entity.ResourceIron,
	}
	for i := 0; i < plotCount; i++ {
		level := s.rnd.Intn(catalog.PlotMaxLevel) + 1
		capacity := int64(catalog.PlotCapacityPerLevel) * int64(level)

		id := fmt.Sprintf("plot_%d", i)
		s.plots[id] = &entity.ResourcePlot{
			ID:        id,
			Type:      resourceKinds[s.rnd.Intn(len(resourceKinds))],
			Level:     level,
			Position:  s.randomPosition(),
			Capacity:  capacity,
			Remaining: capacity,
		}
	}
}

func (s *Store) randomPosition() entity.Position {
	return entity.Position{
		X: s.rnd.Float64() * catalog.WorldWidth,
		Y: s.rnd.Float64() * catalog.WorldHeight,
	}
}

// Package store 持有全服权威状态。所有读取交出深拷贝，
// 所有修改经 Update 系列在锁内完成，调用方拿不到内部指针。
package store

import (
	"math/rand"
	"sync"
	"time"

	"CastleRealm/internal/game/catalog"
	"CastleRealm/internal/game/entity"
)

type Store struct {
	mu        sync.RWMutex
	players   map[string]*entity.Player
	alliances map[string]*entity.Alliance
	monsters  map[string]*entity.Monster
	plots     map[string]*entity.ResourcePlot
	rnd       *rand.Rand
}

func New() *Store {
	return newWithSeed(time.Now().UnixNano())
}

func newWithSeed(seed int64) *Store {
	return &Store{
		players:   make(map[string]*entity.Player),
		alliances: make(map[string]*entity.Alliance),
		monsters:  make(map[string]*entity.Monster),
		plots:     make(map[string]*entity.ResourcePlot),
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

// AddPlayer 创建新玩家：随机出生点、初始库存与起始建筑。
// 同 ID 重复加入时返回已存在的玩家。
func (s *Store) AddPlayer(id, username string) *entity.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.players[id]; ok {
		return p.Clone()
	}

	p := &entity.Player{
		ID:          id,
		Username:    username,
		CastleLevel: 1,
		Position: entity.Position{
			X: s.rnd.Float64() * catalog.WorldWidth,
			Y: s.rnd.Float64() * catalog.WorldHeight,
		},
		Resources:      catalog.InitialResources(),
		Buildings:      starterBuildings(),
		Troops:         []*entity.TroopUnit{},
		TrainingQueues: []*entity.TrainingQueue{},
		Marches:        []*entity.March{},
		Power:          catalog.InitialPower,
	}
	s.players[id] = p
	return p.Clone()
}

func starterBuildings() []*entity.Building {
	return []*entity.Building{
		{ID: "castle_main", Type: entity.BuildingCastle, Level: 1, Position: entity.Vector3{X: 0, Y: 0, Z: 0}},
		{ID: "farm_1", Type: entity.BuildingFarm, Level: 1, Position: entity.Vector3{X: -10, Y: 0, Z: 5}},
		{ID: "lumberMill_1", Type: entity.BuildingLumberMill, Level: 1, Position: entity.Vector3{X: 10, Y: 0, Z: 5}},
		{ID: "barracks_1", Type: entity.BuildingBarracks, Level: 1, Position: entity.Vector3{X: -5, Y: 0, Z: -8}},
	}
}

func (s *Store) RemovePlayer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
}

func (s *Store) GetPlayer(id string) (*entity.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (s *Store) Players() []*entity.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p.Clone())
	}
	return out
}

// UpdatePlayer 在锁内执行变更函数，返回变更后的拷贝。
// fn 看到的是内部对象，不得将其中指针带出闭包。
func (s *Store) UpdatePlayer(id string, fn func(*entity.Player)) (*entity.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return nil, false
	}
	fn(p)
	return p.Clone(), true
}

func (s *Store) Monsters() []*entity.Monster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Monster, 0, len(s.monsters))
	for _, m := range s.monsters {
		out = append(out, m.Clone())
	}
	return out
}

func (s *Store) Plots() []*entity.ResourcePlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.ResourcePlot, 0, len(s.plots))
	for _, p := range s.plots {
		out = append(out, p.Clone())
	}
	return out
}

func (s *Store) GetAlliance(id string) (*entity.Alliance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alliances[id]
	if !ok {
		return nil, false
	}
	return a.Clone(), true
}

func (s *Store) Alliances() []*entity.Alliance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Alliance, 0, len(s.alliances))
	for _, a := range s.alliances {
		out = append(out, a.Clone())
	}
	return out
}

// CreateAlliance 在同一临界区内检查互斥并建盟：
// 创建者已有联盟时失败，不产生任何状态变化。
func (s *Store) CreateAlliance(id, name, tag, leaderID string) (*entity.Alliance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leader, ok := s.players[leaderID]
	if !ok || leader.AllianceID != "" {
		return nil, false
	}

	a := &entity.Alliance{
		ID:       id,
		Name:     name,
		Tag:      tag,
		LeaderID: leaderID,
		Members:  []string{leaderID},
		Turrets:  []*entity.AllianceTurret{},
	}
	s.alliances[id] = a
	leader.AllianceID = id
	return a.Clone(), true
}

// JoinAlliance 把玩家加入联盟。玩家已有联盟或联盟不存在时失败。
func (s *Store) JoinAlliance(playerID, allianceID string) (*entity.Alliance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok || p.AllianceID != "" {
		return nil, false
	}
	a, ok := s.alliances[allianceID]
	if !ok {
		return nil, false
	}

	a.Members = append(a.Members, playerID)
	p.AllianceID = allianceID
	return a.Clone(), true
}

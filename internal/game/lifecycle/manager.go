// Package lifecycle 推进世界内的时间性状态：建筑升级、练兵、资源产出。
// 开销与时长一律按目录在服务端重算，客户端给的数值只当提示。
package lifecycle

import (
	"context"
	"sync"
	"time"

	"CastleRealm/internal/game/broadcast"
	"CastleRealm/internal/game/catalog"
	"CastleRealm/internal/game/entity"
	"CastleRealm/internal/game/store"
	"CastleRealm/internal/shared/utils"
	"CastleRealm/modules/kit/logx"
)

// Emitter 是生命周期事件的下行出口。
type Emitter interface {
	Broadcast(event string, data any, excludePlayerID ...string)
	SendToPlayer(playerID, event string, data any)
}

type Manager struct {
	store *store.Store
	sched *Scheduler
	emit  Emitter
	log   logx.Logger
	now   func() time.Time

	carryMu sync.Mutex
	carry   map[string]*productionCarry
}

// productionCarry 保存每秒产量的小数残余，保证整数库存精确贴合每分钟产率。
type productionCarry struct {
	food, wood, stone, iron float64
}

func NewManager(s *store.Store, sched *Scheduler, emit Emitter, log logx.Logger) *Manager {
	return &Manager{
		store: s,
		sched: sched,
		emit:  emit,
		log:   log,
		now:   time.Now,
		carry: make(map[string]*productionCarry),
	}
}

// StartUpgrade 发起建筑升级。被拒时整体不变，返回拒绝原因。
func (m *Manager) StartUpgrade(playerID, buildingID string) error {
	now := m.now()
	var (
		reject      error
		targetLevel int
		dueAt       time.Time
	)
	_, found := m.store.UpdatePlayer(playerID, func(p *entity.Player) {
		b := findBuilding(p, buildingID)
		if b == nil {
			reject = ErrBuildingNotFound
			return
		}
		if b.Upgrading != nil {
			reject = ErrAlreadyUpgrading
			return
		}
		info, ok := catalog.GetBuilding(b.Type)
		if !ok {
			reject = ErrUnknownCatalog
			return
		}
		if b.Level >= info.MaxLevel {
			reject = ErrMaxLevel
			return
		}
		cost, _ := catalog.UpgradeCost(b.Type, b.Level)
		if !catalog.CanAfford(cost, p.Resources) {
			reject = ErrNotAffordable
			return
		}
		durSec, _ := catalog.UpgradeTime(b.Type, b.Level)

		p.Resources = catalog.SubtractResources(p.Resources, cost)
		b.Upgrading = &entity.UpgradeState{
			TargetLevel: b.Level + 1,
			StartTime:   now.UnixMilli(),
			Duration:    durSec * 1000,
		}
		targetLevel = b.Upgrading.TargetLevel
		dueAt = now.Add(time.Duration(durSec) * time.Second)
	})
	if !found {
		return ErrPlayerNotFound
	}
	if reject != nil {
		return reject
	}

	m.emit.Broadcast(broadcast.EventBuildingUpgradeStarted, map[string]any{
		"playerId":    playerID,
		"buildingId":  buildingID,
		"targetLevel": targetLevel,
	})
	m.sched.Schedule(dueAt, func() { _ = m.CompleteUpgrade(playerID, buildingID) })
	return nil
}

// CompleteUpgrade 结算一次升级。未到期、未在升级或目标已消失时不做任何事，
// 因此定时器触发与客户端提示可以重复调用。
func (m *Manager) CompleteUpgrade(playerID, buildingID string) error {
	nowMS := m.now().UnixMilli()
	var (
		reject error
		level  int
	)
	_, found := m.store.UpdatePlayer(playerID, func(p *entity.Player) {
		b := findBuilding(p, buildingID)
		if b == nil {
			reject = ErrBuildingNotFound
			return
		}
		if b.Upgrading == nil {
			reject = ErrQueueNotFound
			return
		}
		if nowMS < b.Upgrading.StartTime+b.Upgrading.Duration {
			reject = ErrNotDue
			return
		}
		b.Level = b.Upgrading.TargetLevel
		b.Upgrading = nil
		if b.Type == entity.BuildingCastle {
			p.CastleLevel = b.Level
		}
		p.Power = catalog.PlayerPower(p)
		level = b.Level
	})
	if !found {
		return ErrPlayerNotFound
	}
	if reject != nil {
		return reject
	}

	m.emit.Broadcast(broadcast.EventBuildingUpgradeCompleted, map[string]any{
		"playerId":   playerID,
		"buildingId": buildingID,
		"level":      level,
	})
	return nil
}

// StartTraining 入队练兵。被拒时整体不变，返回拒绝原因。
func (m *Manager) StartTraining(playerID, buildingID string, troopType entity.TroopType, tier int, count int64) error {
	if count <= 0 {
		return ErrBadCount
	}
	if _, ok := catalog.GetTroop(troopType, tier); !ok {
		return ErrUnknownCatalog
	}
	now := m.now()
	var (
		reject error
		queue  *entity.TrainingQueue
		dueAt  time.Time
	)
	_, found := m.store.UpdatePlayer(playerID, func(p *entity.Player) {
		if findBuilding(p, buildingID) == nil {
			reject = ErrBuildingNotFound
			return
		}
		required, ok := catalog.RequiredCastleLevel(tier)
		if !ok || p.CastleLevel < required {
			reject = ErrTierLocked
			return
		}
		cost, _ := catalog.TrainingCost(troopType, tier, count)
		if !catalog.CanAfford(cost, p.Resources) {
			reject = ErrNotAffordable
			return
		}
		durSec, _ := catalog.TrainingTime(troopType, tier, count)

		p.Resources = catalog.SubtractResources(p.Resources, cost)
		q := &entity.TrainingQueue{
			ID:         utils.NextIDString(),
			TroopType:  troopType,
			Tier:       tier,
			Count:      count,
			StartTime:  now.UnixMilli(),
			Duration:   durSec * 1000,
			BuildingID: buildingID,
		}
		p.TrainingQueues = append(p.TrainingQueues, q)
		queue = q.Clone()
		dueAt = now.Add(time.Duration(durSec) * time.Second)
	})
	if !found {
		return ErrPlayerNotFound
	}
	if reject != nil {
		return reject
	}

	m.emit.Broadcast(broadcast.EventTrainingQueueAdded, map[string]any{
		"playerId": playerID,
		"queue":    queue,
	})
	m.sched.Schedule(dueAt, func() { _ = m.CompleteTraining(playerID, queue.ID) })
	return nil
}

// CompleteTraining 结算练兵队列：到期后并入 (type,tier) 的兵团记录并移除队列。
// 未知队列与未到期返回对应错误，不产生变化。
func (m *Manager) CompleteTraining(playerID, queueID string) error {
	nowMS := m.now().UnixMilli()
	var (
		reject error
		batch  *entity.TrainingQueue
	)
	_, found := m.store.UpdatePlayer(playerID, func(p *entity.Player) {
		idx := -1
		for i, q := range p.TrainingQueues {
			if q.ID == queueID {
				idx = i
				break
			}
		}
		if idx < 0 {
			reject = ErrQueueNotFound
			return
		}
		q := p.TrainingQueues[idx]
		if nowMS < q.StartTime+q.Duration {
			reject = ErrNotDue
			return
		}

		var unit *entity.TroopUnit
		for _, u := range p.Troops {
			if u.Type == q.TroopType && u.Tier == q.Tier {
				unit = u
				break
			}
		}
		if unit == nil {
			category, _ := catalog.CategoryOf(q.TroopType)
			unit = &entity.TroopUnit{Type: q.TroopType, Tier: q.Tier, Category: category}
			p.Troops = append(p.Troops, unit)
		}
		unit.Count += q.Count

		p.TrainingQueues = append(p.TrainingQueues[:idx], p.TrainingQueues[idx+1:]...)
		p.Power = catalog.PlayerPower(p)
		batch = q.Clone()
	})
	if !found {
		return ErrPlayerNotFound
	}
	if reject != nil {
		return reject
	}

	// 下行携带本批次（而不是累计兵团），消费方按增量累加。
	m.emit.Broadcast(broadcast.EventTroopTrainingCompleted, map[string]any{
		"playerId": playerID,
		"queueId":  queueID,
		"troop":    batch,
	})
	return nil
}

// UpdateResources 应用客户端上报的资源包，逐项在 0 处截断后整包替换。
// 产出推进由服务端负责，这里只为接口兼容保留。
func (m *Manager) UpdateResources(playerID string, res entity.Resources) error {
	after, ok := m.store.UpdatePlayer(playerID, func(p *entity.Player) {
		p.Resources = catalog.SubtractResources(res, entity.Resources{})
	})
	if !ok {
		return ErrPlayerNotFound
	}
	m.emit.SendToPlayer(playerID, broadcast.EventResourcesUpdated, after.Resources)
	return nil
}

// RunProduction 以固定节拍推进产出建筑，ctx 取消后返回。
func (m *Manager) RunProduction(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.tickProduction(interval)
		}
	}
}

func (m *Manager) tickProduction(elapsed time.Duration) {
	minutes := elapsed.Seconds() / 60

	players := m.store.Players()
	live := make(map[string]struct{}, len(players))
	for _, p := range players {
		live[p.ID] = struct{}{}
	}
	m.sweepCarry(live)

	for _, snapshot := range players {
		var food, wood, stone, iron float64
		for _, b := range snapshot.Buildings {
			info, ok := catalog.GetBuilding(b.Type)
			if !ok || info.Produces == "" {
				continue
			}
			gain := float64(info.ProductionRate) * float64(b.Level) * minutes
			switch info.Produces {
			case entity.ResourceFood:
				food += gain
			case entity.ResourceWood:
				wood += gain
			case entity.ResourceStone:
				stone += gain
			case entity.ResourceIron:
				iron += gain
			}
		}
		if food == 0 && wood == 0 && stone == 0 && iron == 0 {
			continue
		}

		gain := m.settleCarry(snapshot.ID, food, wood, stone, iron)
		if gain == (entity.Resources{}) {
			continue
		}
		after, ok := m.store.UpdatePlayer(snapshot.ID, func(p *entity.Player) {
			p.Resources = catalog.AddResources(p.Resources, gain)
		})
		if !ok {
			m.dropCarry(snapshot.ID)
			continue
		}
		m.emit.SendToPlayer(snapshot.ID, broadcast.EventResourcesUpdated, after.Resources)
	}
}

// settleCarry 把本拍产量计入残余，取出整数部分。
func (m *Manager) settleCarry(playerID string, food, wood, stone, iron float64) entity.Resources {
	m.carryMu.Lock()
	defer m.carryMu.Unlock()

	c, ok := m.carry[playerID]
	if !ok {
		c = &productionCarry{}
		m.carry[playerID] = c
	}
	c.food += food
	c.wood += wood
	c.stone += stone
	c.iron += iron

	take := func(v *float64) int64 {
		whole := int64(*v)
		*v -= float64(whole)
		return whole
	}
	return entity.Resources{
		Food:  take(&c.food),
		Wood:  take(&c.wood),
		Stone: take(&c.stone),
		Iron:  take(&c.iron),
	}
}

func (m *Manager) dropCarry(playerID string) {
	m.carryMu.Lock()
	delete(m.carry, playerID)
	m.carryMu.Unlock()
}

// sweepCarry 清掉已不在世界里的玩家残余，避免随会话来去累积。
func (m *Manager) sweepCarry(live map[string]struct{}) {
	m.carryMu.Lock()
	defer m.carryMu.Unlock()
	for id := range m.carry {
		if _, ok := live[id]; !ok {
			delete(m.carry, id)
		}
	}
}

func findBuilding(p *entity.Player, buildingID string) *entity.Building {
	for _, b := range p.Buildings {
		if b.ID == buildingID {
			return b
		}
	}
	return nil
}

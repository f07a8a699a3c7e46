package lifecycle

import (
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"CastleRealm/internal/game/broadcast"
	"CastleRealm/internal/game/catalog"
	"CastleRealm/internal/game/entity"
	"CastleRealm/internal/game/store"
	"CastleRealm/modules/kit/logx"
)

type recordedEvent struct {
	event    string
	data     any
	playerID string // 单播时的目标
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeEmitter) Broadcast(event string, data any, exclude ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{event: event, data: data})
}

func (f *fakeEmitter) SendToPlayer(playerID, event string, data any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{event: event, data: data, playerID: playerID})
}

func (f *fakeEmitter) last() (recordedEvent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return recordedEvent{}, false
	}
	return f.events[len(f.events)-1], true
}

func (f *fakeEmitter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func newTestManager(t *testing.T) (*Manager, *store.Store, *fakeEmitter) {
	t.Helper()
	log := logx.NewZapLogger(zap.NewNop())
	s := store.New()
	sched := NewScheduler(log)
	t.Cleanup(sched.Stop)
	emit := &fakeEmitter{}
	return NewManager(s, sched, emit, log), s, emit
}

func TestStartUpgrade_服务端重算开销并扣费(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")

	m.StartUpgrade("p1", "farm_1")

	p, _ := s.GetPlayer("p1")
	// 农场 1 级升 2 级：基础 {50,80,30,20} × 1.5。
	want := entity.Resources{Food: 2000 - 75, Wood: 2000 - 120, Stone: 1000 - 45, Iron: 500 - 30, Gold: 100}
	if p.Resources != want {
		t.Fatalf("resources = %+v, want %+v", p.Resources, want)
	}

	var farm *entity.Building
	for _, b := range p.Buildings {
		if b.ID == "farm_1" {
			farm = b
		}
	}
	if farm.Upgrading == nil || farm.Upgrading.TargetLevel != 2 {
		t.Fatalf("upgrading = %+v", farm.Upgrading)
	}
	if farm.Upgrading.Duration != 19*1000 {
		t.Fatalf("duration = %d, want 19000", farm.Upgrading.Duration)
	}

	ev, ok := emit.last()
	if !ok || ev.event != broadcast.EventBuildingUpgradeStarted {
		t.Fatalf("event = %+v", ev)
	}
}

func TestStartUpgrade_付不起或重复升级时不产生变化(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")
	s.UpdatePlayer("p1", func(p *entity.Player) {
		p.Resources = entity.Resources{Food: 10}
	})

	m.StartUpgrade("p1", "farm_1")

	p, _ := s.GetPlayer("p1")
	if p.Resources != (entity.Resources{Food: 10}) {
		t.Fatalf("付不起仍被扣费: %+v", p.Resources)
	}
	for _, b := range p.Buildings {
		if b.Upgrading != nil {
			t.Fatal("付不起仍进入升级")
		}
	}
	if emit.count() != 0 {
		t.Fatal("失败的升级不应广播")
	}

	// 在途升级未结算前重复发起同样无效。
	s.UpdatePlayer("p1", func(p *entity.Player) {
		p.Resources = catalog.InitialResources()
	})
	m.StartUpgrade("p1", "farm_1")
	m.StartUpgrade("p1", "farm_1")
	if emit.count() != 1 {
		t.Fatalf("重复发起广播了 %d 次", emit.count())
	}

	// 不存在的建筑是空操作。
	m.StartUpgrade("p1", "missing")
	if emit.count() != 1 {
		t.Fatal("不存在的建筑不应广播")
	}
}

func TestCompleteUpgrade_未到期是空操作且可重复触发(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")

	base := time.Now()
	m.now = func() time.Time { return base }
	m.StartUpgrade("p1", "farm_1")

	// 未到期：客户端提前发 complete 不生效。
	m.CompleteUpgrade("p1", "farm_1")
	p, _ := s.GetPlayer("p1")
	for _, b := range p.Buildings {
		if b.ID == "farm_1" && b.Level != 1 {
			t.Fatal("未到期不应结算")
		}
	}

	m.now = func() time.Time { return base.Add(20 * time.Second) }
	m.CompleteUpgrade("p1", "farm_1")
	m.CompleteUpgrade("p1", "farm_1") // 定时器与客户端提示重复触发

	p, _ = s.GetPlayer("p1")
	var farm *entity.Building
	for _, b := range p.Buildings {
		if b.ID == "farm_1" {
			farm = b
		}
	}
	if farm.Level != 2 || farm.Upgrading != nil {
		t.Fatalf("farm = %+v", farm)
	}
	// 战力：100 + 建筑等级和 ×10 = 100 + (1+2+1+1)×10。
	if p.Power != 150 {
		t.Fatalf("power = %d, want 150", p.Power)
	}

	ev, _ := emit.last()
	if ev.event != broadcast.EventBuildingUpgradeCompleted {
		t.Fatalf("event = %+v", ev)
	}
}

func TestCompleteUpgrade_城堡升级同步玩家等级(t *testing.T) {
	m, s, _ := newTestManager(t)
	s.AddPlayer("p1", "alice")

	base := time.Now()
	m.now = func() time.Time { return base }
	m.StartUpgrade("p1", "castle_main")

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	m.CompleteUpgrade("p1", "castle_main")

	p, _ := s.GetPlayer("p1")
	if p.CastleLevel != 2 {
		t.Fatalf("castleLevel = %d", p.CastleLevel)
	}
}

func TestCompleteUpgrade_玩家离线后定时器触发是空操作(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")

	base := time.Now()
	m.now = func() time.Time { return base }
	m.StartUpgrade("p1", "farm_1")

	// 定时器到期前掉线：结算回调照常触发，但不应广播也不应崩。
	s.RemovePlayer("p1")
	m.now = func() time.Time { return base.Add(20 * time.Second) }
	before := emit.count()
	if err := m.CompleteUpgrade("p1", "farm_1"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v", err)
	}
	if emit.count() != before {
		t.Fatal("离线玩家不应产生结算广播")
	}
}

func TestStartTraining_城堡等级门槛拒绝时不扣费(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")

	// 二阶兵要求城堡 4 级，新玩家只有 1 级。
	m.StartTraining("p1", "barracks_1", entity.TroopShieldSoldier, 2, 5)

	p, _ := s.GetPlayer("p1")
	if p.Resources != catalog.InitialResources() {
		t.Fatalf("被拒的训练仍扣费: %+v", p.Resources)
	}
	if len(p.TrainingQueues) != 0 || emit.count() != 0 {
		t.Fatal("被拒的训练不应入队或广播")
	}
}

func TestStartTraining_入队并扣费(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")

	m.StartTraining("p1", "barracks_1", entity.TroopShieldSoldier, 1, 10)

	p, _ := s.GetPlayer("p1")
	if len(p.TrainingQueues) != 1 {
		t.Fatalf("队列数 = %d", len(p.TrainingQueues))
	}
	q := p.TrainingQueues[0]
	if q.TroopType != entity.TroopShieldSoldier || q.Count != 10 || q.Duration != 300*1000 {
		t.Fatalf("queue = %+v", q)
	}
	// 一阶盾兵 {50,20,10,5} × 10。
	want := entity.Resources{Food: 1500, Wood: 1800, Stone: 900, Iron: 450, Gold: 100}
	if p.Resources != want {
		t.Fatalf("resources = %+v, want %+v", p.Resources, want)
	}
	ev, _ := emit.last()
	if ev.event != broadcast.EventTrainingQueueAdded {
		t.Fatalf("event = %+v", ev)
	}

	// 无效兵种与非正数量直接忽略。
	m.StartTraining("p1", "barracks_1", "slime", 1, 10)
	m.StartTraining("p1", "barracks_1", entity.TroopShieldSoldier, 1, 0)
	if emit.count() != 1 {
		t.Fatal("无效训练请求不应广播")
	}
}

func TestCompleteTraining_到期合并兵团并移除队列(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")

	base := time.Now()
	m.now = func() time.Time { return base }
	m.StartTraining("p1", "barracks_1", entity.TroopShieldSoldier, 1, 10)
	p, _ := s.GetPlayer("p1")
	queueID := p.TrainingQueues[0].ID

	// 未到期的提示无效。
	m.CompleteTraining("p1", queueID)
	p, _ = s.GetPlayer("p1")
	if len(p.Troops) != 0 {
		t.Fatal("未到期不应结算")
	}

	m.now = func() time.Time { return base.Add(301 * time.Second) }
	m.CompleteTraining("p1", queueID)
	m.CompleteTraining("p1", queueID) // 幂等

	p, _ = s.GetPlayer("p1")
	if len(p.TrainingQueues) != 0 {
		t.Fatal("结算后队列应移除")
	}
	if len(p.Troops) != 1 || p.Troops[0].Count != 10 || p.Troops[0].Category != entity.CategoryInfantry {
		t.Fatalf("troops = %+v", p.Troops)
	}
	// 战力：100 + 4 建筑 ×10 + 1 阶 ×10 兵。
	if p.Power != 150 {
		t.Fatalf("power = %d, want 150", p.Power)
	}

	ev, _ := emit.last()
	if ev.event != broadcast.EventTroopTrainingCompleted {
		t.Fatalf("event = %+v", ev)
	}

	// 二次训练并入同一 (type,tier) 记录。
	m.StartTraining("p1", "barracks_1", entity.TroopShieldSoldier, 1, 5)
	p, _ = s.GetPlayer("p1")
	m.now = func() time.Time { return base.Add(1000 * time.Second) }
	m.CompleteTraining("p1", p.TrainingQueues[0].ID)
	p, _ = s.GetPlayer("p1")
	if len(p.Troops) != 1 || p.Troops[0].Count != 15 {
		t.Fatalf("troops = %+v", p.Troops)
	}

	// 下行是本批次而非累计：消费方按增量累加，携带累计值会重复计数。
	ev, _ = emit.last()
	data := ev.data.(map[string]any)
	batch := data["troop"].(*entity.TrainingQueue)
	if batch.Count != 5 || batch.TroopType != entity.TroopShieldSoldier {
		t.Fatalf("batch = %+v, want count=5", batch)
	}
}

func TestStartTraining_付不起时不扣费不入队(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")

	// 一阶盾兵单价 {50,20,10,5}，100 个远超初始资源。
	if err := m.StartTraining("p1", "barracks_1", entity.TroopShieldSoldier, 1, 100); !errors.Is(err, ErrNotAffordable) {
		t.Fatalf("err = %v", err)
	}

	p, _ := s.GetPlayer("p1")
	if p.Resources != catalog.InitialResources() {
		t.Fatalf("resources = %+v", p.Resources)
	}
	if len(p.TrainingQueues) != 0 {
		t.Fatal("被拒的训练不应入队")
	}
	if emit.count() != 0 {
		t.Fatal("被拒的训练不应广播")
	}
}

func TestLifecycle_拒绝原因按错误码区分(t *testing.T) {
	m, s, _ := newTestManager(t)
	s.AddPlayer("p1", "alice")

	if err := m.StartUpgrade("ghost", "farm_1"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err = %v", err)
	}
	if err := m.StartUpgrade("p1", "missing"); !errors.Is(err, ErrBuildingNotFound) {
		t.Fatalf("err = %v", err)
	}
	if err := m.StartTraining("p1", "barracks_1", entity.TroopShieldSoldier, 2, 5); !errors.Is(err, ErrTierLocked) {
		t.Fatalf("err = %v", err)
	}
	if err := m.StartTraining("p1", "barracks_1", entity.TroopShieldSoldier, 1, 0); !errors.Is(err, ErrBadCount) {
		t.Fatalf("err = %v", err)
	}
	if err := m.CompleteTraining("p1", "no-such-queue"); !errors.Is(err, ErrQueueNotFound) {
		t.Fatalf("err = %v", err)
	}

	base := time.Now()
	m.now = func() time.Time { return base }
	if err := m.StartUpgrade("p1", "farm_1"); err != nil {
		t.Fatalf("err = %v", err)
	}
	if err := m.StartUpgrade("p1", "farm_1"); !errors.Is(err, ErrAlreadyUpgrading) {
		t.Fatalf("err = %v", err)
	}
	if err := m.CompleteUpgrade("p1", "farm_1"); !errors.Is(err, ErrNotDue) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateResources_逐项在零处截断(t *testing.T) {
	m, s, emit := newTestManager(t)
	s.AddPlayer("p1", "alice")

	m.UpdateResources("p1", entity.Resources{Food: 50, Wood: -10, Stone: 7, Iron: 0, Gold: -1})

	p, _ := s.GetPlayer("p1")
	want := entity.Resources{Food: 50, Wood: 0, Stone: 7, Iron: 0, Gold: 0}
	if p.Resources != want {
		t.Fatalf("resources = %+v, want %+v", p.Resources, want)
	}
	ev, _ := emit.last()
	if ev.event != broadcast.EventResourcesUpdated || ev.playerID != "p1" {
		t.Fatalf("event = %+v", ev)
	}
}

func TestTickProduction_小数残余精确贴合每分钟产率(t *testing.T) {
	m, s, _ := newTestManager(t)
	s.AddPlayer("p1", "alice")
	before, _ := s.GetPlayer("p1")

	// 农场与伐木场 1 级各产 100/分钟 ≈ 1.667/秒，3 秒应恰好累计 5。
	for i := 0; i < 3; i++ {
		m.tickProduction(time.Second)
	}

	p, _ := s.GetPlayer("p1")
	if got := p.Resources.Food - before.Resources.Food; got != 5 {
		t.Fatalf("3 秒产粮 %d, want 5", got)
	}
	if got := p.Resources.Wood - before.Resources.Wood; got != 5 {
		t.Fatalf("3 秒产木 %d, want 5", got)
	}
	// 没有石矿/铁矿建筑时对应资源不动。
	if p.Resources.Stone != before.Resources.Stone || p.Resources.Iron != before.Resources.Iron {
		t.Fatal("无产出建筑的资源被改动")
	}
}

func TestTickProduction_玩家移除后残余被回收(t *testing.T) {
	m, s, _ := newTestManager(t)
	s.AddPlayer("p1", "alice")

	m.tickProduction(time.Second)
	m.carryMu.Lock()
	_, ok := m.carry["p1"]
	m.carryMu.Unlock()
	if !ok {
		t.Fatal("产出后应有残余记录")
	}

	s.RemovePlayer("p1")
	m.tickProduction(time.Second)

	m.carryMu.Lock()
	_, ok = m.carry["p1"]
	m.carryMu.Unlock()
	if ok {
		t.Fatal("玩家移除后残余记录应随拍清理")
	}
}

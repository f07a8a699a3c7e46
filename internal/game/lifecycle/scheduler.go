package lifecycle

import (
	"container/heap"
	"sync"
	"time"

	"go.uber.org/zap"

	"CastleRealm/modules/kit/logx"
)

// Scheduler 是服务端权威的定时器：升级/训练的到期结算都由它触发，
// 客户端发来的 complete 只是提示。单 goroutine 顺序执行回调。
type Scheduler struct {
	mu    sync.Mutex
	items timerHeap
	wake  chan struct{}
	done  chan struct{}
	once  sync.Once
	log   logx.Logger
}

type timerItem struct {
	dueAt time.Time
	fn    func()
}

type timerHeap []*timerItem

func (h timerHeap) Len() int            { return len(h) }
func (h timerHeap) Less(i, j int) bool  { return h[i].dueAt.Before(h[j].dueAt) }
func (h timerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)         { *h = append(*h, x.(*timerItem)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

func NewScheduler(log logx.Logger) *Scheduler {
	s := &Scheduler{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		log:  log,
	}
	go s.run()
	return s
}

// Schedule 注册一个到期回调。每个条目至多触发一次，Stop 后丢弃。
func (s *Scheduler) Schedule(dueAt time.Time, fn func()) {
	s.mu.Lock()
	heap.Push(&s.items, &timerItem{dueAt: dueAt, fn: fn})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *Scheduler) run() {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		s.mu.Lock()
		var wait time.Duration
		if s.items.Len() == 0 {
			wait = time.Hour
		} else {
			wait = time.Until(s.items[0].dueAt)
		}
		s.mu.Unlock()

		if wait > 0 {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(wait)
			select {
			case <-timer.C:
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}

		for _, fn := range s.popDue(time.Now()) {
			s.invoke(fn)
		}

		select {
		case <-s.done:
			return
		default:
		}
	}
}

// invoke 兜住回调的 panic，单个坏回调不拖垮整个定时循环。
func (s *Scheduler) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("定时回调 panic", zap.Any("panic", r))
		}
	}()
	fn()
}

func (s *Scheduler) popDue(now time.Time) []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []func()
	for s.items.Len() > 0 && !s.items[0].dueAt.After(now) {
		due = append(due, heap.Pop(&s.items).(*timerItem).fn)
	}
	return due
}

package lifecycle

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"CastleRealm/modules/kit/logx"
)

func TestScheduler_按到期先后触发(t *testing.T) {
	s := NewScheduler(logx.NewZapLogger(zap.NewNop()))
	defer s.Stop()

	fired := make(chan string, 2)
	now := time.Now()
	// 故意乱序注册。
	s.Schedule(now.Add(60*time.Millisecond), func() { fired <- "late" })
	s.Schedule(now.Add(20*time.Millisecond), func() { fired <- "early" })

	deadline := time.After(2 * time.Second)
	var got []string
	for len(got) < 2 {
		select {
		case v := <-fired:
			got = append(got, v)
		case <-deadline:
			t.Fatalf("等待触发超时，已触发 %v", got)
		}
	}
	if got[0] != "early" || got[1] != "late" {
		t.Fatalf("触发顺序 = %v", got)
	}
}

func TestScheduler_回调panic不中断后续触发(t *testing.T) {
	s := NewScheduler(logx.NewZapLogger(zap.NewNop()))
	defer s.Stop()

	fired := make(chan struct{}, 1)
	now := time.Now()
	s.Schedule(now.Add(10*time.Millisecond), func() { panic("boom") })
	s.Schedule(now.Add(30*time.Millisecond), func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("坏回调之后的条目未触发")
	}
}

func TestScheduler_Stop后不再触发(t *testing.T) {
	s := NewScheduler(logx.NewZapLogger(zap.NewNop()))
	fired := make(chan struct{}, 1)
	s.Schedule(time.Now().Add(50*time.Millisecond), func() { fired <- struct{}{} })
	s.Stop()

	select {
	case <-fired:
		t.Fatal("Stop 后仍触发")
	case <-time.After(200 * time.Millisecond):
	}
}

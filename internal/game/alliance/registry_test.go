package alliance

import (
	"testing"

	"go.uber.org/zap"

	"CastleRealm/internal/game/store"
	"CastleRealm/modules/kit/logx"
)

func newTestRegistry(t *testing.T) (*Registry, *store.Store) {
	t.Helper()
	s := store.New()
	return NewRegistry(s, logx.NewZapLogger(zap.NewNop())), s
}

func TestCreate_Tag长度校验(t *testing.T) {
	r, s := newTestRegistry(t)
	s.AddPlayer("p1", "alice")

	for _, tag := range []string{"", "AB", "ABCDEF"} {
		if a := r.Create("Knights", tag, "p1"); a != nil {
			t.Fatalf("tag %q 不应通过", tag)
		}
	}
	if len(s.Alliances()) != 0 {
		t.Fatal("非法 tag 不应留下联盟")
	}

	a := r.Create("Knights", "KNT", "p1")
	if a == nil || a.Tag != "KNT" || a.LeaderID != "p1" {
		t.Fatalf("a = %+v", a)
	}
	// 多字节字符按 rune 计数。
	s.AddPlayer("p2", "bob")
	if a := r.Create("骑士团", "骑士团", "p2"); a == nil {
		t.Fatal("三个汉字的 tag 应通过")
	}
}

func TestCreate_创建者已有联盟时失败(t *testing.T) {
	r, s := newTestRegistry(t)
	s.AddPlayer("p1", "alice")

	if a := r.Create("First", "FST", "p1"); a == nil {
		t.Fatal("首次建盟应成功")
	}
	if a := r.Create("Second", "SND", "p1"); a != nil {
		t.Fatal("已有联盟者再建盟应失败")
	}
	if len(s.Alliances()) != 1 {
		t.Fatalf("联盟数 = %d", len(s.Alliances()))
	}
}

func TestJoin_互斥与存在性(t *testing.T) {
	r, s := newTestRegistry(t)
	s.AddPlayer("p1", "alice")
	s.AddPlayer("p2", "bob")
	a := r.Create("Knights", "KNT", "p1")

	joined, ok := r.Join("p2", a.ID)
	if !ok || len(joined.Members) != 2 {
		t.Fatalf("joined = %+v ok = %v", joined, ok)
	}
	if _, ok := r.Join("p2", a.ID); ok {
		t.Fatal("已入盟玩家再次加入应失败")
	}
	if _, ok := r.Join("p1", "missing"); ok {
		t.Fatal("不存在的联盟应失败")
	}
	if _, ok := r.Join("ghost", a.ID); ok {
		t.Fatal("不存在的玩家应失败")
	}
}

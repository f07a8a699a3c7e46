package entity

// Clone 系列：实体存储对外只交出深拷贝，避免调用方绕开锁读写内部切片。

func (b *Building) Clone() *Building {
	if b == nil {
		return nil
	}
	out := *b
	if b.Upgrading != nil {
		up := *b.Upgrading
		out.Upgrading = &up
	}
	return &out
}

func (t *TroopUnit) Clone() *TroopUnit {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}

func (q *TrainingQueue) Clone() *TrainingQueue {
	if q == nil {
		return nil
	}
	out := *q
	return &out
}

func (m *March) Clone() *March {
	if m == nil {
		return nil
	}
	out := *m
	out.Troops = make([]*TroopUnit, 0, len(m.Troops))
	for _, t := range m.Troops {
		out.Troops = append(out.Troops, t.Clone())
	}
	return &out
}

func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Buildings = make([]*Building, 0, len(p.Buildings))
	for _, b := range p.Buildings {
		out.Buildings = append(out.Buildings, b.Clone())
	}
	out.Troops = make([]*TroopUnit, 0, len(p.Troops))
	for _, t := range p.Troops {
		out.Troops = append(out.Troops, t.Clone())
	}
	out.TrainingQueues = make([]*TrainingQueue, 0, len(p.TrainingQueues))
	for _, q := range p.TrainingQueues {
		out.TrainingQueues = append(out.TrainingQueues, q.Clone())
	}
	out.Marches = make([]*March, 0, len(p.Marches))
	for _, m := range p.Marches {
		out.Marches = append(out.Marches, m.Clone())
	}
	return &out
}

func (m *Monster) Clone() *Monster {
	if m == nil {
		return nil
	}
	out := *m
	return &out
}

func (r *ResourcePlot) Clone() *ResourcePlot {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

func (a *Alliance) Clone() *Alliance {
	if a == nil {
		return nil
	}
	out := *a
	out.Members = append([]string(nil), a.Members...)
	if a.Fort != nil {
		fort := *a.Fort
		out.Fort = &fort
	}
	out.Turrets = make([]*AllianceTurret, 0, len(a.Turrets))
	for _, t := range a.Turrets {
		turret := *t
		out.Turrets = append(out.Turrets, &turret)
	}
	if a.SuperMine != nil {
		mine := *a.SuperMine
		out.SuperMine = &mine
	}
	return &out
}

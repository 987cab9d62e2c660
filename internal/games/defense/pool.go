package defense

// Handle refers to an enemy in an EnemyPool. A handle stays valid until the
// enemy it was issued for is removed; after that it resolves to nothing,
// even if the slot is reused.
type Handle struct {
	Index int
	Gen   uint32
}

type slot struct {
	gen   uint32
	live  bool
	enemy Enemy
}

// EnemyPool stores live enemies in reusable slots with generation counters.
type EnemyPool struct {
	slots []slot
	free  []int
	count int
}

// Spawn adds an enemy and returns its handle.
func (p *EnemyPool) Spawn(e Enemy) Handle {
	var i int
	if n := len(p.free); n > 0 {
		i = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		i = len(p.slots)
		p.slots = append(p.slots, slot{})
	}

	s := &p.slots[i]
	s.live = true
	s.enemy = e
	p.count++
	return Handle{Index: i, Gen: s.gen}
}

// Get resolves a handle. ok is false once the enemy has been removed.
func (p *EnemyPool) Get(h Handle) (*Enemy, bool) {
	if h.Index < 0 || h.Index >= len(p.slots) {
		return nil, false
	}
	s := &p.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return nil, false
	}
	return &s.enemy, true
}

// Remove frees the slot behind h. Removing a stale handle is a no-op.
func (p *EnemyPool) Remove(h Handle) {
	if _, ok := p.Get(h); !ok {
		return
	}
	s := &p.slots[h.Index]
	s.live = false
	s.gen++
	s.enemy = Enemy{}
	p.free = append(p.free, h.Index)
	p.count--
}

// Len returns the number of live enemies.
func (p *EnemyPool) Len() int {
	return p.count
}

// Each calls fn for every live enemy in slot order.
func (p *EnemyPool) Each(fn func(h Handle, e *Enemy)) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.live {
			fn(Handle{Index: i, Gen: s.gen}, &s.enemy)
		}
	}
}

// Clone returns a deep copy of the pool.
func (p EnemyPool) Clone() EnemyPool {
	clone := EnemyPool{count: p.count}
	clone.slots = append([]slot(nil), p.slots...)
	clone.free = append([]int(nil), p.free...)
	return clone
}

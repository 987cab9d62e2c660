package snake

// Snapshot is a flat copy of the match state for determinism checks.
type Snapshot struct {
	Tick    int
	Score   int
	Eaten   int
	Length  int
	HeadX   int
	HeadY   int
	Heading Direction
	FoodX   int
	FoodY   int
	Won     bool
	Lost    bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	head := s.Head()
	return Snapshot{
		Tick:    s.Tick,
		Score:   s.Score,
		Eaten:   s.Eaten,
		Length:  len(s.Body),
		HeadX:   head.X,
		HeadY:   head.Y,
		Heading: s.Heading,
		FoodX:   s.Food.X,
		FoodY:   s.Food.Y,
		Won:     s.Won,
		Lost:    s.Lost,
	}
}

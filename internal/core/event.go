package core

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventNone EventType = iota
	EventBrickHit
	EventBrickDestroyed
	EventLifeLost
	EventWon
	EventLost
	EventEnemySpawned
	EventEnemyDefeated
	EventEnemyEscaped
	EventTowerPlaced
	EventProjectileFired
	EventWaveStarted
	EventFoodEaten
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventBrickHit:
		return "brick_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventEnemyEscaped:
		return "enemy_escaped"
	case EventTowerPlaced:
		return "tower_placed"
	case EventProjectileFired:
		return "projectile_fired"
	case EventWaveStarted:
		return "wave_started"
	case EventFoodEaten:
		return "food_eaten"
	default:
		return "none"
	}
}

// Event is emitted by a simulation tick. Value carries an event-specific
// number (points awarded, reward credited, wave index, ...).
type Event struct {
	Type  EventType
	Value int
}

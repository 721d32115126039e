// internal/component/game_state.go
package component

// Phase — фаза симуляции
type Phase int

const (
	Running    Phase = iota
	LevelingUp       // модальное окно распределения очков, мир заморожен
	GameOver         // терминальная фаза
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case LevelingUp:
		return "leveling_up"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// internal/component/hud.go
package component

// HUD is the read-only snapshot handed to the UI once per frame.
type HUD struct {
	HP            int
	MaxHP         int
	Level         int
	XP            int
	XPToNextLevel int
	Score         int
	UnspentPoints int
	Attack        int
	BaseSpeed     float64
	Magic         int
	Phase         Phase
}

// HealthRatio is HP/MaxHP in [0, 1].
func (h HUD) HealthRatio() float64 {
	if h.MaxHP <= 0 {
		return 0
	}
	return float64(h.HP) / float64(h.MaxHP)
}

// XPRatio is XP/XPToNextLevel clamped to [0, 1].
func (h HUD) XPRatio() float64 {
	if h.XPToNextLevel <= 0 {
		return 0
	}
	r := float64(h.XP) / float64(h.XPToNextLevel)
	if r > 1 {
		return 1
	}
	return r
}

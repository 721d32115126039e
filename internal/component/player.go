// internal/component/player.go
package component

// Progression хранит прогресс игрока, который переживает сессию.
// It is exactly the persisted save record.
type Progression struct {
	Level         int
	XP            int
	XPToNextLevel int
	UnspentPoints int
	Attack        int     // damage per shot
	MaxHP         int
	BaseSpeed     float64 // pixels per tick
	Magic         int     // ms of manual fire cooldown, lower is better
}

// Attribute is one of the stats a level-up point can be spent on.
type Attribute string

const (
	AttributeAttack Attribute = "attack"
	AttributeHealth Attribute = "health"
	AttributeSpeed  Attribute = "speed"
	AttributeMagic  Attribute = "magic"
)

// Attributes lists the spendable attributes in modal order.
var Attributes = []Attribute{AttributeAttack, AttributeHealth, AttributeSpeed, AttributeMagic}

// ParseAttribute maps a UI action name to an Attribute.
func ParseAttribute(s string) (Attribute, bool) {
	for _, a := range Attributes {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

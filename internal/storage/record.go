// Package storage persists player progression between sessions.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
)

// Store is the persistence collaborator. Load reports ok=false when nothing has
// been saved yet.
type Store interface {
	Save(ctx context.Context, p component.Progression) error
	Load(ctx context.Context) (p component.Progression, ok bool, err error)
}

// ErrUnsupportedFormat is returned for save files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported save file format")

// Field names of the save record.
const (
	FieldLevel         = "level"
	FieldXP            = "xp"
	FieldXPToNextLevel = "xpToNextLevel"
	FieldUnspentPoints = "unspentPoints"
	FieldAttack        = "attack"
	FieldMaxHP         = "maxHp"
	FieldBaseSpeed     = "baseSpeed"
	FieldMagic         = "magic"
)

// DefaultProgression is the progression of a brand new character.
func DefaultProgression() component.Progression {
	return component.Progression{
		Level:         config.PlayerStartLevel,
		XP:            0,
		XPToNextLevel: config.PlayerStartXPToNext,
		UnspentPoints: 0,
		Attack:        config.PlayerBaseAttack,
		MaxHP:         config.PlayerBaseHealth,
		BaseSpeed:     config.PlayerBaseSpeed,
		Magic:         config.PlayerBaseMagic,
	}
}

// EncodeFields flattens a progression into the save record layout.
func EncodeFields(p component.Progression) map[string]any {
	return map[string]any{
		FieldLevel:         p.Level,
		FieldXP:            p.XP,
		FieldXPToNextLevel: p.XPToNextLevel,
		FieldUnspentPoints: p.UnspentPoints,
		FieldAttack:        p.Attack,
		FieldMaxHP:         p.MaxHP,
		FieldBaseSpeed:     p.BaseSpeed,
		FieldMagic:         p.Magic,
	}
}

// DecodeFields rebuilds a progression field by field. A missing, non-numeric,
// zero or negative value falls back to that field's default; the rest of the
// record is still used.
func DecodeFields(fields map[string]any) component.Progression {
	def := DefaultProgression()
	return component.Progression{
		Level:         intField(fields, FieldLevel, def.Level),
		XP:            intField(fields, FieldXP, def.XP),
		XPToNextLevel: intField(fields, FieldXPToNextLevel, def.XPToNextLevel),
		UnspentPoints: intField(fields, FieldUnspentPoints, def.UnspentPoints),
		Attack:        intField(fields, FieldAttack, def.Attack),
		MaxHP:         intField(fields, FieldMaxHP, def.MaxHP),
		BaseSpeed:     floatField(fields, FieldBaseSpeed, def.BaseSpeed),
		Magic:         intField(fields, FieldMagic, def.Magic),
	}
}

// Normalize applies the same per-field guards to an already typed progression.
func Normalize(p component.Progression) component.Progression {
	return DecodeFields(EncodeFields(p))
}

func intField(fields map[string]any, key string, def int) int {
	v, ok := number(fields[key])
	if !ok || v <= 0 || v > math.MaxInt32 {
		return def
	}
	return int(v)
}

func floatField(fields map[string]any, key string, def float64) float64 {
	v, ok := number(fields[key])
	if !ok || v <= 0 {
		return def
	}
	return v
}

func number(raw any) (float64, bool) {
	var v float64
	switch n := raw.(type) {
	case int:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint64:
		v = float64(n)
	case float32:
		v = float64(n)
	case float64:
		v = n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

package storage

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-survivor/internal/component"
)

func TestDefaultProgression(t *testing.T) {
	assert.Equal(t, component.Progression{
		Level:         1,
		XP:            0,
		XPToNextLevel: 10,
		UnspentPoints: 0,
		Attack:        10,
		MaxHP:         100,
		BaseSpeed:     5,
		Magic:         500,
	}, DefaultProgression())
}

func TestDecodeFieldsMissingUsesDefaults(t *testing.T) {
	assert.Equal(t, DefaultProgression(), DecodeFields(map[string]any{}))
	assert.Equal(t, DefaultProgression(), DecodeFields(nil))
}

func TestDecodeFieldsPerFieldGuard(t *testing.T) {
	p := DecodeFields(map[string]any{
		FieldLevel:         4,
		FieldXP:            "lots",       // wrong type
		FieldXPToNextLevel: 33.0,
		FieldUnspentPoints: -2,           // negative
		FieldAttack:        json.Number("16"),
		FieldMaxHP:         0,            // zero
		FieldBaseSpeed:     math.NaN(),   // not a number
		FieldMagic:         int64(400),
	})
	assert.Equal(t, component.Progression{
		Level:         4,
		XP:            0,
		XPToNextLevel: 33,
		UnspentPoints: 0,
		Attack:        16,
		MaxHP:         100,
		BaseSpeed:     5,
		Magic:         400,
	}, p)
}

func TestEncodeFieldsKeys(t *testing.T) {
	fields := EncodeFields(DefaultProgression())
	assert.Len(t, fields, 8)
	for _, key := range []string{"level", "xp", "xpToNextLevel", "unspentPoints", "attack", "maxHp", "baseSpeed", "magic"} {
		assert.Contains(t, fields, key)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := component.Progression{Level: 3, XP: 4, XPToNextLevel: 22, UnspentPoints: 7, Attack: 12, MaxHP: 140, BaseSpeed: 6.5, Magic: 450}
	require.NoError(t, s.Save(ctx, want))

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, s.Saves())
}

// genProgression draws a progression every field of which survives the guards.
func genProgression(t *rapid.T) component.Progression {
	return component.Progression{
		Level:         rapid.IntRange(1, 500).Draw(t, "level"),
		XP:            rapid.IntRange(0, 100000).Draw(t, "xp"),
		XPToNextLevel: rapid.IntRange(1, 1000000).Draw(t, "next"),
		UnspentPoints: rapid.IntRange(0, 1000).Draw(t, "points"),
		Attack:        rapid.IntRange(1, 10000).Draw(t, "attack"),
		MaxHP:         rapid.IntRange(1, 100000).Draw(t, "maxHp"),
		BaseSpeed:     5 + 0.5*float64(rapid.IntRange(0, 200).Draw(t, "speedPoints")),
		Magic:         rapid.IntRange(1, 5000).Draw(t, "magic"),
	}
}

func TestPropertyEncodeDecodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genProgression(t)
		if got := DecodeFields(EncodeFields(p)); got != p {
			t.Fatalf("round trip changed %+v into %+v", p, got)
		}
	})
}

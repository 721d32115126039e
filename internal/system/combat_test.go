package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivor/internal/event"
)

func TestAutoFireTargetsNearestEnemy(t *testing.T) {
	w, d, rec := newTestWorld()
	s := NewCombatSystem(w, d, true, 1000)
	cx, cy := w.Companion.Center()

	w.Enemies = append(w.Enemies, enemyCentredAt(cx+300, cy), enemyCentredAt(cx, cy-80))

	s.Update(16)
	require.Len(t, w.Projectiles, 1)
	proj := w.Projectiles[0]
	assert.InDelta(t, 0, proj.VX, 1e-9)
	assert.InDelta(t, -12, proj.VY, 1e-9)
	assert.Equal(t, w.Player.Attack, proj.Damage)
	assert.Equal(t, 1000.0, w.Companion.FireCooldown)
	assert.Equal(t, 1, rec.count(event.ProjectileFired))
}

func TestAutoFireTieGoesToFirstEnemy(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, d, true, 1000)
	cx, cy := w.Companion.Center()

	w.Enemies = append(w.Enemies, enemyCentredAt(cx+100, cy), enemyCentredAt(cx-100, cy))

	s.Update(16)
	require.Len(t, w.Projectiles, 1)
	assert.InDelta(t, 12, w.Projectiles[0].VX, 1e-9)
}

func TestAutoFireWaitsForCooldown(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, d, true, 1000)
	cx, cy := w.Companion.Center()
	w.Enemies = append(w.Enemies, enemyCentredAt(cx+100, cy))

	s.Update(16)
	s.Update(500)
	assert.Len(t, w.Projectiles, 1)

	s.Update(500)
	assert.Len(t, w.Projectiles, 2)
}

func TestAutoFireStaysReadyWithoutEnemies(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, d, true, 1000)

	s.Update(16)
	assert.Empty(t, w.Projectiles)
	assert.LessOrEqual(t, w.Companion.FireCooldown, 0.0)

	cx, cy := w.Companion.Center()
	w.Enemies = append(w.Enemies, enemyCentredAt(cx, cy+100))
	s.Update(16)
	assert.Len(t, w.Projectiles, 1)
}

func TestAutoFireDisabled(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, d, false, 1000)
	cx, cy := w.Companion.Center()
	w.Enemies = append(w.Enemies, enemyCentredAt(cx+100, cy))

	s.Update(5000)
	assert.Empty(t, w.Projectiles)
}

func TestManualFireGatedByMagic(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewCombatSystem(w, d, false, 1000)
	cx, cy := w.Companion.Center()

	require.True(t, s.ManualFire(cx+100, cy))
	assert.InDelta(t, 12, w.Projectiles[0].VX, 1e-9)
	assert.Equal(t, cx, w.Projectiles[0].X)
	assert.Equal(t, cy, w.Projectiles[0].Y)

	assert.False(t, s.ManualFire(cx+100, cy))

	s.Cooldown(float64(w.Player.Magic) - 1)
	assert.False(t, s.ManualFire(cx+100, cy))

	s.Cooldown(1)
	assert.True(t, s.ManualFire(cx+100, cy))
	assert.Len(t, w.Projectiles, 2)
}

// internal/storage/postgres.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
)

const progressionSchema = `
	CREATE TABLE IF NOT EXISTS progression (
		slot             TEXT             PRIMARY KEY,
		level            INTEGER,
		xp               INTEGER,
		xp_to_next_level INTEGER,
		unspent_points   INTEGER,
		attack           INTEGER,
		max_hp           INTEGER,
		base_speed       DOUBLE PRECISION,
		magic            INTEGER,
		updated_at       TIMESTAMPTZ      NOT NULL DEFAULT NOW()
	);
`

// PostgresStore keeps one progression row per save slot.
type PostgresStore struct {
	db   *pgxpool.Pool
	slot string
}

// NewPool opens and pings a pgx pool for the given database settings.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// NewPostgresStore returns a store bound to slot.
func NewPostgresStore(db *pgxpool.Pool, slot string) *PostgresStore {
	return &PostgresStore{db: db, slot: slot}
}

// EnsureSchema creates the progression table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, progressionSchema); err != nil {
		return fmt.Errorf("creating progression table: %w", err)
	}
	return nil
}

// Save upserts the slot's row.
func (s *PostgresStore) Save(ctx context.Context, p component.Progression) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO progression
			(slot, level, xp, xp_to_next_level, unspent_points, attack, max_hp, base_speed, magic)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (slot) DO UPDATE SET
			level = EXCLUDED.level,
			xp = EXCLUDED.xp,
			xp_to_next_level = EXCLUDED.xp_to_next_level,
			unspent_points = EXCLUDED.unspent_points,
			attack = EXCLUDED.attack,
			max_hp = EXCLUDED.max_hp,
			base_speed = EXCLUDED.base_speed,
			magic = EXCLUDED.magic,
			updated_at = NOW()`,
		s.slot, p.Level, p.XP, p.XPToNextLevel, p.UnspentPoints, p.Attack, p.MaxHP, p.BaseSpeed, p.Magic,
	)
	if err != nil {
		return fmt.Errorf("saving progression: %w", err)
	}
	return nil
}

// Load reads the slot's row. NULL columns take their field defaults.
func (s *PostgresStore) Load(ctx context.Context) (component.Progression, bool, error) {
	var (
		level, xp, next, points, attack, maxHP, magic *int32
		baseSpeed                                     *float64
	)
	err := s.db.QueryRow(ctx, `
		SELECT level, xp, xp_to_next_level, unspent_points, attack, max_hp, base_speed, magic
		FROM progression WHERE slot = $1`,
		s.slot,
	).Scan(&level, &xp, &next, &points, &attack, &maxHP, &baseSpeed, &magic)
	if errors.Is(err, pgx.ErrNoRows) {
		return component.Progression{}, false, nil
	}
	if err != nil {
		return component.Progression{}, false, fmt.Errorf("loading progression: %w", err)
	}

	fields := map[string]any{}
	put := func(key string, v *int32) {
		if v != nil {
			fields[key] = int(*v)
		}
	}
	put(FieldLevel, level)
	put(FieldXP, xp)
	put(FieldXPToNextLevel, next)
	put(FieldUnspentPoints, points)
	put(FieldAttack, attack)
	put(FieldMaxHP, maxHP)
	put(FieldMagic, magic)
	if baseSpeed != nil {
		fields[FieldBaseSpeed] = *baseSpeed
	}
	return DecodeFields(fields), true, nil
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const profileKey = "main"

// SQLiteStore persists the document relationally. Save replaces the whole
// document inside one transaction, matching the single-blob write-through
// semantics of the JSON engine.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			user_name TEXT DEFAULT '',
			onboarded INTEGER DEFAULT 0,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			last_scan_date TEXT DEFAULT '',
			total_xp INTEGER DEFAULT 0,
			last_known_level INTEGER DEFAULT 1,
			login_streak INTEGER DEFAULT 0,
			last_login_date TEXT DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			animal_type TEXT,
			variant TEXT,
			colors TEXT,
			thumbnail TEXT,
			est_low REAL NOT NULL,
			est_high REAL NOT NULL,
			adj_low REAL,
			adj_high REAL,
			tier INTEGER NOT NULL,
			condition TEXT,
			pellet_type TEXT,
			value_notes TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS milestones (
			kind TEXT NOT NULL,
			threshold INTEGER NOT NULL,
			PRIMARY KEY (kind, threshold)
		);`,
		`CREATE TABLE IF NOT EXISTS completed_challenges (
			id TEXT PRIMARY KEY
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// withTx runs fn inside a SQL transaction.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

func (s *SQLiteStore) Load() (*Snapshot, error) {
	ctx := context.Background()

	var snap Snapshot
	snap.Normalize()

	row := s.db.QueryRowContext(ctx, `
		SELECT user_name, onboarded, current_streak, longest_streak, last_scan_date,
		       total_xp, last_known_level, login_streak, last_login_date
		FROM profile WHERE key = ?`, profileKey)
	var onboarded int
	err := row.Scan(&snap.UserName, &onboarded, &snap.CurrentStreak, &snap.LongestStreak,
		&snap.LastScanDate, &snap.TotalXP, &snap.LastKnownLevel, &snap.LoginStreak, &snap.LastLoginDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite load profile: %w", err)
	}
	snap.Onboarded = onboarded != 0

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, animal_type, variant, colors, thumbnail,
		       est_low, est_high, adj_low, adj_high,
		       tier, condition, pellet_type, value_notes, created_at
		FROM items ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite load items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it Item
		var colorsJSON string
		var adjLow, adjHigh sql.NullFloat64
		if err := rows.Scan(&it.ID, &it.Name, &it.AnimalType, &it.Variant, &colorsJSON, &it.Thumbnail,
			&it.EstimatedValueLow, &it.EstimatedValueHigh, &adjLow, &adjHigh,
			&it.Tier, &it.Condition, &it.PelletType, &it.ValueNotes, &it.Timestamp); err != nil {
			return nil, fmt.Errorf("sqlite scan item: %w", err)
		}
		if colorsJSON != "" {
			if err := json.Unmarshal([]byte(colorsJSON), &it.Colors); err != nil {
				return nil, fmt.Errorf("sqlite decode colors: %w", err)
			}
		}
		if adjLow.Valid {
			v := adjLow.Float64
			it.AdjustedValueLow = &v
		}
		if adjHigh.Valid {
			v := adjHigh.Float64
			it.AdjustedValueHigh = &v
		}
		snap.Collection = append(snap.Collection, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite load items: %w", err)
	}

	achRows, err := s.db.QueryContext(ctx, `SELECT id, unlocked_at FROM achievements`)
	if err != nil {
		return nil, fmt.Errorf("sqlite load achievements: %w", err)
	}
	defer achRows.Close()
	for achRows.Next() {
		var id string
		var at time.Time
		if err := achRows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("sqlite scan achievement: %w", err)
		}
		snap.UnlockedAchievements[id] = at
	}
	if err := achRows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite load achievements: %w", err)
	}

	msRows, err := s.db.QueryContext(ctx, `SELECT kind, threshold FROM milestones`)
	if err != nil {
		return nil, fmt.Errorf("sqlite load milestones: %w", err)
	}
	defer msRows.Close()
	for msRows.Next() {
		var kind string
		var threshold int
		if err := msRows.Scan(&kind, &threshold); err != nil {
			return nil, fmt.Errorf("sqlite scan milestone: %w", err)
		}
		switch kind {
		case "collection":
			snap.CollectionMilestones = append(snap.CollectionMilestones, threshold)
		case "value":
			snap.ValueMilestones = append(snap.ValueMilestones, threshold)
		case "streak":
			snap.StreakMilestones = append(snap.StreakMilestones, threshold)
		}
	}
	if err := msRows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite load milestones: %w", err)
	}

	chRows, err := s.db.QueryContext(ctx, `SELECT id FROM completed_challenges`)
	if err != nil {
		return nil, fmt.Errorf("sqlite load challenges: %w", err)
	}
	defer chRows.Close()
	for chRows.Next() {
		var id string
		if err := chRows.Scan(&id); err != nil {
			return nil, fmt.Errorf("sqlite scan challenge: %w", err)
		}
		snap.CompletedChallenges = append(snap.CompletedChallenges, id)
	}
	if err := chRows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite load challenges: %w", err)
	}

	return &snap, nil
}

func (s *SQLiteStore) Save(snap *Snapshot) error {
	ctx := context.Background()
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, table := range []string{"profile", "items", "achievements", "milestones", "completed_challenges"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("sqlite clear %s: %w", table, err)
			}
		}

		onboarded := 0
		if snap.Onboarded {
			onboarded = 1
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO profile (key, user_name, onboarded, current_streak, longest_streak,
			                     last_scan_date, total_xp, last_known_level, login_streak, last_login_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			profileKey, snap.UserName, onboarded, snap.CurrentStreak, snap.LongestStreak,
			snap.LastScanDate, snap.TotalXP, snap.LastKnownLevel, snap.LoginStreak, snap.LastLoginDate); err != nil {
			return fmt.Errorf("sqlite save profile: %w", err)
		}

		for pos, it := range snap.Collection {
			colorsJSON := ""
			if len(it.Colors) > 0 {
				b, err := json.Marshal(it.Colors)
				if err != nil {
					return fmt.Errorf("sqlite encode colors: %w", err)
				}
				colorsJSON = string(b)
			}
			var adjLow, adjHigh any
			if it.AdjustedValueLow != nil {
				adjLow = *it.AdjustedValueLow
			}
			if it.AdjustedValueHigh != nil {
				adjHigh = *it.AdjustedValueHigh
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO items (id, position, name, animal_type, variant, colors, thumbnail,
				                   est_low, est_high, adj_low, adj_high,
				                   tier, condition, pellet_type, value_notes, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				it.ID, pos, it.Name, it.AnimalType, it.Variant, colorsJSON, it.Thumbnail,
				it.EstimatedValueLow, it.EstimatedValueHigh, adjLow, adjHigh,
				it.Tier, it.Condition, it.PelletType, it.ValueNotes, it.Timestamp); err != nil {
				return fmt.Errorf("sqlite save item: %w", err)
			}
		}

		for id, at := range snap.UnlockedAchievements {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO achievements (id, unlocked_at) VALUES (?, ?)`, id, at); err != nil {
				return fmt.Errorf("sqlite save achievement: %w", err)
			}
		}

		saveMilestones := func(kind string, thresholds []int) error {
			for _, th := range thresholds {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO milestones (kind, threshold) VALUES (?, ?)`, kind, th); err != nil {
					return fmt.Errorf("sqlite save milestone: %w", err)
				}
			}
			return nil
		}
		if err := saveMilestones("collection", snap.CollectionMilestones); err != nil {
			return err
		}
		if err := saveMilestones("value", snap.ValueMilestones); err != nil {
			return err
		}
		if err := saveMilestones("streak", snap.StreakMilestones); err != nil {
			return err
		}

		for _, id := range snap.CompletedChallenges {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO completed_challenges (id) VALUES (?)`, id); err != nil {
				return fmt.Errorf("sqlite save challenge: %w", err)
			}
		}

		return nil
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

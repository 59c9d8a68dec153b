package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sirup-monitor/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Key per koleksi di store lokal.
const (
	LocalKeyOPD      = "sirup_ntb_master_opd_v2"
	LocalKeyProgress = "sirup_ntb_progress_data_v2"
	LocalKeyNews     = "sirup_ntb_news_v2"
	LocalKeySettings = "sirup_ntb_sys_settings_v2"
	LocalKeyUsers    = "sirup_ntb_users_v2"
)

// LocalStateRepository adalah store lokal berbasis file SQLite, satu baris per koleksi.
type LocalStateRepository struct {
	db *sql.DB
}

func NewLocalStateRepository(path string) (*LocalStateRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("gagal membuat direktori data lokal: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka database lokal: %w", err)
	}
	// satu koneksi: SQLite hanya mengizinkan satu penulis
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database lokal gagal: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("gagal membuat tabel kv: %w", err)
	}

	return &LocalStateRepository{db: db}, nil
}

func (r *LocalStateRepository) Close() error {
	return r.db.Close()
}

func (r *LocalStateRepository) Load(ctx context.Context) (model.AppState, bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return model.AppState{}, false, err
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return model.AppState{}, false, err
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return model.AppState{}, false, err
	}

	state := model.EmptyState()
	if len(values) == 0 {
		return state, false, nil
	}

	decode := func(key string, dst interface{}) error {
		v, ok := values[key]
		if !ok || v == "null" {
			return nil
		}
		if err := json.Unmarshal([]byte(v), dst); err != nil {
			return fmt.Errorf("data lokal %s rusak: %w", key, err)
		}
		return nil
	}

	var settings *model.SystemSettings
	for key, dst := range map[string]interface{}{
		LocalKeyOPD:      &state.OPDs,
		LocalKeyProgress: &state.Progress,
		LocalKeyNews:     &state.News,
		LocalKeyUsers:    &state.Users,
		LocalKeySettings: &settings,
	} {
		if err := decode(key, dst); err != nil {
			return model.AppState{}, false, err
		}
	}
	if settings != nil {
		state.Settings = *settings
	}
	normalize(&state)
	return state, true, nil
}

// normalize mengganti koleksi null hasil decode menjadi slice kosong.
func normalize(s *model.AppState) {
	if s.OPDs == nil {
		s.OPDs = []model.OPD{}
	}
	if s.Progress == nil {
		s.Progress = []model.ProgressRecord{}
	}
	if s.News == nil {
		s.News = []model.NewsItem{}
	}
	if s.Users == nil {
		s.Users = []model.User{}
	}
}

// Save menulis kelima koleksi dalam satu transaksi.
func (r *LocalStateRepository) Save(ctx context.Context, state model.AppState) error {
	normalize(&state)
	entries := []struct {
		key   string
		value interface{}
	}{
		{LocalKeyOPD, state.OPDs},
		{LocalKeyProgress, state.Progress},
		{LocalKeyNews, state.News},
		{LocalKeySettings, state.Settings},
		{LocalKeyUsers, state.Users},
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range entries {
		b, err := json.Marshal(e.value)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			e.key, string(b)); err != nil {
			return fmt.Errorf("gagal menyimpan %s: %w", e.key, err)
		}
	}
	return tx.Commit()
}

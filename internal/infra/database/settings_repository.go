package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

// SettingsRepository stores the two configuration documents as JSONB
// rows keyed by document name.
type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) GetAppSettings(ctx context.Context) (*entity.AppSettings, error) {
	var settings entity.AppSettings
	if err := r.getDoc(ctx, entity.SettingsKeyAppConfig, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) SaveAppSettings(ctx context.Context, settings *entity.AppSettings) error {
	doc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshaling settings: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO settings (key, doc) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc
	`, entity.SettingsKeyAppConfig, doc)
	return err
}

func (r *SettingsRepository) GetSalesCatalog(ctx context.Context) (*entity.SalesCatalog, error) {
	var catalog entity.SalesCatalog
	if err := r.getDoc(ctx, entity.SettingsKeySalesCatalog, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// getDoc leaves out a missing row silently: a fresh install has no
// settings rows yet and callers expect an empty document.
func (r *SettingsRepository) getDoc(ctx context.Context, key string, out interface{}) error {
	var doc []byte
	err := r.DB.QueryRowContext(ctx, `SELECT doc FROM settings WHERE key = $1`, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(doc, out)
}

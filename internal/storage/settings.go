package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetSetting returns the value for key, or defaultValue when unset.
func (db *DB) GetSetting(ctx context.Context, key, defaultValue string) (string, error) {
	if err := db.ready(); err != nil {
		return "", err
	}

	var value string
	err := db.sql.QueryRowContext(ctx,
		`SELECT value FROM user_settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return defaultValue, nil
	}
	if err != nil {
		return "", fmt.Errorf("querying setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores or replaces a setting.
func (db *DB) SetSetting(ctx context.Context, key, value string) error {
	if err := db.ready(); err != nil {
		return err
	}

	_, err := db.sql.ExecContext(ctx,
		`INSERT OR REPLACE INTO user_settings (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("storing setting %s: %w", key, err)
	}
	return nil
}

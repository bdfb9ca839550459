package languageconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

var _ secondary.LanguageConfigPort = (*LanguageConfigRepository)(nil)

// LanguageConfigRepository implements the LanguageConfigPort interface with
// PostgreSQL. When the table has never been seeded it falls back to a
// default allowlist so a fresh deployment can still accept submissions.
type LanguageConfigRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewLanguageConfigRepository creates a new PostgreSQL language config repository
func NewLanguageConfigRepository(db *sqlx.DB, logger primary.Logger) *LanguageConfigRepository {
	return &LanguageConfigRepository{
		db:     db,
		logger: logger,
	}
}

var defaultLanguages = []string{"cpp", "java", "javascript", "python"}

// GetActiveLanguages retrieves all active language names
func (r *LanguageConfigRepository) GetActiveLanguages(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM language_config
		WHERE active = true
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to get active languages", "error", err)
		return nil, fmt.Errorf("failed to get active languages: %w", err)
	}
	defer rows.Close()

	var languages []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan language name: %w", err)
		}
		languages = append(languages, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating languages: %w", err)
	}

	if len(languages) == 0 {
		return defaultLanguages, nil
	}

	return languages, nil
}

// GetLanguageConfig retrieves configuration for a specific language
func (r *LanguageConfigRepository) GetLanguageConfig(ctx context.Context, name string) (*domain.LanguageConfig, error) {
	query := `
		SELECT name, display_name, active, created_at, updated_at
		FROM language_config
		WHERE name = $1
	`

	var config domain.LanguageConfig
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&config.Name,
		&config.DisplayName,
		&config.Active,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get language config", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get language config: %w", err)
	}

	return &config, nil
}

// SaveLanguageConfig inserts or updates a language configuration
func (r *LanguageConfigRepository) SaveLanguageConfig(ctx context.Context, config *domain.LanguageConfig) error {
	query := `
		INSERT INTO language_config (name, display_name, active)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			active = EXCLUDED.active,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query, config.Name, config.DisplayName, config.Active)
	if err != nil {
		r.logger.Error("Failed to save language config", "name", config.Name, "error", err)
		return fmt.Errorf("failed to save language config: %w", err)
	}

	return nil
}

// ActivateLanguage activates a language
func (r *LanguageConfigRepository) ActivateLanguage(ctx context.Context, name string) error {
	return r.setActive(ctx, name, true)
}

// DeactivateLanguage deactivates a language
func (r *LanguageConfigRepository) DeactivateLanguage(ctx context.Context, name string) error {
	return r.setActive(ctx, name, false)
}

func (r *LanguageConfigRepository) setActive(ctx context.Context, name string, active bool) error {
	query := `
		UPDATE language_config
		SET active = $1, updated_at = NOW()
		WHERE name = $2
	`

	result, err := r.db.ExecContext(ctx, query, active, name)
	if err != nil {
		r.logger.Error("Failed to update language status", "name", name, "error", err)
		return fmt.Errorf("failed to update language status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update language status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("language '%s' is not configured", name)
	}

	return nil
}

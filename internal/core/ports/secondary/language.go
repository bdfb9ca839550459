package secondary

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

// LanguageConfigPort is the allowlist of languages submissions may declare
type LanguageConfigPort interface {
	GetActiveLanguages(ctx context.Context) ([]string, error)

	GetLanguageConfig(ctx context.Context, name string) (*domain.LanguageConfig, error)

	SaveLanguageConfig(ctx context.Context, config *domain.LanguageConfig) error

	ActivateLanguage(ctx context.Context, name string) error

	DeactivateLanguage(ctx context.Context, name string) error
}

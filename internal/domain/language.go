package domain

import "time"

// LanguageConfig is one row of the language allowlist. The sandbox picks
// the actual toolchain; this only gates which declared languages a
// submission may carry.
type LanguageConfig struct {
	Name        string    `db:"name"`
	DisplayName string    `db:"display_name"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

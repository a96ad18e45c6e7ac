package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SeedLessons inserts the bundled lessons, skipping the ones already present.
func SeedLessons(db *gorm.DB) error {
	raw, err := migrationsFS.ReadFile(lessonSeedFile)
	if err != nil {
		return fmt.Errorf("read lesson seed: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range splitStatements(string(raw)) {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("seed lessons: %w", err)
			}
		}
		return nil
	})
}

// splitStatements splits a SQL script on statement terminators at line ends.
// Comment lines are dropped.
func splitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			statements = append(statements, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LessonLevel represents the difficulty of an educational lesson.
type LessonLevel string

const (
	LessonLevelBasic        LessonLevel = "basic"
	LessonLevelIntermediate LessonLevel = "intermediate"
	LessonLevelAdvanced     LessonLevel = "advanced"
)

// IsValid reports whether the level is one of the known values.
func (l LessonLevel) IsValid() bool {
	return l == LessonLevelBasic || l == LessonLevelIntermediate || l == LessonLevelAdvanced
}

// DefaultLessonDuration is the reading time assumed for a lesson, in minutes.
const DefaultLessonDuration = 5

// Lesson is a piece of financial education content. Lessons are seeded, never edited through the API.
type Lesson struct {
	ID              uuid.UUID
	Title           string
	Content         string
	Level           LessonLevel
	DurationMinutes int
	Order           int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

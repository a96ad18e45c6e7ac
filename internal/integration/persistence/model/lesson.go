// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// LessonModel represents the lessons table in the database.
type LessonModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Content         string    `gorm:"type:text;not null"`
	Level           string    `gorm:"type:varchar(20);not null;index"`
	DurationMinutes int       `gorm:"not null"`
	Order           int       `gorm:"column:sort_order;not null"`
	Active          bool      `gorm:"not null;index"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the LessonModel.
func (LessonModel) TableName() string {
	return "lessons"
}

// ToEntity converts a LessonModel to a domain Lesson entity.
func (m *LessonModel) ToEntity() *entity.Lesson {
	return &entity.Lesson{
		ID:              m.ID,
		Title:           m.Title,
		Content:         m.Content,
		Level:           entity.LessonLevel(m.Level),
		DurationMinutes: m.DurationMinutes,
		Order:           m.Order,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// LessonFromEntity creates a LessonModel from a domain Lesson entity.
func LessonFromEntity(lesson *entity.Lesson) *LessonModel {
	return &LessonModel{
		ID:              lesson.ID,
		Title:           lesson.Title,
		Content:         lesson.Content,
		Level:           string(lesson.Level),
		DurationMinutes: lesson.DurationMinutes,
		Order:           lesson.Order,
		Active:          lesson.Active,
		CreatedAt:       lesson.CreatedAt,
		UpdatedAt:       lesson.UpdatedAt,
	}
}

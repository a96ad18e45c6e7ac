// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// LessonResponse represents a lesson in API responses.
type LessonResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Level           string    `json:"level"`
	DurationMinutes int       `json:"duration_minutes"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
}

// LessonListResponse represents the response for listing lessons.
type LessonListResponse struct {
	Lessons []LessonResponse `json:"lessons"`
}

// ToLessonResponse converts a domain Lesson entity to a LessonResponse DTO.
func ToLessonResponse(l *entity.Lesson) LessonResponse {
	return LessonResponse{
		ID:              l.ID.String(),
		Title:           l.Title,
		Content:         l.Content,
		Level:           string(l.Level),
		DurationMinutes: l.DurationMinutes,
		Order:           l.Order,
		CreatedAt:       l.CreatedAt,
	}
}

// ToLessonListResponse converts a list of lessons to LessonListResponse.
func ToLessonListResponse(lessons []*entity.Lesson) LessonListResponse {
	items := make([]LessonResponse, len(lessons))
	for i, l := range lessons {
		items[i] = ToLessonResponse(l)
	}
	return LessonListResponse{
		Lessons: items,
	}
}

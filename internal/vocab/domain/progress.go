package domain

import "time"

// LessonProgress counts how many times a user repeated a lesson.
type LessonProgress struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	CourseName string    `json:"courseName"`
	LessonName string    `json:"lessonName"`
	Repeats    int       `json:"repeats"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

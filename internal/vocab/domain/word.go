package domain

import "time"

// Word is one vocabulary card: a word with its translation, grouped into a
// lesson, optionally inside a course.
type Word struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CourseName  string    `json:"courseName"`
	LessonName  string    `json:"lessonName"`
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	Audio       string    `json:"audio"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WordFilter selects a user's words. Empty course or lesson match any.
type WordFilter struct {
	UserID     string
	CourseName string
	LessonName string
}

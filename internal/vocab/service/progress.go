package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
	"github.com/aussiebroadwan/vocab/internal/vocab/store"
	"github.com/aussiebroadwan/vocab/pkg/idx"
)

// ProgressService tracks per-lesson repeat counters.
type ProgressService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *ProgressService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func lessonKey(course, lesson string) (string, string, error) {
	course, lesson = strings.TrimSpace(course), strings.TrimSpace(lesson)
	if course == "" || lesson == "" {
		return "", "", invalid("courseName and lessonName are required")
	}
	return course, lesson, nil
}

// Create starts a counter at zero. ErrConflict when it already exists.
func (s *ProgressService) Create(ctx context.Context, userID, course, lesson string) (domain.LessonProgress, error) {
	course, lesson, err := lessonKey(course, lesson)
	if err != nil {
		return domain.LessonProgress{}, err
	}

	now := s.now()
	p := domain.LessonProgress{
		ID:         idx.NewString(),
		UserID:     userID,
		CourseName: course,
		LessonName: lesson,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Store.Progress().CreateProgress(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.LessonProgress{}, ErrConflict
		}
		return domain.LessonProgress{}, err
	}
	return p, nil
}

func (s *ProgressService) List(ctx context.Context, userID, course string) ([]domain.LessonProgress, error) {
	return s.Store.Progress().ListProgress(ctx, userID, strings.TrimSpace(course))
}

func (s *ProgressService) Get(ctx context.Context, userID, course, lesson string) (domain.LessonProgress, error) {
	course, lesson, err := lessonKey(course, lesson)
	if err != nil {
		return domain.LessonProgress{}, err
	}
	return notFound(s.Store.Progress().GetProgress(ctx, userID, course, lesson))
}

func (s *ProgressService) Increment(ctx context.Context, userID, course, lesson string) (domain.LessonProgress, error) {
	course, lesson, err := lessonKey(course, lesson)
	if err != nil {
		return domain.LessonProgress{}, err
	}
	return notFound(s.Store.Progress().IncrementRepeats(ctx, userID, course, lesson, s.now()))
}

func (s *ProgressService) Set(ctx context.Context, userID, course, lesson string, repeats int) (domain.LessonProgress, error) {
	course, lesson, err := lessonKey(course, lesson)
	if err != nil {
		return domain.LessonProgress{}, err
	}
	if repeats < 0 {
		return domain.LessonProgress{}, invalid("repeats must not be negative")
	}
	return notFound(s.Store.Progress().SetRepeats(ctx, userID, course, lesson, repeats, s.now()))
}

func notFound(p domain.LessonProgress, err error) (domain.LessonProgress, error) {
	if errors.Is(err, store.ErrNotFound) {
		return domain.LessonProgress{}, ErrNotFound
	}
	return p, err
}

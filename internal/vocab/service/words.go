package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
	"github.com/aussiebroadwan/vocab/internal/vocab/store"
	"github.com/aussiebroadwan/vocab/pkg/idx"
	"github.com/aussiebroadwan/vocab/pkg/slogx"
)

// AudioLinker produces the pronunciation link stored with each word.
type AudioLinker interface {
	AudioURL(word string) string
}

type WordService struct {
	Store  store.Store
	Speech AudioLinker
	Now    func() time.Time
}

type ImportRequest struct {
	CourseName      string
	LessonName      string
	Text            string
	RowDelimiter    string
	ColumnDelimiter string
}

// Import parses req.Text and stores every pair as a word of the lesson in a
// single transaction.
func (s *WordService) Import(ctx context.Context, userID string, req ImportRequest) ([]domain.Word, error) {
	course := strings.TrimSpace(req.CourseName)
	lesson := strings.TrimSpace(req.LessonName)
	if lesson == "" || strings.TrimSpace(req.Text) == "" {
		return nil, invalid("lessonName and text are required")
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	pairs := ParseImport(req.Text, req.RowDelimiter, req.ColumnDelimiter)
	words := make([]domain.Word, 0, len(pairs))
	for _, p := range pairs {
		w := domain.Word{
			ID:          idx.NewString(),
			UserID:      userID,
			CourseName:  course,
			LessonName:  lesson,
			Word:        p.Word,
			Translation: p.Translation,
			CreatedAt:   now,
		}
		if s.Speech != nil {
			w.Audio = s.Speech.AudioURL(p.Word)
		}
		words = append(words, w)
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, w := range words {
			if err := tx.Words().CreateWord(ctx, w); err != nil {
				return fmt.Errorf("create word %q: %w", w.Word, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("words imported",
		"course", course, "lesson", lesson, "count", len(words))
	return words, nil
}

func (s *WordService) List(ctx context.Context, userID, course, lesson string) ([]domain.Word, error) {
	return s.Store.Words().ListWords(ctx, domain.WordFilter{
		UserID:     userID,
		CourseName: strings.TrimSpace(course),
		LessonName: strings.TrimSpace(lesson),
	})
}

func (s *WordService) UpdateImage(ctx context.Context, userID, id, image string) (domain.Word, error) {
	w, err := s.Store.Words().UpdateWordImage(ctx, userID, id, strings.TrimSpace(image))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Word{}, ErrNotFound
	}
	return w, err
}

func (s *WordService) Courses(ctx context.Context, userID string) ([]string, error) {
	return s.Store.Words().ListCourses(ctx, userID)
}

func (s *WordService) Lessons(ctx context.Context, userID, course string) ([]string, error) {
	return s.Store.Words().ListLessons(ctx, userID, strings.TrimSpace(course))
}

// DeleteLesson removes the lesson's words. ErrNotFound when there were none.
func (s *WordService) DeleteLesson(ctx context.Context, userID, course, lesson string) error {
	lesson = strings.TrimSpace(lesson)
	if lesson == "" {
		return invalid("lesson name is required")
	}

	n, err := s.Store.Words().DeleteLesson(ctx, userID, strings.TrimSpace(course), lesson)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	slogx.FromContext(ctx).Info("lesson deleted", "lesson", lesson, "words", n)
	return nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
	"github.com/aussiebroadwan/vocab/internal/vocab/store"
	"github.com/aussiebroadwan/vocab/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s store.Store) string {
	t.Helper()
	now := time.Now()
	u := domain.User{
		ID: idx.NewString(), Email: idx.NewString() + "@x.com", PasswordHash: "h",
		Role: domain.RoleUser, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u.ID
}

func TestWordImport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &WordService{Store: s, Speech: NewSpeechService(SpeechConfig{})}
	user := seedUser(t, s)

	words, err := svc.Import(ctx, user, ImportRequest{
		CourseName: " English ",
		LessonName: "Animals",
		Text:       "cat\tкіт\nbad row\nred fox\tлис",
	})
	require.NoError(t, err)
	require.Len(t, words, 2)
	require.Equal(t, "English", words[0].CourseName)
	require.Equal(t, "red fox", words[1].Word)
	require.Equal(t,
		"https://translate.google.com/translate_tts?ie=UTF-8&tl=en&q=red+fox&client=tw-ob",
		words[1].Audio)

	stored, err := svc.List(ctx, user, "English", "Animals")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, words[0].ID, stored[0].ID)

	t.Run("required fields", func(t *testing.T) {
		_, err := svc.Import(ctx, user, ImportRequest{Text: "a\tb"})
		require.ErrorIs(t, err, ErrValidation)
		_, err = svc.Import(ctx, user, ImportRequest{LessonName: "L", Text: "  "})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("nothing parsed is not an error", func(t *testing.T) {
		words, err := svc.Import(ctx, user, ImportRequest{LessonName: "Empty", Text: "no delimiter here"})
		require.NoError(t, err)
		require.Empty(t, words)
	})
}

func TestWordImportIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &WordService{Store: s}

	// No such user: the foreign key fails on the first insert and nothing is kept.
	_, err := svc.Import(ctx, "ghost", ImportRequest{LessonName: "L", Text: "a\tb\nc\td"})
	require.Error(t, err)

	words, err := s.Words().ListWords(ctx, domain.WordFilter{UserID: "ghost"})
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestWordLessonsAndCourses(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &WordService{Store: s}
	alice, bob := seedUser(t, s), seedUser(t, s)

	_, err := svc.Import(ctx, alice, ImportRequest{CourseName: "English", LessonName: "Animals", Text: "cat\tкіт"})
	require.NoError(t, err)
	_, err = svc.Import(ctx, alice, ImportRequest{CourseName: "English", LessonName: "Food", Text: "bread\tхліб"})
	require.NoError(t, err)
	_, err = svc.Import(ctx, bob, ImportRequest{CourseName: "German", LessonName: "Tiere", Text: "Katze\tкіт"})
	require.NoError(t, err)

	courses, err := svc.Courses(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, []string{"English"}, courses)

	lessons, err := svc.Lessons(ctx, alice, "English")
	require.NoError(t, err)
	require.Equal(t, []string{"Animals", "Food"}, lessons)

	require.NoError(t, svc.DeleteLesson(ctx, alice, "English", "Food"))
	require.ErrorIs(t, svc.DeleteLesson(ctx, alice, "English", "Food"), ErrNotFound)
	require.ErrorIs(t, svc.DeleteLesson(ctx, alice, "German", "Tiere"), ErrNotFound)
	require.ErrorIs(t, svc.DeleteLesson(ctx, alice, "English", " "), ErrValidation)

	words, err := svc.List(ctx, alice, "", "")
	require.NoError(t, err)
	require.Len(t, words, 1)

	t.Run("update image", func(t *testing.T) {
		w, err := svc.UpdateImage(ctx, alice, words[0].ID, "https://img/cat.png")
		require.NoError(t, err)
		require.Equal(t, "https://img/cat.png", w.Image)

		_, err = svc.UpdateImage(ctx, bob, words[0].ID, "x")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

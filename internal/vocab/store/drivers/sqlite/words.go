package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
)

type wordsRepo struct {
	db dbtx
}

const wordColumns = `id, user_id, course_name, lesson_name, word, translation, audio, image, created_at`

func scanWord(s scanner) (domain.Word, error) {
	var w domain.Word
	var created int64
	err := s.Scan(&w.ID, &w.UserID, &w.CourseName, &w.LessonName,
		&w.Word, &w.Translation, &w.Audio, &w.Image, &created)
	if err != nil {
		return domain.Word{}, mapNotFound(err)
	}
	w.CreatedAt = fromUnix(created)
	return w, nil
}

func (r *wordsRepo) CreateWord(ctx context.Context, w domain.Word) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO words (`+wordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.UserID, w.CourseName, w.LessonName, w.Word, w.Translation, w.Audio, w.Image, unix(w.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *wordsRepo) ListWords(ctx context.Context, f domain.WordFilter) ([]domain.Word, error) {
	var (
		where = []string{"user_id = ?"}
		args  = []any{f.UserID}
	)
	if f.CourseName != "" {
		where = append(where, "course_name = ?")
		args = append(args, f.CourseName)
	}
	if f.LessonName != "" {
		where = append(where, "lesson_name = ?")
		args = append(args, f.LessonName)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+wordColumns+` FROM words WHERE `+strings.Join(where, " AND ")+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *wordsRepo) GetWord(ctx context.Context, userID, id string) (domain.Word, error) {
	return scanWord(r.db.QueryRowContext(ctx,
		`SELECT `+wordColumns+` FROM words WHERE user_id = ? AND id = ?`, userID, id))
}

func (r *wordsRepo) UpdateWordImage(ctx context.Context, userID, id, image string) (domain.Word, error) {
	return scanWord(r.db.QueryRowContext(ctx,
		`UPDATE words SET image = ? WHERE user_id = ? AND id = ? RETURNING `+wordColumns,
		image, userID, id))
}

func (r *wordsRepo) ListCourses(ctx context.Context, userID string) ([]string, error) {
	return r.distinct(ctx,
		`SELECT DISTINCT course_name FROM words WHERE user_id = ? AND course_name <> '' ORDER BY course_name`,
		userID)
}

func (r *wordsRepo) ListLessons(ctx context.Context, userID, course string) ([]string, error) {
	if course == "" {
		return r.distinct(ctx,
			`SELECT DISTINCT lesson_name FROM words WHERE user_id = ? ORDER BY lesson_name`, userID)
	}
	return r.distinct(ctx,
		`SELECT DISTINCT lesson_name FROM words WHERE user_id = ? AND course_name = ? ORDER BY lesson_name`,
		userID, course)
}

func (r *wordsRepo) DeleteLesson(ctx context.Context, userID, course, lesson string) (int64, error) {
	query := `DELETE FROM words WHERE user_id = ? AND lesson_name = ?`
	args := []any{userID, lesson}
	if course != "" {
		query += ` AND course_name = ?`
		args = append(args, course)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *wordsRepo) distinct(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

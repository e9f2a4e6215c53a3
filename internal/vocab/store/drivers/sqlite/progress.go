package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
)

type progressRepo struct {
	db dbtx
}

const progressColumns = `id, user_id, course_name, lesson_name, repeats, created_at, updated_at`

func scanProgress(s scanner) (domain.LessonProgress, error) {
	var p domain.LessonProgress
	var created, updated int64
	err := s.Scan(&p.ID, &p.UserID, &p.CourseName, &p.LessonName, &p.Repeats, &created, &updated)
	if err != nil {
		return domain.LessonProgress{}, mapNotFound(err)
	}
	p.CreatedAt = fromUnix(created)
	p.UpdatedAt = fromUnix(updated)
	return p, nil
}

func (r *progressRepo) CreateProgress(ctx context.Context, p domain.LessonProgress) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lesson_progress (`+progressColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.CourseName, p.LessonName, p.Repeats, unix(p.CreatedAt), unix(p.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *progressRepo) GetProgress(ctx context.Context, userID, course, lesson string) (domain.LessonProgress, error) {
	return scanProgress(r.db.QueryRowContext(ctx,
		`SELECT `+progressColumns+` FROM lesson_progress
		 WHERE user_id = ? AND course_name = ? AND lesson_name = ?`,
		userID, course, lesson))
}

func (r *progressRepo) ListProgress(ctx context.Context, userID, course string) ([]domain.LessonProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM lesson_progress WHERE user_id = ?`
	args := []any{userID}
	if course != "" {
		query += ` AND course_name = ?`
		args = append(args, course)
	}
	query += ` ORDER BY course_name, lesson_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.LessonProgress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *progressRepo) IncrementRepeats(ctx context.Context, userID, course, lesson string, now time.Time) (domain.LessonProgress, error) {
	return scanProgress(r.db.QueryRowContext(ctx,
		`UPDATE lesson_progress SET repeats = repeats + 1, updated_at = ?
		 WHERE user_id = ? AND course_name = ? AND lesson_name = ?
		 RETURNING `+progressColumns,
		unix(now), userID, course, lesson))
}

func (r *progressRepo) SetRepeats(ctx context.Context, userID, course, lesson string, repeats int, now time.Time) (domain.LessonProgress, error) {
	return scanProgress(r.db.QueryRowContext(ctx,
		`UPDATE lesson_progress SET repeats = ?, updated_at = ?
		 WHERE user_id = ? AND course_name = ? AND lesson_name = ?
		 RETURNING `+progressColumns,
		repeats, unix(now), userID, course, lesson))
}

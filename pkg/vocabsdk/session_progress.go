package vocabsdk

import (
	"context"
	"net/http"
	"net/url"
)

func progressPath(course, lesson string) string {
	return "/api/progress/" + url.PathEscape(course) + "/" + url.PathEscape(lesson)
}

func (s *Session) CreateProgress(ctx context.Context, course, lesson string) (*LessonProgress, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/progress", CreateProgressRequest{CourseName: course, LessonName: lesson})
	if err != nil {
		return nil, err
	}
	return decodeProgress(resp, http.StatusCreated)
}

// ListProgress returns the caller's lesson progress, optionally for one course.
func (s *Session) ListProgress(ctx context.Context, course string) ([]LessonProgress, error) {
	path := "/api/progress"
	if course != "" {
		path += "?course=" + url.QueryEscape(course)
	}
	var out []LessonProgress
	if err := s.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetProgress(ctx context.Context, course, lesson string) (*LessonProgress, error) {
	var out LessonProgress
	if err := s.getJSON(ctx, progressPath(course, lesson), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) IncrementProgress(ctx context.Context, course, lesson string) (*LessonProgress, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, progressPath(course, lesson)+"/increment", nil)
	if err != nil {
		return nil, err
	}
	return decodeProgress(resp, http.StatusOK)
}

func (s *Session) SetRepeats(ctx context.Context, course, lesson string, repeats int) (*LessonProgress, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, progressPath(course, lesson), SetRepeatsRequest{Repeats: repeats})
	if err != nil {
		return nil, err
	}
	return decodeProgress(resp, http.StatusOK)
}

func decodeProgress(resp *http.Response, status int) (*LessonProgress, error) {
	var out LessonProgress
	if err := decodeJSON(resp, &out, status); err != nil {
		return nil, err
	}
	return &out, nil
}

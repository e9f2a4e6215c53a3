package vocabsdk

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// ImportWords stores the pairs parsed from req.Text and returns them.
func (s *Session) ImportWords(ctx context.Context, req ImportWordsRequest) (*ImportWordsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/words/import", req)
	if err != nil {
		return nil, err
	}

	var out ImportWordsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWords returns the caller's words. Empty course or lesson match any.
func (s *Session) ListWords(ctx context.Context, course, lesson string) ([]Word, error) {
	q := url.Values{}
	if course != "" {
		q.Set("course", course)
	}
	if lesson != "" {
		q.Set("lesson", lesson)
	}
	path := "/api/words"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Word
	if err := s.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) UpdateWordImage(ctx context.Context, id, image string) (*Word, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/words/"+url.PathEscape(id), UpdateImageRequest{Image: image})
	if err != nil {
		return nil, err
	}

	var out Word
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Courses(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.getJSON(ctx, "/api/words/courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Lessons(ctx context.Context, course string) ([]string, error) {
	var out []string
	if err := s.getJSON(ctx, "/api/words/lessons?course="+url.QueryEscape(course), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLesson removes every word of the lesson.
func (s *Session) DeleteLesson(ctx context.Context, course, lesson string) error {
	path := "/api/words/lessons/" + url.PathEscape(lesson) + "?course=" + url.QueryEscape(course)
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}

// Speech returns the audio stream for word. The caller closes it.
func (s *Session) Speech(ctx context.Context, word string) (io.ReadCloser, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/speech?word="+url.QueryEscape(word), nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, parseErrorResponse(resp, body)
	}
	return resp.Body, nil
}

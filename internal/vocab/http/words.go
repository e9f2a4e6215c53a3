package http

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/aussiebroadwan/vocab/pkg/httpx"
	"github.com/aussiebroadwan/vocab/pkg/vocabsdk"
)

type WordsHandler struct {
	Words *service.WordService
}

// callerID returns the authenticated user id or writes 401.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		vocabsdk.ErrUnauthenticated.WriteError(w)
		return "", false
	}
	return id.UserID, true
}

// Import stores delimited word pairs.
//
//	@Summary		Import words
//	@Description	Splits text into rows and each row at the first column delimiter. Rows without both halves are skipped.
//	@Tags			Words
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vocabsdk.ImportWordsRequest	true	"lesson and text"
//	@Success		200		{object}	vocabsdk.ImportWordsResponse
//	@Failure		400		{object}	vocabsdk.ErrorResponse	"Missing lessonName or text"
//	@Failure		401		{object}	vocabsdk.ErrorResponse
//	@Failure		403		{object}	vocabsdk.ErrorResponse
//	@Router			/api/words/import [post].
func (h *WordsHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req vocabsdk.ImportWordsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	words, err := h.Words.Import(r.Context(), userID, service.ImportRequest{
		CourseName:      req.CourseName,
		LessonName:      req.LessonName,
		Text:            req.Text,
		RowDelimiter:    req.RowDelimiter,
		ColumnDelimiter: req.ColumnDelimiter,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Message string        `json:"message"`
		Words   []domain.Word `json:"words"`
	}{
		Message: fmt.Sprintf("imported %d words", len(words)),
		Words:   nonNil(words),
	})
}

// List returns the caller's words.
//
//	@Summary		List words
//	@Tags			Words
//	@Security		BearerAuth
//	@Produce		json
//	@Param			course	query		string	false	"course name"
//	@Param			lesson	query		string	false	"lesson name"
//	@Success		200		{array}		vocabsdk.Word
//	@Failure		401		{object}	vocabsdk.ErrorResponse
//	@Router			/api/words [get].
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	words, err := h.Words.List(r.Context(), userID, q.Get("course"), q.Get("lesson"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(words))
}

// UpdateImage sets the image of one word.
//
//	@Summary		Update word image
//	@Tags			Words
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"word id"
//	@Param			request	body		vocabsdk.UpdateImageRequest	true	"image URL"
//	@Success		200		{object}	vocabsdk.Word
//	@Failure		404		{object}	vocabsdk.ErrorResponse
//	@Router			/api/words/{id} [put].
func (h *WordsHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req vocabsdk.UpdateImageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	word, err := h.Words.UpdateImage(r.Context(), userID, r.PathValue("id"), req.Image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, word)
}

// Courses lists the caller's distinct course names.
//
//	@Summary		List courses
//	@Tags			Words
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	string
//	@Router			/api/words/courses [get].
func (h *WordsHandler) Courses(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	courses, err := h.Words.Courses(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(courses))
}

// Lessons lists the distinct lesson names of a course.
//
//	@Summary		List lessons
//	@Tags			Words
//	@Security		BearerAuth
//	@Produce		json
//	@Param			course	query	string	false	"course name"
//	@Success		200		{array}	string
//	@Router			/api/words/lessons [get].
func (h *WordsHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	lessons, err := h.Words.Lessons(r.Context(), userID, r.URL.Query().Get("course"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(lessons))
}

// DeleteLesson removes every word of a lesson.
//
//	@Summary		Delete lesson
//	@Tags			Words
//	@Security		BearerAuth
//	@Produce		json
//	@Param			lesson	path		string	true	"lesson name"
//	@Param			course	query		string	false	"course name"
//	@Success		200		{object}	vocabsdk.MessageResponse
//	@Failure		404		{object}	vocabsdk.ErrorResponse	"Lesson not found"
//	@Router			/api/words/lessons/{lesson} [delete].
func (h *WordsHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	lesson := r.PathValue("lesson")

	if err := h.Words.DeleteLesson(r.Context(), userID, r.URL.Query().Get("course"), lesson); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, vocabsdk.MessageResponse{
		Message: fmt.Sprintf("lesson %q deleted", lesson),
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

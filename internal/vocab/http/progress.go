package http

import (
	"net/http"

	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/aussiebroadwan/vocab/pkg/httpx"
	"github.com/aussiebroadwan/vocab/pkg/vocabsdk"
)

type ProgressHandler struct {
	Progress *service.ProgressService
}

// Create starts tracking a lesson at zero repeats.
//
//	@Summary		Create lesson progress
//	@Tags			Progress
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vocabsdk.CreateProgressRequest	true	"course and lesson"
//	@Success		201		{object}	vocabsdk.LessonProgress
//	@Failure		400		{object}	vocabsdk.ErrorResponse
//	@Failure		409		{object}	vocabsdk.ErrorResponse	"Progress already exists"
//	@Router			/api/progress [post].
func (h *ProgressHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req vocabsdk.CreateProgressRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.Progress.Create(r.Context(), userID, req.CourseName, req.LessonName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

// List returns the caller's lesson progress.
//
//	@Summary		List lesson progress
//	@Tags			Progress
//	@Security		BearerAuth
//	@Produce		json
//	@Param			course	query	string	false	"course name"
//	@Success		200		{array}	vocabsdk.LessonProgress
//	@Router			/api/progress [get].
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	list, err := h.Progress.List(r.Context(), userID, r.URL.Query().Get("course"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(list))
}

// Get returns the progress of one lesson.
//
//	@Summary		Get lesson progress
//	@Tags			Progress
//	@Security		BearerAuth
//	@Produce		json
//	@Param			course	path		string	true	"course name"
//	@Param			lesson	path		string	true	"lesson name"
//	@Success		200		{object}	vocabsdk.LessonProgress
//	@Failure		404		{object}	vocabsdk.ErrorResponse
//	@Router			/api/progress/{course}/{lesson} [get].
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	p, err := h.Progress.Get(r.Context(), userID, r.PathValue("course"), r.PathValue("lesson"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// Increment adds one repeat.
//
//	@Summary		Increment repeats
//	@Tags			Progress
//	@Security		BearerAuth
//	@Produce		json
//	@Param			course	path		string	true	"course name"
//	@Param			lesson	path		string	true	"lesson name"
//	@Success		200		{object}	vocabsdk.LessonProgress
//	@Failure		404		{object}	vocabsdk.ErrorResponse
//	@Router			/api/progress/{course}/{lesson}/increment [post].
func (h *ProgressHandler) Increment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	p, err := h.Progress.Increment(r.Context(), userID, r.PathValue("course"), r.PathValue("lesson"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// Set overwrites the repeat counter.
//
//	@Summary		Set repeats
//	@Tags			Progress
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			course	path		string						true	"course name"
//	@Param			lesson	path		string						true	"lesson name"
//	@Param			request	body		vocabsdk.SetRepeatsRequest	true	"repeats"
//	@Success		200		{object}	vocabsdk.LessonProgress
//	@Failure		400		{object}	vocabsdk.ErrorResponse	"Negative repeats"
//	@Failure		404		{object}	vocabsdk.ErrorResponse
//	@Router			/api/progress/{course}/{lesson} [put].
func (h *ProgressHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req vocabsdk.SetRepeatsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.Progress.Set(r.Context(), userID, r.PathValue("course"), r.PathValue("lesson"), req.Repeats)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

package http

import (
	"io"
	"net/http"

	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/aussiebroadwan/vocab/pkg/slogx"
)

type SpeechHandler struct {
	Speech *service.SpeechService
}

// ServeHTTP streams pronunciation audio for a word.
//
//	@Summary		Speak a word
//	@Description	Proxies text-to-speech audio from the upstream provider. Errors are JSON and only happen before audio starts.
//	@Tags			Speech
//	@Security		BearerAuth
//	@Produce		audio/mpeg
//	@Param			word	query		string	true	"word to pronounce"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	vocabsdk.ErrorResponse	"Missing word"
//	@Failure		502		{object}	vocabsdk.ErrorResponse	"Upstream failed"
//	@Router			/api/speech [get].
func (h *SpeechHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(w, r); !ok {
		return
	}

	audio, err := h.Speech.Open(r.Context(), r.URL.Query().Get("word"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer audio.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, audio); err != nil {
		// Status already sent.
		slogx.FromContext(r.Context()).Warn("speech stream interrupted", "err", err)
	}
}

package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/vocab/pkg/vocabsdk"
	"github.com/stretchr/testify/require"
)

func TestWordRoutes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.login(t, "a@x.com", "pw")

	imported, err := session.ImportWords(ctx, vocabsdk.ImportWordsRequest{
		CourseName: "Spanish",
		LessonName: "Food",
		Text:       "manzana\tapple\n\nno delimiter\n pan \t bread \n",
	})
	require.NoError(t, err)
	require.Len(t, imported.Words, 2)
	require.NotEmpty(t, imported.Message)
	require.Equal(t, "pan", imported.Words[1].Word)
	require.Equal(t, "bread", imported.Words[1].Translation)
	require.Contains(t, imported.Words[0].Audio, "manzana")

	_, err = session.ImportWords(ctx, vocabsdk.ImportWordsRequest{
		CourseName:      "Spanish",
		LessonName:      "Drinks",
		Text:            "agua=water;leche=milk",
		RowDelimiter:    ";",
		ColumnDelimiter: "=",
	})
	require.NoError(t, err)

	t.Run("import requires lesson and text", func(t *testing.T) {
		_, err := session.ImportWords(ctx, vocabsdk.ImportWordsRequest{Text: "a\tb"})
		requireAPIError(t, err, http.StatusBadRequest, vocabsdk.ErrorCodeValidation)
		_, err = session.ImportWords(ctx, vocabsdk.ImportWordsRequest{LessonName: "x"})
		requireAPIError(t, err, http.StatusBadRequest, vocabsdk.ErrorCodeValidation)
	})

	t.Run("list filters", func(t *testing.T) {
		all, err := session.ListWords(ctx, "", "")
		require.NoError(t, err)
		require.Len(t, all, 4)

		food, err := session.ListWords(ctx, "Spanish", "Food")
		require.NoError(t, err)
		require.Len(t, food, 2)

		none, err := session.ListWords(ctx, "French", "")
		require.NoError(t, err)
		require.NotNil(t, none)
		require.Empty(t, none)
	})

	t.Run("courses and lessons", func(t *testing.T) {
		courses, err := session.Courses(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"Spanish"}, courses)

		lessons, err := session.Lessons(ctx, "Spanish")
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"Food", "Drinks"}, lessons)
	})

	t.Run("update image", func(t *testing.T) {
		w, err := session.UpdateWordImage(ctx, imported.Words[0].ID, "https://img/apple.png")
		require.NoError(t, err)
		require.Equal(t, "https://img/apple.png", w.Image)

		_, err = session.UpdateWordImage(ctx, "missing", "x")
		requireAPIError(t, err, http.StatusNotFound, vocabsdk.ErrorCodeNotFound)
	})

	t.Run("words are private to their owner", func(t *testing.T) {
		other := env.login(t, "b@x.com", "pw")

		words, err := other.ListWords(ctx, "", "")
		require.NoError(t, err)
		require.Empty(t, words)

		_, err = other.UpdateWordImage(ctx, imported.Words[0].ID, "x")
		requireAPIError(t, err, http.StatusNotFound, vocabsdk.ErrorCodeNotFound)
	})

	t.Run("delete lesson", func(t *testing.T) {
		require.NoError(t, session.DeleteLesson(ctx, "Spanish", "Drinks"))

		err := session.DeleteLesson(ctx, "Spanish", "Drinks")
		requireAPIError(t, err, http.StatusNotFound, vocabsdk.ErrorCodeNotFound)

		lessons, err := session.Lessons(ctx, "Spanish")
		require.NoError(t, err)
		require.Equal(t, []string{"Food"}, lessons)
	})

	t.Run("requires bearer token", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/words", "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestSpeechRoute(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.login(t, "a@x.com", "pw")

	t.Run("streams audio", func(t *testing.T) {
		audio, err := session.Speech(ctx, "cat")
		require.NoError(t, err)
		defer audio.Close()

		b, err := io.ReadAll(audio)
		require.NoError(t, err)
		require.Equal(t, "ID3-cat", string(b))
	})

	t.Run("content type", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/speech?word=cat", "", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+session.AccessToken())
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "audio/mpeg", resp.Header.Get("Content-Type"))
	})

	t.Run("missing word", func(t *testing.T) {
		_, err := session.Speech(ctx, "")
		requireAPIError(t, err, http.StatusBadRequest, vocabsdk.ErrorCodeValidation)
	})

	t.Run("upstream failure is json", func(t *testing.T) {
		_, err := session.Speech(ctx, "broken")
		requireAPIError(t, err, http.StatusBadGateway, vocabsdk.ErrorCodeSpeechUnavailable)
	})
}

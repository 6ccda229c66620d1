package httpapi

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestContributeAndList(t *testing.T) {
	h := newTestServer(t)
	token := registerUser(t, h, "linh")

	payload := gin.H{
		"original_text":         "hello",
		"suggested_translation": "chào bạn",
		"source_lang":           "en",
		"target_lang":           "vi",
	}
	rec := doJSON(t, h, http.MethodPost, "/contribute", token, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	// resubmitting the identical suggestion is rejected
	rec = doJSON(t, h, http.MethodPost, "/contribute", token, payload)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "duplicate_contribution", decodeBody(t, rec)["error"])

	// a different suggestion for the same text is fine
	payload["suggested_translation"] = "xin chào"
	rec = doJSON(t, h, http.MethodPost, "/contribute", token, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/contributions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 2)
}

func TestRateUpsertsInPlace(t *testing.T) {
	h := newTestServer(t)
	token := registerUser(t, h, "linh")

	rate := func(value int) map[string]any {
		rec := doJSON(t, h, http.MethodPost, "/rate", token, gin.H{
			"original_text":   "hello",
			"translated_text": "en2vi:hello",
			"rating":          value,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeBody(t, rec)
	}

	require.Equal(t, float64(3), rate(3)["rating"])
	require.Equal(t, float64(5), rate(5)["rating"])

	rec := doJSON(t, h, http.MethodPost, "/translate", token, gin.H{"text": "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/history", token, nil)
	records := decodeList(t, rec)
	require.Len(t, records, 1)
	require.Equal(t, float64(5), records[0]["rating"])
}

func TestRateValidation(t *testing.T) {
	h := newTestServer(t)
	token := registerUser(t, h, "linh")

	for _, value := range []int{0, 6, -1} {
		rec := doJSON(t, h, http.MethodPost, "/rate", token, gin.H{
			"original_text":   "hello",
			"translated_text": "xin chào",
			"rating":          value,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code, "rating %d", value)
		require.Equal(t, "validation_error", decodeBody(t, rec)["error"])
	}
}

func TestUndoRating(t *testing.T) {
	h := newTestServer(t)
	token := registerUser(t, h, "linh")

	rec := doJSON(t, h, http.MethodPost, "/rate", token, gin.H{
		"original_text":   "hello",
		"translated_text": "xin chào",
		"rating":          4,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// undo with the wrong value leaves the rating alone
	rec = doJSON(t, h, http.MethodPost, "/rate/undo", token, gin.H{
		"original_text":   "hello",
		"translated_text": "xin chào",
		"rating":          2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "nothing to undo", decodeBody(t, rec)["message"])

	rec = doJSON(t, h, http.MethodPost, "/rate/undo", token, gin.H{
		"original_text":   "hello",
		"translated_text": "xin chào",
		"rating":          4,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "rating removed", decodeBody(t, rec)["message"])
}

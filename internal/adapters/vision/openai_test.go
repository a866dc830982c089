package vision_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantryos/pantry-be/internal/adapters/vision"
	"github.com/pantryos/pantry-be/test/helpers"
)

// pngPayload is a minimal PNG header, enough for content-type sniffing.
var pngPayload = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

// fakeCompletionServer answers every chat completion request with the
// given assistant message content.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/chat/completions")

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotEmpty(t, payload["model"])
		assert.NotEmpty(t, payload["messages"])

		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   payload["model"],
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
}

func TestRecognizer_Recognize(t *testing.T) {
	t.Run("returns_extracted_code", func(t *testing.T) {
		server := fakeCompletionServer(t, "5901234123457")
		defer server.Close()

		recognizer := vision.NewRecognizer("test-key", "gpt-4o", helpers.TestLogger(),
			vision.WithBaseURL(server.URL))

		code, detected, err := recognizer.Recognize(context.Background(), pngPayload)

		require.NoError(t, err)
		assert.True(t, detected)
		assert.Equal(t, "5901234123457", code)
	})

	t.Run("trims_whitespace_from_answer", func(t *testing.T) {
		server := fakeCompletionServer(t, "  5901234123457\n")
		defer server.Close()

		recognizer := vision.NewRecognizer("test-key", "gpt-4o", helpers.TestLogger(),
			vision.WithBaseURL(server.URL))

		code, detected, err := recognizer.Recognize(context.Background(), pngPayload)

		require.NoError(t, err)
		assert.True(t, detected)
		assert.Equal(t, "5901234123457", code)
	})

	t.Run("unreadable_image_is_detected_false_not_error", func(t *testing.T) {
		server := fakeCompletionServer(t, "UNABLE_TO_READ")
		defer server.Close()

		recognizer := vision.NewRecognizer("test-key", "gpt-4o", helpers.TestLogger(),
			vision.WithBaseURL(server.URL))

		code, detected, err := recognizer.Recognize(context.Background(), pngPayload)

		require.NoError(t, err)
		assert.False(t, detected)
		assert.Empty(t, code)
	})

	t.Run("empty_answer_is_detected_false", func(t *testing.T) {
		server := fakeCompletionServer(t, "")
		defer server.Close()

		recognizer := vision.NewRecognizer("test-key", "gpt-4o", helpers.TestLogger(),
			vision.WithBaseURL(server.URL))

		code, detected, err := recognizer.Recognize(context.Background(), pngPayload)

		require.NoError(t, err)
		assert.False(t, detected)
		assert.Empty(t, code)
	})

	t.Run("api_failure_is_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "invalid image payload"}}`))
		}))
		defer server.Close()

		recognizer := vision.NewRecognizer("test-key", "gpt-4o", helpers.TestLogger(),
			vision.WithBaseURL(server.URL))

		_, detected, err := recognizer.Recognize(context.Background(), pngPayload)

		require.Error(t, err)
		assert.False(t, detected)
	})
}

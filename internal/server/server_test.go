package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlexer/internal/analysis"
	"wordlexer/internal/config"
	"wordlexer/internal/lexer"
	"wordlexer/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, registry *analysis.Registry) http.Handler {
	t.Helper()
	if registry == nil {
		registry = analysis.NewRegistry()
	}
	cfg := config.Default()
	return New(&cfg, registry, nil).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeTokens(t *testing.T, w *httptest.ResponseRecorder) []lexer.Token {
	t.Helper()
	var resp tokensResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Tokens
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil)
	w := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestListSplitters(t *testing.T) {
	h := newTestServer(t, nil)
	w := do(t, h, http.MethodGet, "/splitters", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"splitters":["keyword","standard","whitespace"],"default":"standard"}`, w.Body.String())
}

func TestTokenize(t *testing.T) {
	h := newTestServer(t, nil)

	t.Run("preserve punctuation", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/tokenize", `{"sentence":"Hi, Bob!","punctuation":true}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		tokens := decodeTokens(t, w)
		require.Len(t, tokens, 4)
		assert.Equal(t, ",", tokens[1].Text)
		for _, tok := range tokens {
			assert.Equal(t, 8, tok.SentenceCharacterLength)
		}
	})

	t.Run("plain by default", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/tokenize", `{"sentence":"Hi, Bob!"}`)
		require.Equal(t, http.StatusOK, w.Code)

		tokens := decodeTokens(t, w)
		require.Len(t, tokens, 2)
		assert.Equal(t, "Bob", tokens[1].Text)
		assert.Equal(t, 2, tokens[1].CharacterPosition)
	})

	t.Run("named splitter", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/tokenize", `{"sentence":"Hi, Bob!","splitter":"keyword"}`)
		require.Equal(t, http.StatusOK, w.Code)

		tokens := decodeTokens(t, w)
		require.Len(t, tokens, 1)
		assert.Equal(t, "Hi, Bob!", tokens[0].Text)
	})

	t.Run("empty sentence", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/tokenize", `{"sentence":""}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tokens":[]}`, w.Body.String())
	})

	t.Run("unknown splitter", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/tokenize", `{"sentence":"x","splitter":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/tokenize", `{"sentence":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTokenize_SplitterFailure(t *testing.T) {
	registry := analysis.NewRegistry()
	require.NoError(t, registry.Register("broken", &testutil.StubSplitter{Err: errors.New("boom")}))
	h := newTestServer(t, registry)

	w := do(t, h, http.MethodPost, "/tokenize", `{"sentence":"x","splitter":"broken"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "boom")
}

func TestAnnotate(t *testing.T) {
	h := newTestServer(t, nil)

	t.Run("unspecified length", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/annotate", `{"words":["a","a","b"]}`)
		require.Equal(t, http.StatusOK, w.Code)

		tokens := decodeTokens(t, w)
		require.Len(t, tokens, 3)
		assert.Equal(t, 2, tokens[1].Occurrence)
		assert.Equal(t, 2, tokens[1].Occurrences)
		assert.Equal(t, 1, tokens[2].Occurrences)
		assert.Equal(t, 5, tokens[0].SentenceCharacterLength)
	})

	t.Run("explicit length", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/annotate", `{"words":["the","cat"],"sentence_length":42}`)
		require.Equal(t, http.StatusOK, w.Code)

		for _, tok := range decodeTokens(t, w) {
			assert.Equal(t, 42, tok.SentenceCharacterLength)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/annotate", `{"words":["x"],"sentence_length":-3}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing words", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/annotate", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMetrics(t *testing.T) {
	h := newTestServer(t, nil)
	do(t, h, http.MethodPost, "/tokenize", `{"sentence":"the cat sat"}`)

	w := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `wordlexer_http_requests_total{code="200",route="tokenize"} 1`)
	assert.Contains(t, body, `wordlexer_lexer_sentence_tokens_count{splitter="standard"} 1`)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	s := New(&cfg, analysis.NewRegistry(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}

package server

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wordlexer/internal/analysis"
	"wordlexer/internal/config"
	"wordlexer/internal/lexer"
)

var (
	errBadRequest    = errors.New("bad request")
	errUnprocessable = errors.New("unprocessable sentence")
)

// Handler holds HTTP handlers for the wordlexer API.
type Handler struct {
	registry *analysis.Registry
	defaults config.LexerConfig
	metrics  *Metrics
	logger   *zap.Logger
}

// NewHandler creates a Handler that resolves splitters from registry and
// falls back to defaults when a request leaves options out.
func NewHandler(registry *analysis.Registry, defaults config.LexerConfig, metrics *Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		registry: registry,
		defaults: defaults,
		metrics:  metrics,
		logger:   logger,
	}
}

// RegisterRoutes registers all API routes on the given router.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.wrap("health", h.handleHealth))
	router.GET("/splitters", h.wrap("splitters", h.handleListSplitters))
	router.POST("/tokenize", h.wrap("tokenize", h.handleTokenize))
	router.POST("/annotate", h.wrap("annotate", h.handleAnnotate))
}

type handlerFunc func(c *gin.Context) (any, error)

// wrap renders the result of fn as JSON and maps its error to a status.
func (h *Handler) wrap(route string, fn handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		data, err := fn(c)

		code := http.StatusOK
		if err != nil {
			code = statusOf(err)
			h.logger.Warn("request failed",
				zap.String("route", route),
				zap.Int("code", code),
				zap.Error(err))
			c.JSON(code, gin.H{"error": err.Error()})
		} else {
			c.JSON(code, data)
		}
		h.metrics.observeRequest(route, code, time.Since(start))
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type tokenizeRequest struct {
	Sentence    string `json:"sentence"`
	Punctuation *bool  `json:"punctuation"`
	Splitter    string `json:"splitter"`
}

type annotateRequest struct {
	Words          []string `json:"words" binding:"required"`
	SentenceLength *int     `json:"sentence_length" binding:"omitempty,min=0"`
}

type tokensResponse struct {
	Tokens []lexer.Token `json:"tokens"`
}

func (h *Handler) handleHealth(_ *gin.Context) (any, error) {
	return gin.H{"status": "healthy"}, nil
}

func (h *Handler) handleListSplitters(_ *gin.Context) (any, error) {
	return gin.H{
		"splitters": h.registry.Names(),
		"default":   h.defaults.Splitter,
	}, nil
}

func (h *Handler) handleTokenize(c *gin.Context) (any, error) {
	var req tokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parse request"), errBadRequest)
	}

	name := req.Splitter
	if name == "" {
		name = h.defaults.Splitter
	}
	punctuation := h.defaults.Punctuation
	if req.Punctuation != nil {
		punctuation = *req.Punctuation
	}

	splitter, err := h.registry.Get(name)
	if err != nil {
		return nil, errors.Mark(err, errBadRequest)
	}
	tokens, err := lexer.NewLexer(splitter).Tokenize(req.Sentence, lexer.WithPunctuation(punctuation))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "splitter %s", name), errUnprocessable)
	}

	h.metrics.observeTokens(name, len(tokens))
	h.logger.Debug("tokenized sentence",
		zap.String("splitter", name),
		zap.Bool("punctuation", punctuation),
		zap.Int("tokens", len(tokens)))
	return tokensResponse{Tokens: tokens}, nil
}

func (h *Handler) handleAnnotate(c *gin.Context) (any, error) {
	var req annotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parse request"), errBadRequest)
	}

	length := lexer.UnspecifiedLength
	if req.SentenceLength != nil {
		length = *req.SentenceLength
	}
	tokens := lexer.AnnotateWords(req.Words, length)
	h.metrics.observeTokens("words", len(tokens))
	return tokensResponse{Tokens: tokens}, nil
}

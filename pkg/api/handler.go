package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/regexbook/pkg/conformance"
	"github.com/dmitrymomot/regexbook/pkg/logger"
	"github.com/dmitrymomot/regexbook/pkg/metrics"
	"github.com/dmitrymomot/regexbook/pkg/pattern"
	"github.com/dmitrymomot/regexbook/pkg/requestid"
	"github.com/dmitrymomot/regexbook/pkg/snippet"
	"github.com/dmitrymomot/regexbook/pkg/validator"
)

const defaultMaxInputLength = 4096

// maxEscapedRuneBytes is the longest JSON spelling of one rune: a surrogate pair like "\ud83d\ude00".
const maxEscapedRuneBytes = 12

// Option configures a Handler.
type Option func(*Handler)

// WithCompiler shares a compiler, and its cache, with other components.
func WithCompiler(c *pattern.Compiler) Option {
	return func(h *Handler) {
		if c != nil {
			h.compiler = c
		}
	}
}

// WithRunner sets the conformance runner used by /conformance.
func WithRunner(r *conformance.Runner) Option {
	return func(h *Handler) {
		if r != nil {
			h.runner = r
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxInputLength caps the rune length of match inputs.
func WithMaxInputLength(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxInput = n
		}
	}
}

// Handler serves the catalogue API.
type Handler struct {
	reg      *pattern.Registry
	compiler *pattern.Compiler
	runner   *conformance.Runner
	metrics  *metrics.Metrics
	log      *slog.Logger
	maxInput int
}

// New returns a Handler over reg.
func New(reg *pattern.Registry, opts ...Option) *Handler {
	h := &Handler{
		reg:      reg,
		log:      slog.New(slog.DiscardHandler),
		maxInput: defaultMaxInputLength,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.compiler == nil {
		h.compiler = pattern.NewCompiler()
	}
	if h.runner == nil {
		h.runner = conformance.New(conformance.WithCompiler(h.compiler), conformance.WithLogger(h.log))
	}
	h.log = h.log.With(logger.Component("api"))
	return h
}

// Routes returns the API router. Mount it at any prefix.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Error: &ErrorDetail{
			Code:    "method_not_allowed",
			Message: http.StatusText(http.StatusMethodNotAllowed),
		}})
	})

	r.Get("/domains", h.listDomains)
	r.Route("/domains/{key}", func(r chi.Router) {
		r.Get("/", h.getDomain)
		r.Get("/variants/{variant}", h.getVariant)
		r.Post("/variants/{variant}/match", h.match)
	})
	r.Get("/conformance", h.conformance)
	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.DebugContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

type domainSummary struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Variants []string `json:"variants"`
}

func (h *Handler) listDomains(w http.ResponseWriter, _ *http.Request) {
	domains := h.reg.Domains()
	out := make([]domainSummary, 0, len(domains))
	for _, d := range domains {
		out = append(out, domainSummary{Key: d.Key, Title: d.Title, Variants: d.VariantIDs()})
	}
	writeData(w, out, map[string]any{"count": len(out)})
}

func (h *Handler) getDomain(w http.ResponseWriter, r *http.Request) {
	d, err := h.reg.Domain(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, d, nil)
}

type variantView struct {
	Domain string `json:"domain"`
	pattern.Variant
	Snippets map[snippet.Language]string `json:"snippets"`
}

func (h *Handler) getVariant(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	v, err := h.reg.Variant(key, chi.URLParam(r, "variant"))
	if err != nil {
		writeError(w, err)
		return
	}

	snippets, err := snippet.All(v)
	if err != nil {
		writeError(w, err)
		return
	}
	if lang := r.URL.Query().Get("lang"); lang != "" {
		l, err := snippet.ParseLanguage(lang)
		if err != nil {
			writeError(w, err)
			return
		}
		snippets = map[snippet.Language]string{l: snippets[l]}
	}
	writeData(w, variantView{Domain: key, Variant: v, Snippets: snippets}, nil)
}

type matchRequest struct {
	Input *string `json:"input"`
}

// matchResponse reports the regex result and, for a match, whether the
// domain's semantic checks, such as a Luhn checksum, also pass.
type matchResponse struct {
	Domain     string                      `json:"domain"`
	Variant    string                      `json:"variant"`
	Input      string                      `json:"input"`
	Matched    bool                        `json:"matched"`
	Valid      bool                        `json:"valid"`
	Violations []validator.ValidationError `json:"violations,omitempty"`
}

func (h *Handler) match(w http.ResponseWriter, r *http.Request) {
	key, id := chi.URLParam(r, "key"), chi.URLParam(r, "variant")
	v, err := h.reg.Variant(key, id)
	if err != nil {
		writeError(w, err)
		return
	}

	var req matchRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, int64(h.maxInput)*maxEscapedRuneBytes+1024))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	if err := validator.Apply(
		validator.Rule{
			Check: func() bool { return req.Input != nil },
			Error: validator.ValidationError{
				Field:          "input",
				Message:        "field is required",
				TranslationKey: "validation.required",
			},
		},
	); err != nil {
		writeError(w, err)
		return
	}
	input := *req.Input
	if err := validator.Apply(validator.MaxLenString("input", input, h.maxInput)); err != nil {
		writeError(w, err)
		return
	}

	m, err := h.compiler.Compile(v)
	if err != nil {
		h.log.ErrorContext(r.Context(), "pattern does not compile",
			logger.Domain(key), logger.Variant(id), logger.Error(err))
		writeError(w, err)
		return
	}

	start := time.Now()
	matched, err := m.Match(input)
	h.metrics.ObserveMatch(key, id, matched, time.Since(start))
	if err != nil {
		h.log.WarnContext(r.Context(), "match aborted",
			logger.Domain(key), logger.Variant(id), logger.Input(input), logger.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, Response{Error: &ErrorDetail{
			Code:    "match_aborted",
			Message: err.Error(),
		}})
		return
	}

	resp := matchResponse{Domain: key, Variant: id, Input: input, Matched: matched, Valid: matched}
	if matched {
		verrs := validator.ExtractValidationErrors(
			validator.Apply(validator.SemanticRules(key, id, "input", input)...),
		)
		resp.Violations = verrs
		resp.Valid = len(verrs) == 0
	}
	writeData(w, resp, nil)
}

func (h *Handler) conformance(w http.ResponseWriter, r *http.Request) {
	domains := h.reg.Domains()
	if key := r.URL.Query().Get("domain"); key != "" {
		d, err := h.reg.Domain(key)
		if err != nil {
			writeError(w, err)
			return
		}
		domains = []pattern.Domain{d}
	}

	suite, err := h.runner.RunDomains(r.Context(), domains)
	if err != nil {
		if errors.Is(err, r.Context().Err()) {
			return
		}
		writeError(w, err)
		return
	}
	summary := suite.Summary()
	writeData(w, summary, map[string]any{"ok": summary.OK})
}

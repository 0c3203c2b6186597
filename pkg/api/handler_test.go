package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regexbook/pkg/api"
	"github.com/dmitrymomot/regexbook/pkg/catalog"
	"github.com/dmitrymomot/regexbook/pkg/logger"
	"github.com/dmitrymomot/regexbook/pkg/metrics"
	"github.com/dmitrymomot/regexbook/pkg/pattern"
	"github.com/dmitrymomot/regexbook/pkg/requestid"
)

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Meta  map[string]any   `json:"meta"`
	Error *api.ErrorDetail `json:"error"`
}

func serve(t *testing.T, h http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func newRouter(t *testing.T, opts ...api.Option) http.Handler {
	t.Helper()
	return api.New(catalog.Default(), opts...).Routes()
}

func TestListDomains(t *testing.T) {
	t.Parallel()
	code, env := serve(t, newRouter(t), http.MethodGet, "/domains", "")
	require.Equal(t, http.StatusOK, code)

	var domains []struct {
		Key      string   `json:"key"`
		Variants []string `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &domains))
	require.Len(t, domains, 18)
	assert.Equal(t, "email", domains[0].Key)
	assert.Equal(t, []string{"recommended", "basic"}, domains[0].Variants)
	assert.Equal(t, "windows-path", domains[17].Key)
	assert.EqualValues(t, 18, env.Meta["count"])
}

func TestGetDomain(t *testing.T) {
	t.Parallel()
	router := newRouter(t)

	t.Run("known", func(t *testing.T) {
		code, env := serve(t, router, http.MethodGet, "/domains/ip-address", "")
		require.Equal(t, http.StatusOK, code)
		var d pattern.Domain
		require.NoError(t, json.Unmarshal(env.Data, &d))
		assert.Equal(t, "ip-address", d.Key)
		assert.Equal(t, []string{"ipv4", "ipv6"}, d.VariantIDs())
	})

	t.Run("unknown", func(t *testing.T) {
		code, env := serve(t, router, http.MethodGet, "/domains/nope", "")
		assert.Equal(t, http.StatusNotFound, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_domain", env.Error.Code)
	})
}

func TestGetVariant(t *testing.T) {
	t.Parallel()
	router := newRouter(t)

	t.Run("with snippets", func(t *testing.T) {
		code, env := serve(t, router, http.MethodGet, "/domains/zip-code/variants/recommended", "")
		require.Equal(t, http.StatusOK, code)
		var v struct {
			Domain   string            `json:"domain"`
			ID       string            `json:"id"`
			Source   string            `json:"source"`
			Snippets map[string]string `json:"snippets"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &v))
		assert.Equal(t, "zip-code", v.Domain)
		assert.Equal(t, "recommended", v.ID)
		assert.Equal(t, `^\d{5}(?:-\d{4})?$`, v.Source)
		assert.Len(t, v.Snippets, 7)
	})

	t.Run("single language", func(t *testing.T) {
		code, env := serve(t, router, http.MethodGet, "/domains/zip-code/variants/recommended?lang=python", "")
		require.Equal(t, http.StatusOK, code)
		var v struct {
			Snippets map[string]string `json:"snippets"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &v))
		assert.Len(t, v.Snippets, 1)
		assert.Contains(t, v.Snippets["python"], "fullmatch")
	})

	t.Run("unknown language", func(t *testing.T) {
		code, env := serve(t, router, http.MethodGet, "/domains/zip-code/variants/recommended?lang=cobol", "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "unknown_language", env.Error.Code)
	})

	t.Run("unknown variant", func(t *testing.T) {
		code, env := serve(t, router, http.MethodGet, "/domains/email/variants/strict", "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "unknown_variant", env.Error.Code)
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	router := newRouter(t, api.WithMetrics(m), api.WithMaxInputLength(64))

	type result struct {
		Matched    bool `json:"matched"`
		Valid      bool `json:"valid"`
		Violations []struct {
			TranslationKey string `json:"translation_key"`
		} `json:"violations"`
	}

	tests := []struct {
		name    string
		target  string
		body    string
		matched bool
		valid   bool
	}{
		{"email matches", "/domains/email/variants/recommended/match", `{"input":"user@example.com"}`, true, true},
		{"email rejects leading dot", "/domains/email/variants/recommended/match", `{"input":".user@example.com"}`, false, false},
		{"empty input", "/domains/zip-code/variants/recommended/match", `{"input":""}`, false, false},
		{"date format ok but not a calendar day", "/domains/date/variants/recommended/match", `{"input":"2023-02-29"}`, true, false},
		{"leap day", "/domains/date/variants/recommended/match", `{"input":"2024-02-29"}`, true, true},
		{"card fails luhn", "/domains/credit-debit-card-number/variants/recommended/match", `{"input":"4111111111111112"}`, true, false},
		{"affirmation ignores case", "/domains/affirmation/variants/recommended/match", `{"input":"YES"}`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := serve(t, router, http.MethodPost, tt.target, tt.body)
			require.Equal(t, http.StatusOK, code)
			var res result
			require.NoError(t, json.Unmarshal(env.Data, &res))
			assert.Equal(t, tt.matched, res.Matched)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.matched && !tt.valid {
				assert.NotEmpty(t, res.Violations)
			}
		})
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MatchRequests.WithLabelValues("email", "recommended", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MatchRequests.WithLabelValues("email", "recommended", "false")))
}

func TestMatchErrors(t *testing.T) {
	t.Parallel()
	router := newRouter(t, api.WithMaxInputLength(8))

	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   string
	}{
		{"malformed json", "/domains/email/variants/basic/match", `{"input":`, http.StatusBadRequest, "bad_request"},
		{"unknown field", "/domains/email/variants/basic/match", `{"value":"x"}`, http.StatusBadRequest, "bad_request"},
		{"missing input", "/domains/email/variants/basic/match", `{}`, http.StatusUnprocessableEntity, "validation_error"},
		{"input too long", "/domains/email/variants/basic/match", `{"input":"abcdefghij"}`, http.StatusUnprocessableEntity, "validation_error"},
		{"unknown domain", "/domains/nope/variants/basic/match", `{"input":"x"}`, http.StatusNotFound, "unknown_domain"},
		{"unknown variant", "/domains/email/variants/nope/match", `{"input":"x"}`, http.StatusNotFound, "unknown_variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := serve(t, router, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			if tt.code == "validation_error" {
				assert.NotEmpty(t, env.Error.Details["input"])
			}
		})
	}
}

func TestMatchEscapedInputLength(t *testing.T) {
	t.Parallel()
	router := newRouter(t, api.WithMaxInputLength(1000))
	target := "/domains/text-length/variants/max/match"

	body := func(escaped string, n int) string {
		return `{"input":"` + strings.Repeat(escaped, n) + `"}`
	}

	t.Run("escaped control characters at the limit", func(t *testing.T) {
		code, env := serve(t, router, http.MethodPost, target, body(`\u0001`, 1000))
		assert.Equal(t, http.StatusOK, code)
		assert.Nil(t, env.Error)
	})

	t.Run("escaped control characters past the limit", func(t *testing.T) {
		code, env := serve(t, router, http.MethodPost, target, body(`\u0001`, 1001))
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
	})

	t.Run("surrogate pairs past the limit", func(t *testing.T) {
		code, env := serve(t, router, http.MethodPost, target, body(`\ud83d\ude00`, 1001))
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
	})
}

func TestConformance(t *testing.T) {
	t.Parallel()
	router := newRouter(t)

	t.Run("full catalogue", func(t *testing.T) {
		code, env := serve(t, router, http.MethodGet, "/conformance", "")
		require.Equal(t, http.StatusOK, code)
		var s struct {
			OK      bool `json:"ok"`
			Domains int  `json:"domains"`
			Failed  int  `json:"failed"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &s))
		assert.True(t, s.OK)
		assert.Equal(t, 18, s.Domains)
		assert.Zero(t, s.Failed)
		assert.Equal(t, true, env.Meta["ok"])
	})

	t.Run("single domain", func(t *testing.T) {
		code, env := serve(t, router, http.MethodGet, "/conformance?domain=phone", "")
		require.Equal(t, http.StatusOK, code)
		var s struct {
			Domains int `json:"domains"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &s))
		assert.Equal(t, 1, s.Domains)
	})

	t.Run("unknown domain", func(t *testing.T) {
		code, _ := serve(t, router, http.MethodGet, "/conformance?domain=nope", "")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("failing catalogue still answers 200", func(t *testing.T) {
		reg := pattern.MustRegistry(pattern.Domain{
			Key: "digits",
			Variants: []pattern.Variant{{
				ID:     "recommended",
				Source: `^\d+$`,
				Cases:  []pattern.Case{{Input: "12", Expected: true}, {Input: "1a", Expected: true}},
			}},
		})
		code, env := serve(t, api.New(reg).Routes(), http.MethodGet, "/conformance", "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, false, env.Meta["ok"])
	})
}

func TestNotFoundAndMethod(t *testing.T) {
	t.Parallel()
	router := newRouter(t)

	code, env := serve(t, router, http.MethodGet, "/nothing", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", env.Error.Code)

	code, env = serve(t, router, http.MethodDelete, "/domains", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}

func TestRequestIDAndLogging(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.Extractor),
	)
	router := newRouter(t, api.WithLogger(log))

	req := httptest.NewRequest(http.MethodGet, "/domains/email", nil)
	req.Header.Set(requestid.Header, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(requestid.Header))
	assert.Contains(t, buf.String(), `"msg":"request served"`)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"component":"api"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

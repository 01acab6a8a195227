package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/adpulse/internal/datasets"
	"github.com/spacesedan/adpulse/internal/models"
	"github.com/spacesedan/adpulse/internal/pipeline"
)

func testServer(t *testing.T, health map[string]*atomic.Bool) *Server {
	t.Helper()

	store := &datasets.Store{
		Triggers: []models.CulturalTrigger{
			{Keyword: "fair skin", Category: "Colorism", Severity: "critical", RiskWeight: 40,
				AlertMessage: "Fair skin references trigger colorism backlash"},
		},
	}
	analyzer := pipeline.New(store, nil)
	return New(analyzer, store, NewResponseCache(false), health)
}

func postAnalyze(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze_OK(t *testing.T) {
	s := testServer(t, nil)

	rec := postAnalyze(t, s, models.AnalysisRequest{
		Caption:  "Celebrate the joy of the season with your family!",
		Platform: "Instagram",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalysisResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "text_only", resp.AnalysisType)
	assert.NotEmpty(t, resp.Recommendation.Status)
}

func TestHandleAnalyze_ValidationErrors(t *testing.T) {
	s := testServer(t, nil)

	noContent := postAnalyze(t, s, models.AnalysisRequest{Platform: "Instagram"})
	assert.Equal(t, http.StatusBadRequest, noContent.Code)

	badPlatform := postAnalyze(t, s, models.AnalysisRequest{Caption: "hi", Platform: "orkut"})
	assert.Equal(t, http.StatusBadRequest, badPlatform.Code)
}

func TestHandleAnalyze_BadJSON(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_CachesTextOnly(t *testing.T) {
	s := testServer(t, nil)

	req := models.AnalysisRequest{
		Caption:  "A perfectly cacheable caption",
		Platform: "Twitter",
	}

	first := postAnalyze(t, s, req)
	require.Equal(t, http.StatusOK, first.Code)

	cached, ok := s.cache.Get(context.Background(), CacheKey(req))
	require.True(t, ok)
	assert.Equal(t, "text_only", cached.AnalysisType)

	second := postAnalyze(t, s, req)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestHandleHealth(t *testing.T) {
	healthy := &atomic.Bool{}
	healthy.Store(true)
	s := testServer(t, map[string]*atomic.Bool{"response_cache": healthy})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Checks["response_cache"])
	assert.Equal(t, "disabled", resp.Checks["image_analysis"])
	assert.Equal(t, 1, resp.Datasets["cultural_triggers"])
	assert.Equal(t, 0, resp.Datasets["historical_campaigns"])

	healthy.Store(false)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNotFound(t *testing.T) {
	s := testServer(t, nil)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCacheKey_Distinguishes(t *testing.T) {
	base := models.AnalysisRequest{Caption: "a", Platform: "Instagram"}
	other := models.AnalysisRequest{Caption: "a", Platform: "Instagram", Influencer: true}

	assert.NotEqual(t, CacheKey(base), CacheKey(other))
	assert.Equal(t, CacheKey(base), CacheKey(base))
}

func TestResponseCache_InsertUntilFull(t *testing.T) {
	c := NewResponseCache(false)
	ctx := context.Background()

	keyAt := func(i int) string {
		return CacheKey(models.AnalysisRequest{Caption: "c", Platform: "x", PostingDate: strconv.Itoa(i)})
	}

	for i := 0; i < memoryCacheLimit+10; i++ {
		c.Put(ctx, keyAt(i), &models.AnalysisResponse{})
	}

	assert.Equal(t, memoryCacheLimit, len(c.entries))

	// Early entries are never evicted; late arrivals are dropped.
	_, ok := c.Get(ctx, keyAt(0))
	assert.True(t, ok)
	_, ok = c.Get(ctx, keyAt(memoryCacheLimit+5))
	assert.False(t, ok)

	// A full cache still accepts updates for keys it already holds.
	updated := &models.AnalysisResponse{AnalysisType: "text_only"}
	c.Put(ctx, keyAt(0), updated)
	got, ok := c.Get(ctx, keyAt(0))
	require.True(t, ok)
	assert.Equal(t, updated, got)
}

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/casve-tools/decision-api/api"
	"github.com/casve-tools/decision-api/domain"
	"github.com/casve-tools/decision-api/llm"
	"github.com/casve-tools/decision-api/store"
)

// stubGenerator satisfies llm.Generator without network calls.
type stubGenerator struct {
	result    *llm.Result
	err       error
	gotSystem string
	gotUser   string
	calls     int
}

func (s *stubGenerator) GenerateOptions(_ context.Context, systemPrompt, userPrompt string) (*llm.Result, error) {
	s.calls++
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type testEnv struct {
	handler *api.Handler
	gen     *stubGenerator
	logDir  string
}

func newTestEnv(t *testing.T, gen *stubGenerator) *testEnv {
	t.Helper()
	dir := t.TempDir()
	fs := store.NewFileStore(dir, zap.NewNop().Sugar())
	return &testEnv{
		handler: api.NewHandler(fs, gen, zap.NewNop().Sugar()),
		gen:     gen,
		logDir:  dir,
	}
}

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func countEntries(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	var entries []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &entries))
	return len(entries)
}

const generateBody = `{
	"sessionId": "s1",
	"step0": {"values":["growth"],"interests":[],"strengths":[],"mustHaveConstraints":[],"niceToHaveConstraints":[],"concerns":null},
	"step1": {"problemDefinition":"choose a job","internalCues":[],"externalCues":[],"keyQuestions":[]},
	"step2": {"evaluationCriteria":["salary"],"constraints":[],"informationTemplate":[{"field":"Core Role (coreRole)","description":"main duty"}]}
}`

func TestGenerateOptions(t *testing.T) {
	gen := &stubGenerator{result: &llm.Result{
		Content: "```json\n{\"options\":[{\"title\":\"Data Analyst\",\"description\":\"d\",\"profile\":{\"coreRole\":\"analysis\"},\"matchReason\":\"m\"}]}\n```",
		Model:   "gpt-4-turbo-preview",
		Usage:   domain.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
	}}
	env := newTestEnv(t, gen)

	rec := postJSON(t, env.handler.GenerateOptions, "/api/generate-options", generateBody)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.GenerateOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, "Data Analyst", resp.Options[0]["title"])
	require.NotNil(t, resp.TokensUsed)
	assert.Equal(t, 30, resp.TokensUsed.TotalTokens)

	// Prompts assembled from the worksheet reach the generator.
	assert.Contains(t, gen.gotUser, "**Values**: growth")
	assert.Contains(t, gen.gotUser, "**Decision Problem**: choose a job")
	assert.Contains(t, gen.gotUser, "**Comparison Criteria**: salary")
	assert.Contains(t, gen.gotSystem, `"coreRole"`)

	assert.Equal(t, 1, countEntries(t, filepath.Join(env.logDir, "s1", "user_activity.json")))
	assert.Equal(t, 1, countEntries(t, filepath.Join(env.logDir, "s1", "llm_generations.json")))
}

func TestGenerateOptionsTwiceAccumulates(t *testing.T) {
	gen := &stubGenerator{result: &llm.Result{Content: `{"options":[]}`, Model: "gpt-4-turbo-preview"}}
	env := newTestEnv(t, gen)

	for i := 0; i < 2; i++ {
		rec := postJSON(t, env.handler.GenerateOptions, "/api/generate-options", generateBody)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2, countEntries(t, filepath.Join(env.logDir, "s1", "user_activity.json")))
	assert.Equal(t, 2, countEntries(t, filepath.Join(env.logDir, "s1", "llm_generations.json")))
}

func TestGenerateOptionsGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: context.DeadlineExceeded}
	env := newTestEnv(t, gen)

	rec := postJSON(t, env.handler.GenerateOptions, "/api/generate-options", generateBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp domain.GenerateOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "LLM generation failed", resp.Error)
	assert.Nil(t, resp.Options)

	// The activity was logged; the failed attempt never reaches the generation log.
	assert.Equal(t, 1, countEntries(t, filepath.Join(env.logDir, "s1", "user_activity.json")))
	assert.Equal(t, 0, countEntries(t, filepath.Join(env.logDir, "s1", "llm_generations.json")))
}

func TestGenerateOptionsParseFailure(t *testing.T) {
	gen := &stubGenerator{result: &llm.Result{Content: "I suggest becoming a park ranger.", Model: "gpt-4-turbo-preview"}}
	env := newTestEnv(t, gen)

	rec := postJSON(t, env.handler.GenerateOptions, "/api/generate-options", generateBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp domain.GenerateOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to parse LLM response", resp.Error)

	assert.Equal(t, 0, countEntries(t, filepath.Join(env.logDir, "s1", "llm_generations.json")))
}

func TestGenerateOptionsRejectsHostileSessionID(t *testing.T) {
	gen := &stubGenerator{result: &llm.Result{Content: `{"options":[]}`}}
	env := newTestEnv(t, gen)

	body := strings.Replace(generateBody, `"s1"`, `"../../etc"`, 1)
	rec := postJSON(t, env.handler.GenerateOptions, "/api/generate-options", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, gen.calls)
}

func TestSaveReportOverwrites(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})

	first := `{"sessionId":"s1","step0":{"v":"a"},"step1":{},"step2":{},"step3":{},"step4":{}}`
	second := `{"sessionId":"s1","step0":{"v":"b"},"step1":{},"step2":{},"step3":{},"step4":{}}`

	rec := postJSON(t, env.handler.SaveReport, "/api/save-report", first)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = postJSON(t, env.handler.SaveReport, "/api/save-report", second)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SaveReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Report data saved successfully", resp.Message)

	data, err := os.ReadFile(filepath.Join(env.logDir, "s1", "report.json"))
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	step0 := doc["step0"].(map[string]interface{})
	assert.Equal(t, "b", step0["v"])
}

func TestRootAndHealth(t *testing.T) {
	env := newTestEnv(t, &stubGenerator{})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, env.handler.Root(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var root map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &root))
	assert.Equal(t, "running", root["status"])
	assert.Equal(t, "CASVE Decision Support API", root["message"])
	assert.Equal(t, api.Version, root["version"])

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, env.handler.Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

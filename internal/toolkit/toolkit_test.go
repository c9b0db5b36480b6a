package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regulens/internal/regsgov"
)

// fakeSource is a canned comment source for tool tests.
type fakeSource struct {
	count    int
	countErr error
	comments []regsgov.Comment
	fetchErr error
	connMsg  string
	connErr  error
}

func (f *fakeSource) GetDocumentCommentCount(ctx context.Context, documentID string) (int, error) {
	return f.count, f.countErr
}

func (f *fakeSource) FetchCommentsByDocumentID(ctx context.Context, documentID string, maxComments int) ([]regsgov.Comment, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if maxComments < len(f.comments) {
		return f.comments[:maxComments], nil
	}
	return f.comments, nil
}

func (f *fakeSource) TestConnection(ctx context.Context) (string, error) {
	return f.connMsg, f.connErr
}

func decode(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestExecuteUnknownTool(t *testing.T) {
	tools := New(&fakeSource{})
	out := decode(t, tools.Execute(context.Background(), "does_not_exist", nil))

	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Unknown tool: does_not_exist", out["error"])
	available, ok := out["available_tools"].([]any)
	require.True(t, ok)
	assert.Len(t, available, 6)
	assert.Contains(t, available, "analyze_regulatory_comments")
	assert.Contains(t, available, "test_api_connection")
}

func TestAnalyzeRequiresDocumentID(t *testing.T) {
	tools := New(&fakeSource{})
	out := decode(t, tools.Execute(context.Background(), ToolAnalyzeComments, json.RawMessage(`{}`)))

	assert.Equal(t, false, out["success"])
	assert.Contains(t, out["error"], "document_id")
}

func TestAnalyzeRejectsUnknownDepth(t *testing.T) {
	tools := New(&fakeSource{})
	params := json.RawMessage(`{"document_id":"EPA-1","analysis_depth":"forensic"}`)
	out := decode(t, tools.Execute(context.Background(), ToolAnalyzeComments, params))

	assert.Equal(t, false, out["success"])
	assert.Contains(t, out["error"], "analysis_depth")
}

func TestAnalyzeZeroCommentsIsSuccess(t *testing.T) {
	tools := New(&fakeSource{comments: nil})
	params := json.RawMessage(`{"document_id":"EPA-1"}`)
	out := decode(t, tools.Execute(context.Background(), ToolAnalyzeComments, params))

	assert.Equal(t, true, out["success"])
	assert.Equal(t, "No comments found for this document", out["message"])

	analysisOut, ok := out["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "No public comments were found for this document.", analysisOut["summary"])
	assert.Equal(t, "No comments available for analysis", analysisOut["sentiment_summary"])
	assert.Equal(t, float64(0), analysisOut["total_comments_analyzed"])
	assert.Empty(t, analysisOut["key_points"])
}

func TestAnalyzeDepthShapes(t *testing.T) {
	src := &fakeSource{comments: []regsgov.Comment{
		{ID: "c-1", CommentText: "We recommend that the compliance deadline be extended.", OrganizationName: "Trade Group"},
		{ID: "c-2", CommentText: "The cost burden worries us.", SubmitterName: "Jane Doe"},
	}}
	tools := New(src)

	basic := decode(t, tools.Execute(context.Background(), ToolAnalyzeComments,
		json.RawMessage(`{"document_id":"EPA-1","analysis_depth":"basic"}`)))
	require.Equal(t, true, basic["success"])
	basicAnalysis := basic["analysis"].(map[string]any)
	assert.Contains(t, basicAnalysis, "summary")
	assert.NotContains(t, basicAnalysis, "regulatory_themes")

	comprehensive := decode(t, tools.Execute(context.Background(), ToolAnalyzeComments,
		json.RawMessage(`{"document_id":"EPA-1","analysis_depth":"comprehensive"}`)))
	require.Equal(t, true, comprehensive["success"])
	compAnalysis := comprehensive["analysis"].(map[string]any)
	meta, ok := compAnalysis["comprehensive_metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.0", meta["analysis_version"])
	assert.Len(t, meta["features_used"], 5)
	assert.InDelta(t, 0.2, meta["analysis_confidence"], 1e-9)
}

func TestAnalyzeFetchErrorEnvelope(t *testing.T) {
	tools := New(&fakeSource{fetchErr: errors.New("upstream unavailable")})
	out := decode(t, tools.Execute(context.Background(), ToolAnalyzeComments,
		json.RawMessage(`{"document_id":"EPA-1"}`)))

	assert.Equal(t, false, out["success"])
	assert.Equal(t, "upstream unavailable", out["error"])
	assert.Equal(t, "EPA-1", out["document_id"])
}

func TestCommentCountEnvelope(t *testing.T) {
	tools := New(&fakeSource{count: 42})
	out := decode(t, tools.Execute(context.Background(), ToolCommentCount,
		json.RawMessage(`{"document_id":"EPA-1"}`)))

	assert.Equal(t, true, out["success"])
	assert.Equal(t, "EPA-1", out["document_id"])
	assert.Equal(t, float64(42), out["comment_count"])
	assert.NotEmpty(t, out["timestamp"])
}

func TestTestConnectionTool(t *testing.T) {
	tools := New(&fakeSource{connMsg: "Successfully connected to Regulations.gov API"})
	out := decode(t, tools.Execute(context.Background(), ToolTestConnection, nil))
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Successfully connected to Regulations.gov API", out["message"])

	failing := New(&fakeSource{connErr: errors.New("API key invalid")})
	out = decode(t, failing.Execute(context.Background(), ToolTestConnection, nil))
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "API key invalid", out["error"])
}

func TestSynthesizeInsightsRequiresResults(t *testing.T) {
	tools := New(&fakeSource{})
	out := decode(t, tools.Execute(context.Background(), ToolSynthesizeInsights, json.RawMessage(`{}`)))

	assert.Equal(t, false, out["success"])
	assert.Contains(t, out["error"], "analysis_results")
}

func TestSynthesizeInsightsPassthroughOnFailedUpstream(t *testing.T) {
	tools := New(&fakeSource{})
	upstream := `{"success":false,"error":"boom","document_id":"EPA-1"}`
	params := json.RawMessage(`{"analysis_results":` + upstream + `}`)
	out := decode(t, tools.Execute(context.Background(), ToolSynthesizeInsights, params))

	assert.Equal(t, false, out["success"])
	assert.Equal(t, "boom", out["error"])
}

func TestSynthesizeInsightsExecutive(t *testing.T) {
	src := &fakeSource{comments: []regsgov.Comment{
		{ID: "c-1", CommentText: "We recommend that the compliance deadline be extended.", OrganizationName: "Trade Group"},
	}}
	tools := New(src)
	analyzed := tools.Execute(context.Background(), ToolAnalyzeComments,
		json.RawMessage(`{"document_id":"EPA-1"}`))

	params, err := json.Marshal(map[string]any{
		"analysis_results": json.RawMessage(analyzed),
		"summary_type":     SummaryExecutive,
	})
	require.NoError(t, err)
	out := decode(t, tools.Execute(context.Background(), ToolSynthesizeInsights, params))

	require.Equal(t, true, out["success"])
	assert.Equal(t, SummaryExecutive, out["summary_type"])
	insights, ok := out["insights"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, insights, "overview")
	assert.Contains(t, insights, "stakeholder_engagement")
}

func TestIdentifyThemesBuckets(t *testing.T) {
	src := &fakeSource{comments: []regsgov.Comment{
		{ID: "c-1", CommentText: "The compliance burden and reporting costs are heavy.", OrganizationName: "Trade Group"},
	}}
	tools := New(src)
	analyzed := tools.Execute(context.Background(), ToolAnalyzeComments,
		json.RawMessage(`{"document_id":"EPA-1"}`))

	params, _ := json.Marshal(map[string]any{"analysis_results": json.RawMessage(analyzed)})
	out := decode(t, tools.Execute(context.Background(), ToolIdentifyThemes, params))

	require.Equal(t, true, out["success"])
	categorized, ok := out["theme_categories"].(map[string]any)
	require.True(t, ok)
	for _, bucket := range []string{"compliance", "economic", "environmental", "safety", "technical", "timeline"} {
		assert.Contains(t, categorized, bucket)
	}
}

func TestAssessConcernsCounts(t *testing.T) {
	src := &fakeSource{comments: []regsgov.Comment{
		{ID: "c-1", CommentText: "This rule is too expensive for our members.", OrganizationName: "Trade Group"},
		{ID: "c-2", CommentText: "The new forms are confusing to fill out.", SubmitterName: "Jane Doe"},
	}}
	tools := New(src)
	analyzed := tools.Execute(context.Background(), ToolAnalyzeComments,
		json.RawMessage(`{"document_id":"EPA-1"}`))

	params, _ := json.Marshal(map[string]any{"analysis_results": json.RawMessage(analyzed)})
	out := decode(t, tools.Execute(context.Background(), ToolAssessConcerns, params))

	require.Equal(t, true, out["success"])
	concerns, ok := out["concern_analysis"].(map[string]any)
	require.True(t, ok)
	// One organization and one individual concern, each mirrored into
	// the common bucket.
	assert.Equal(t, float64(4), concerns["total_concerns"])
	byType := concerns["concerns_by_type"].(map[string]any)
	assert.Equal(t, float64(1), byType["organizations"])
	assert.Equal(t, float64(1), byType["individuals"])
	assert.Equal(t, float64(2), byType["common"])
}

func TestDefinitionsMatchDispatch(t *testing.T) {
	names := ToolNames()
	assert.Len(t, names, 6)
	defs := Definitions()
	require.Len(t, defs, 6)
	for i, def := range defs {
		assert.Equal(t, "function", def.Type)
		assert.Equal(t, names[i], def.Function.Name)
		assert.True(t, json.Valid(def.Function.Parameters), "schema for %s must be valid JSON", def.Function.Name)
	}
}

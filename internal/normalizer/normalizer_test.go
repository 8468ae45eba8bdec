package normalizer

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openclaw/internal/kimi"
	"openclaw/internal/spec"
)

// fakeKimi is a canned Kimi client for tests.
type fakeKimi struct {
	result *kimi.Normalization
	err    error
	calls  int
}

func (f *fakeKimi) Normalize(ctx context.Context, intent string) (*kimi.Normalization, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestNormalize_PatternMethod(t *testing.T) {
	n := New(nil)

	s, err := n.Normalize(context.Background(), "  surveille le budget phi  ")
	require.NoError(t, err)

	assert.Equal(t, MethodPattern, s.NormalizationMethod)
	assert.Equal(t, "surveille le budget phi", s.RawIntent)
	assert.Equal(t, 0.91, s.Confidence)
	assert.Equal(t, []string{"C49"}, s.ToolsRecommended)
	assert.NotEmpty(t, s.ID)

	require.NotNil(t, s.CanonicalSpec)
	assert.Equal(t, spec.Context, s.CanonicalSpec.Context)
	assert.Equal(t, spec.Type, s.CanonicalSpec.Type)
	assert.Equal(t, "PhiBudgetGuardian", s.CanonicalSpec.Citizen)
	assert.Equal(t, "surveille le budget phi", s.CanonicalSpec.Source)
	assert.Equal(t, "budget", s.CanonicalSpec.Parameters["matched_keyword"])
}

func TestNormalize_PatternShortCircuitsKimi(t *testing.T) {
	fake := &fakeKimi{result: &kimi.Normalization{Citizen: "Other"}}
	n := New(fake)

	s, err := n.Normalize(context.Background(), "rollback the deploy")
	require.NoError(t, err)
	assert.Equal(t, MethodPattern, s.NormalizationMethod)
	assert.Zero(t, fake.calls, "kimi must not be consulted when a pattern fires")
}

func TestNormalize_KimiMethod(t *testing.T) {
	fake := &fakeKimi{result: &kimi.Normalization{
		Citizen:    "CustomCitizen",
		Confidence: 0.77,
		Tools:      []string{"C60"},
		Parameters: map[string]string{"scope": "global"},
	}}
	n := New(fake)

	s, err := n.Normalize(context.Background(), "do something unusual")
	require.NoError(t, err)

	assert.Equal(t, MethodKimi, s.NormalizationMethod)
	assert.Equal(t, 0.77, s.Confidence)
	assert.Equal(t, []string{"C60"}, s.ToolsRecommended)
	assert.Equal(t, "CustomCitizen", s.CanonicalSpec.Citizen)
	assert.Equal(t, "global", s.CanonicalSpec.Parameters["scope"])
	assert.Equal(t, 1, fake.calls)
}

func TestNormalize_KimiFailureFallsBack(t *testing.T) {
	fake := &fakeKimi{err: fmt.Errorf("connection refused")}
	n := New(fake)

	s, err := n.Normalize(context.Background(), "do something unusual")
	require.NoError(t, err, "a failing delegation must not fail the call")

	assert.Equal(t, MethodFallback, s.NormalizationMethod)
	assert.Equal(t, 0.30, s.Confidence)
	assert.Equal(t, "UnclassifiedIntent", s.CanonicalSpec.Citizen)
	assert.Empty(t, s.ToolsRecommended)
}

func TestNormalize_FallbackWithoutKimi(t *testing.T) {
	n := New(nil)

	s, err := n.Normalize(context.Background(), "make coffee")
	require.NoError(t, err)
	assert.Equal(t, MethodFallback, s.NormalizationMethod)
	assert.Equal(t, 0.30, s.Confidence)
}

func TestNormalize_EmptyIntent(t *testing.T) {
	n := New(nil)
	_, err := n.Normalize(context.Background(), "   ")
	require.Error(t, err)
}

func TestSuggestion_JSONRoundTrip(t *testing.T) {
	n := New(nil)
	s, err := n.Normalize(context.Background(), "run a consensus round")
	require.NoError(t, err)

	line, err := s.MarshalLine()
	require.NoError(t, err)

	var decoded Suggestion
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	assert.Equal(t, s.RawIntent, decoded.RawIntent)
	assert.Equal(t, s.NormalizationMethod, decoded.NormalizationMethod)
	assert.Equal(t, s.Confidence, decoded.Confidence)

	pretty, err := s.MarshalIndent()
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(pretty)))
}

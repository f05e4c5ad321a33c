package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/abhisek/lessonloop/internal/content"
	"github.com/abhisek/lessonloop/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_OfflineIsConstant(t *testing.T) {
	g := NewGenerator(offlineClient())
	ctx := context.Background()

	for grade := 1; grade <= 12; grade++ {
		for _, topic := range []string{"Solar System", "Fractions", "x"} {
			r := g.Generate(ctx, grade, topic, nil)
			require.NotEmpty(t, r.Explanation, "grade %d topic %q", grade, topic)
			require.Len(t, r.Questions, 1)
			assert.Equal(t, "Angle < 90?", r.Questions[0].Question)
			assert.Equal(t, "Acute", r.Questions[0].Answer)
		}
	}
}

func TestReviewer_OfflineFailsFirstDraft(t *testing.T) {
	c := offlineClient()
	draft := NewGenerator(c).Generate(context.Background(), 4, "Solar System", nil)

	v := NewReviewer(c).Review(context.Background(), draft, 4)
	assert.Equal(t, content.StatusFail, v.Status)
	assert.Equal(t, []string{"(Mock) Too complex.", "(Mock) Add example."}, v.Feedback)
}

func TestReviewer_OfflineIsIdempotent(t *testing.T) {
	c := offlineClient()
	rv := NewReviewer(c)
	draft := NewGenerator(c).Generate(context.Background(), 9, "Volcanoes", nil)

	first := rv.Review(context.Background(), draft, 9)
	second := rv.Review(context.Background(), draft, 9)
	assert.Equal(t, first, second)
}

func TestOfflineReviewer_PassesRefinementPrompts(t *testing.T) {
	// Any refinement prompt carries the marker, whatever the feedback.
	feedbacks := [][]string{
		{"(Mock) Too complex.", "(Mock) Add example."},
		{"x"},
		{"don't", `"quoted"`},
	}
	for _, fb := range feedbacks {
		prompt := buildGeneratorPrompt(4, "Solar System", fb)
		require.Contains(t, prompt, FeedbackMarker)
		v := content.ParseReviewVerdict(cannedReply(RoleReviewer, prompt))
		assert.True(t, v.Passed(), fmt.Sprint(fb))
		assert.Equal(t, []string{"Looks good now."}, v.Feedback)
	}

	prompt := buildGeneratorPrompt(4, "Solar System", nil)
	v := content.ParseReviewVerdict(cannedReply(RoleReviewer, prompt))
	assert.False(t, v.Passed())
	assert.Len(t, v.Feedback, 2)
}

func TestGenerator_ProviderErrorYieldsSentinel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	c := NewClient(mock, DefaultConfig(), nil)

	r := NewGenerator(c).Generate(context.Background(), 4, "Solar System", nil)
	assert.True(t, r.IsSentinel())
	assert.Equal(t, "Error parsing JSON", r.Explanation)
	assert.Empty(t, r.Questions)
}

func TestGenerator_RemoteFeedbackReachesPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"Mercury is closest to the Sun.","questions":[{"question":"Closest planet?","options":["Mercury","Mars"],"answer":"Mercury"}]}`),
	})
	c := NewClient(mock, DefaultConfig(), nil)

	r := NewGenerator(c).Generate(context.Background(), 5, "Solar System", []string{"Add example."})
	require.False(t, r.IsSentinel())
	assert.Equal(t, "Mercury", r.Questions[0].Answer)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "You are a generator agent for an educational system. Generate content for Grade 5")
	assert.Contains(t, prompts[0], "CRITICAL FEEDBACK TO ADDRESS: ['Add example.']")
}

func TestReviewer_SentinelInputStillReviewed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"status":"fail","feedback":["Empty content."]}`)})
	c := NewClient(mock, DefaultConfig(), nil)

	v := NewReviewer(c).Review(context.Background(), content.SentinelResult(), 4)
	assert.Equal(t, content.StatusFail, v.Status)
	assert.Equal(t, []string{"Empty content."}, v.Feedback)
	assert.Contains(t, mock.Prompts()[0], "Error parsing JSON")
}

func TestReviewer_InvalidOutputYieldsSentinel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"status":"ok"}`)})
	c := NewClient(mock, DefaultConfig(), nil)

	v := NewReviewer(c).Review(context.Background(), content.SentinelResult(), 4)
	assert.True(t, v.IsSentinel())
}

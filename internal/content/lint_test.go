package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLint_Clean(t *testing.T) {
	r := ParseGeneratorResult(angleDraft)
	assert.Empty(t, Lint(r))
}

func TestLint_AnswerNotInOptions(t *testing.T) {
	r := GeneratorResult{
		Explanation: "Planets orbit the Sun.",
		Questions: []Question{
			{Question: "Closest planet?", Options: []string{"Venus", "Mars"}, Answer: "Mercury"},
		},
	}
	warnings := Lint(r)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "question 1")
	assert.Contains(t, warnings[0], "Mercury")
}

func TestLint_Issues(t *testing.T) {
	r := GeneratorResult{
		Explanation: " ",
		Questions: []Question{
			{Question: "", Options: []string{"A", "A"}, Answer: "A"},
		},
	}
	warnings := Lint(r)
	assert.Contains(t, warnings, "explanation is empty")
	assert.Contains(t, warnings, "question 1: text is empty")
	assert.Contains(t, warnings, `question 1: duplicate option "A"`)
}

func TestLint_Sentinel(t *testing.T) {
	assert.Empty(t, Lint(SentinelResult()))
}

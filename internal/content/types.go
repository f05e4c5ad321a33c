package content

// Question is one multiple-choice item. Answer is expected to be one of
// Options but nothing enforces it; see Lint.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// GeneratorResult is the generator stage output.
type GeneratorResult struct {
	Explanation string     `json:"explanation"`
	Questions   []Question `json:"questions"`
}

// SentinelExplanation marks a GeneratorResult that stands in for output
// that could not be parsed.
const SentinelExplanation = "Error parsing JSON"

// SentinelResult returns the value substituted for unparseable generator
// output.
func SentinelResult() GeneratorResult {
	return GeneratorResult{Explanation: SentinelExplanation, Questions: []Question{}}
}

// IsSentinel reports whether r is the parse-failure placeholder.
func (r GeneratorResult) IsSentinel() bool {
	return r.Explanation == SentinelExplanation && len(r.Questions) == 0
}

// Status is a review outcome.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// ReviewVerdict is the reviewer stage output.
type ReviewVerdict struct {
	Status   Status   `json:"status"`
	Feedback []string `json:"feedback"`
}

// SentinelFeedback is the only feedback entry of a placeholder verdict.
const SentinelFeedback = "parse error"

// SentinelVerdict returns the value substituted for unparseable reviewer
// output.
func SentinelVerdict() ReviewVerdict {
	return ReviewVerdict{Status: StatusFail, Feedback: []string{SentinelFeedback}}
}

// Passed reports whether the reviewer accepted the content.
func (v ReviewVerdict) Passed() bool {
	return v.Status == StatusPass
}

// IsSentinel reports whether v is the parse-failure placeholder.
func (v ReviewVerdict) IsSentinel() bool {
	return v.Status == StatusFail && len(v.Feedback) == 1 && v.Feedback[0] == SentinelFeedback
}

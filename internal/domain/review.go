package domain

// ReviewRequest asks the AI reviewer for feedback on a problem attempt.
// Code may be empty, in which case only hints are generated.
type ReviewRequest struct {
	Code               string `json:"code"`
	ProblemTitle       string `json:"problemTitle"`
	ProblemDescription string `json:"problemDescription"`
}

type ReviewResponse struct {
	Review string `json:"review,omitempty"`
	Hints  string `json:"hints"`
}

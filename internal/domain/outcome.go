package domain

// Outcome classifies the result of one reminder dispatch attempt.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

func (o Outcome) String() string {
	return string(o)
}

package entities

// OutcomeKind is the terminal classification of one question.
type OutcomeKind string

// The five outcome kinds a question can resolve to. Outcomes are
// per-request values; nothing is carried across requests.
const (
	OutcomeSQL     OutcomeKind = "sql"
	OutcomeChart   OutcomeKind = "chart"
	OutcomeSeatmap OutcomeKind = "seatmap"
	OutcomeChat    OutcomeKind = "chat"
	OutcomeError   OutcomeKind = "error"
)

// Outcome is what the router hands back to the caller. Only the fields
// belonging to Kind are set. SQL carries validated statement text that the
// caller may execute; Text is display-only content and is never executed.
type Outcome struct {
	Kind      OutcomeKind `json:"kind"`
	SQL       string      `json:"sql,omitempty"`
	EmpCode   string      `json:"emp_code,omitempty"`
	EmpName   string      `json:"emp_name,omitempty"`
	ShowNames bool        `json:"show_names,omitempty"`
	Text      string      `json:"text,omitempty"`
	Reason    string      `json:"reason,omitempty"`
}

// SQLOutcome wraps a statement that passed the query guard.
func SQLOutcome(stmt string) *Outcome {
	return &Outcome{Kind: OutcomeSQL, SQL: stmt}
}

// ChartOutcome requests the monthly usage chart for one employee.
func ChartOutcome(code, name string) *Outcome {
	return &Outcome{Kind: OutcomeChart, EmpCode: code, EmpName: name}
}

// SeatmapOutcome requests the current seat map, optionally with occupant names.
func SeatmapOutcome(showNames bool) *Outcome {
	return &Outcome{Kind: OutcomeSeatmap, ShowNames: showNames}
}

// ChatOutcome passes free-form reply text through verbatim.
func ChatOutcome(text string) *Outcome {
	return &Outcome{Kind: OutcomeChat, Text: text}
}

// ErrorOutcome reports a failed request with a human-readable reason.
func ErrorOutcome(reason string) *Outcome {
	return &Outcome{Kind: OutcomeError, Reason: reason}
}

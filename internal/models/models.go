package models

// JobApplication is one tracked application, mirroring a single sheet row.
type JobApplication struct {
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
	Date        string `json:"date"` // YYYY-MM-DD
	Platform    string `json:"platform"`
	Status      string `json:"status"` // "Pending" unless the user said otherwise
}

// IsValid reports whether extraction produced enough to store the row.
// Company and role are the minimum; everything else has a default.
func (a JobApplication) IsValid() bool {
	return a.CompanyName != "" && a.Role != ""
}

// Row returns the positional sheet row: [company, role, date, platform, status].
func (a JobApplication) Row() []string {
	return []string{a.CompanyName, a.Role, a.Date, a.Platform, a.Status}
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single conversation turn. Turns are append-only: once a
// message is in the session history it is never mutated.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`

	// JobDetails is set on assistant turns where an add was attempted,
	// so the client can render the structured application card.
	JobDetails *JobApplication `json:"job_details,omitempty"`
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/justsurfingit/job-application-assistant/internal/models"
)

// jsonBlockPattern finds the fenced ```json block in the model response.
var jsonBlockPattern = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")

const defaultStatus = "Pending"

// ExtractorService turns free text plus recent conversation into a
// structured JobApplication via the language model.
type ExtractorService struct {
	llm Completer
	now func() time.Time // swapped in tests for a fixed date
}

func NewExtractorService(llm Completer) *ExtractorService {
	return &ExtractorService{llm: llm, now: time.Now}
}

// Extract is fail-soft: every problem (model unreachable, missing JSON
// block, parse failure) comes back as (zero record, false, message). The
// turn loop must never see a panic or a raw error from here.
func (s *ExtractorService) Extract(ctx context.Context, text string, history []models.ChatMessage) (models.JobApplication, bool, string) {
	app := models.JobApplication{Status: defaultStatus}

	if s.llm == nil {
		return app, false, "Gemini AI not configured"
	}

	today := s.now().Format("2006-01-02")
	raw, err := s.llm.Complete(ctx, s.buildPrompt(text, today, history))
	if err != nil {
		return app, false, fmt.Sprintf("Error extracting details with Gemini AI: %v", err)
	}

	m := jsonBlockPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return app, false, "No valid job application details found"
	}

	var fields struct {
		CompanyName string `json:"Company Name"`
		Role        string `json:"Role"`
		Date        string `json:"Date"`
		Platform    string `json:"Platform"`
		Status      string `json:"Status"`
	}
	if err := json.Unmarshal([]byte(m[1]), &fields); err != nil {
		return app, false, "Failed to parse Gemini AI response"
	}

	app.CompanyName = titleCase(fields.CompanyName)
	app.Role = titleCase(fields.Role)
	app.Platform = titleCase(fields.Platform)
	app.Date = strings.TrimSpace(fields.Date)
	if app.Date == "" {
		app.Date = today
	}
	app.Status = strings.TrimSpace(fields.Status)
	if app.Status == "" {
		app.Status = defaultStatus
	}

	return app, app.IsValid(), "Successfully extracted details"
}

func (s *ExtractorService) buildPrompt(text, today string, history []models.ChatMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a Job Application Assistant that extracts job application details from user input. The user has provided the following text: "%s"

Extract the following details:
- Company Name
- Role
- Date (in YYYY-MM-DD format, use today's date %s if not specified, convert 'today' or 'yesterday' appropriately)
- Platform (e.g., LinkedIn, Indeed, company website, etc.)
- Status (default to 'Pending' unless specified)

Return the details in JSON format. If any detail is missing or unclear, leave it as an empty string, except for Date (use today's date) and Status (use 'Pending'). If the input doesn't seem to be a job application, return empty details and indicate it's not a valid application.

Conversation history for context (last %d messages):
`, text, today, historyWindow)

	for _, msg := range lastTurns(history, historyWindow) {
		fmt.Fprintf(&b, "%s: %s\n", roleLabel(msg.Role), msg.Content)
	}

	b.WriteString("\nReturn: ```json\n{}\n```")
	return b.String()
}

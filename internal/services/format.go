package services

import (
	"strings"

	"github.com/justsurfingit/job-application-assistant/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// historyWindow is how many recent turns get embedded in prompts.
const historyWindow = 6

func lastTurns(history []models.ChatMessage, n int) []models.ChatMessage {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// titleCase trims and title-cases a value: "software engineer" becomes
// "Software Engineer", "LINKEDIN" becomes "Linkedin".
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// roleLabel renders a turn role for prompt context ("user" -> "User").
func roleLabel(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

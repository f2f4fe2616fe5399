package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/job-application-assistant/internal/models"
	"github.com/justsurfingit/job-application-assistant/internal/session"
)

// SampleMessage is the canned demo input injected by the sample endpoint.
const SampleMessage = "I applied for Software Engineer at Google yesterday via LinkedIn"

const clarifyExample = "I applied for a Software Engineer role at Google yesterday via LinkedIn"

// ChatService is the turn loop: one inbound message goes through
// classification and exactly one of the three branches, and exactly one
// assistant turn comes back. No branch can escape with an error; every
// failure is folded into the outbound message.
type ChatService struct {
	sessions  *session.Store
	extractor *ExtractorService
	tracker   *TrackerService
	responder *ResponderService
}

func NewChatService(sessions *session.Store, extractor *ExtractorService, tracker *TrackerService, responder *ResponderService) *ChatService {
	return &ChatService{
		sessions:  sessions,
		extractor: extractor,
		tracker:   tracker,
		responder: responder,
	}
}

// ProcessTurn appends the user turn, dispatches on the classifier verdict,
// appends the assistant turn and returns it.
func (c *ChatService) ProcessTurn(ctx context.Context, sessionID, text string) models.ChatMessage {
	c.sessions.Append(sessionID, models.ChatMessage{Role: models.RoleUser, Content: text})
	history := c.sessions.History(sessionID)

	var reply models.ChatMessage
	switch Classify(text) {
	case KindApplication:
		reply = c.handleApplication(ctx, text, history)
	case KindRemove:
		reply = c.handleRemove(text)
	default:
		reply = models.ChatMessage{
			Role:    models.RoleAssistant,
			Content: c.responder.Respond(ctx, text, history),
		}
	}

	c.sessions.Append(sessionID, reply)
	return reply
}

func (c *ChatService) handleApplication(ctx context.Context, text string, history []models.ChatMessage) models.ChatMessage {
	app, valid, extractMsg := c.extractor.Extract(ctx, text, history)
	if !valid {
		return models.ChatMessage{
			Role:    models.RoleAssistant,
			Content: fmt.Sprintf("I couldn't extract enough details from your input: %s. Could you clarify? For example: '%s'", extractMsg, clarifyExample),
		}
	}

	ok, sheetMsg := c.tracker.Add(app)
	reply := models.ChatMessage{Role: models.RoleAssistant, JobDetails: &app}
	if ok {
		reply.Content = fmt.Sprintf("Great! I've recorded your job application. %s 🎉\n\nKeep up the great work with your job search! 💪", sheetMsg)
	} else {
		// The add ran and failed (duplicate, schema, store error). Details
		// stay attached so the user still sees what was understood.
		reply.Content = fmt.Sprintf("I see you applied for a job! However, there was an issue saving it: %s\n\nBut don't worry, I've still noted your application effort! 👍", sheetMsg)
	}
	return reply
}

func (c *ChatService) handleRemove(text string) models.ChatMessage {
	// Re-run the removal pattern; the classifier only reports the kind.
	company, ok := MatchRemoveTarget(text)
	if !ok {
		return models.ChatMessage{
			Role:    models.RoleAssistant,
			Content: "Please specify the company name to remove, like: 'remove Google row'",
		}
	}
	_, msg := c.tracker.Remove(company)
	return models.ChatMessage{Role: models.RoleAssistant, Content: msg}
}

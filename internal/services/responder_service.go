package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-application-assistant/internal/models"
)

const personaPreamble = `You are a Job Application Assistant developed by Soham. You help users track their job applications in a friendly, conversational way.

Your main functions:
1. Help users log their job applications (details are handled separately)
2. Provide encouragement and support during their job search
3. Answer questions about job searching and applications
4. Maintain a positive, helpful attitude

When users mention job applications, acknowledge their effort and let them know you're tracking it.

Conversation history:
`

// ResponderService handles the general-conversation branch with a fixed
// persona plus recent history.
type ResponderService struct {
	llm Completer
}

func NewResponderService(llm Completer) *ResponderService {
	return &ResponderService{llm: llm}
}

// Respond never returns an error: failures come back as an apologetic
// message embedding the error text, same fail-soft contract as extraction.
func (r *ResponderService) Respond(ctx context.Context, prompt string, history []models.ChatMessage) string {
	if r.llm == nil {
		return "I'm having trouble connecting to my AI service. Please check the GEMINI_API_KEY in your secrets."
	}

	var b strings.Builder
	b.WriteString(personaPreamble)
	for _, msg := range lastTurns(history, historyWindow) {
		fmt.Fprintf(&b, "%s: %s\n", roleLabel(msg.Role), msg.Content)
	}
	fmt.Fprintf(&b, "\nUser: %s\nAssistant:", prompt)

	resp, err := r.llm.Complete(ctx, b.String())
	if err != nil {
		return fmt.Sprintf("I'm having some technical difficulties right now. Error: %v", err)
	}
	return resp
}

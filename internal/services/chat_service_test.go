package services

import (
	"context"
	"testing"

	"github.com/justsurfingit/job-application-assistant/internal/models"
	"github.com/justsurfingit/job-application-assistant/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedExtraction = "```json\n" +
	`{"Company Name":"google","Role":"software engineer","Date":"2025-01-14","Platform":"linkedin","Status":"Pending"}` +
	"\n```"

func newChatHarness(stub *stubCompleter, store *fakeStore) (*ChatService, *session.Store) {
	sessions := session.NewStore()
	var completer Completer
	if stub != nil {
		completer = stub
	}
	var tabular *TrackerService
	if store != nil {
		tabular = NewTrackerService(store)
	} else {
		tabular = NewTrackerService(nil)
	}
	chat := NewChatService(
		sessions,
		NewExtractorService(completer),
		tabular,
		NewResponderService(completer),
	)
	return chat, sessions
}

func TestProcessTurnApplicationSuccess(t *testing.T) {
	stub := &stubCompleter{resp: wellFormedExtraction}
	store := newFakeStore()
	chat, sessions := newChatHarness(stub, store)

	reply := chat.ProcessTurn(context.Background(), "s1", SampleMessage)

	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Contains(t, reply.Content, "I've recorded your job application")
	require.NotNil(t, reply.JobDetails)
	assert.Equal(t, "Google", reply.JobDetails.CompanyName)
	assert.Len(t, store.rows, 1)

	history := sessions.History("s1")
	require.Len(t, history, 2, "one inbound and exactly one outbound turn")
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, SampleMessage, history[0].Content)
	assert.Equal(t, reply, history[1])
}

func TestProcessTurnApplicationDuplicateStillAttachesDetails(t *testing.T) {
	stub := &stubCompleter{resp: wellFormedExtraction}
	store := newFakeStore([]string{"Google", "Software Engineer", "2025-01-14", "Linkedin", "Pending"})
	chat, _ := newChatHarness(stub, store)

	reply := chat.ProcessTurn(context.Background(), "s1", SampleMessage)

	assert.Contains(t, reply.Content, "there was an issue saving it")
	assert.Contains(t, reply.Content, "This job application already exists")
	assert.NotNil(t, reply.JobDetails, "details attach whenever the add was attempted")
	assert.Len(t, store.rows, 1)
}

func TestProcessTurnApplicationInvalidExtraction(t *testing.T) {
	stub := &stubCompleter{resp: "no fenced block here"}
	store := newFakeStore()
	chat, _ := newChatHarness(stub, store)

	reply := chat.ProcessTurn(context.Background(), "s1", "I applied somewhere recently")

	assert.Contains(t, reply.Content, "I couldn't extract enough details")
	assert.Contains(t, reply.Content, "For example:")
	assert.Nil(t, reply.JobDetails)
	assert.Zero(t, store.appends, "no add attempt on invalid extraction")
}

func TestProcessTurnRemove(t *testing.T) {
	store := newFakeStore(
		[]string{"Google", "SWE", "2025-01-10", "Linkedin", "Pending"},
		[]string{"Meta", "PM", "2025-01-12", "Referral", "Pending"},
	)
	chat, _ := newChatHarness(nil, store)

	reply := chat.ProcessTurn(context.Background(), "s1", "remove Google row")

	assert.Equal(t, "Successfully removed 1 application(s) for Google from your job tracker!", reply.Content)
	require.Len(t, store.rows, 1)
	assert.Equal(t, "Meta", store.rows[0][0])
}

func TestProcessTurnRemoveNoMatchRelaysTrackerMessage(t *testing.T) {
	store := newFakeStore()
	chat, _ := newChatHarness(nil, store)

	reply := chat.ProcessTurn(context.Background(), "remove-session", "remove Netflix row")

	assert.Equal(t, "No application found for Netflix in your job tracker.", reply.Content)
}

func TestProcessTurnConversation(t *testing.T) {
	stub := &stubCompleter{resp: "Happy to help with your search!"}
	chat, _ := newChatHarness(stub, nil)

	reply := chat.ProcessTurn(context.Background(), "s1", "hello there")

	assert.Equal(t, "Happy to help with your search!", reply.Content)
	assert.Nil(t, reply.JobDetails)
}

func TestProcessTurnAlwaysAppendsExactlyOneReply(t *testing.T) {
	stub := &stubCompleter{resp: "ok"}
	chat, sessions := newChatHarness(stub, nil)

	inputs := []string{
		"hello there",            // conversation
		"I applied somewhere",    // application, extraction fails (no block)
		"remove Google row",      // remove, store unconfigured
		"what should I do next?", // conversation
	}
	for i, text := range inputs {
		chat.ProcessTurn(context.Background(), "s1", text)
		assert.Len(t, sessions.History("s1"), (i+1)*2)
	}
}

func TestProcessTurnUnconfiguredEverythingStaysAlive(t *testing.T) {
	chat, _ := newChatHarness(nil, nil)

	reply := chat.ProcessTurn(context.Background(), "s1", "I applied for SWE at Google")
	assert.Contains(t, reply.Content, "Gemini AI not configured")

	reply = chat.ProcessTurn(context.Background(), "s1", "remove Google row")
	assert.Contains(t, reply.Content, "Google Sheets not configured")

	reply = chat.ProcessTurn(context.Background(), "s1", "hi!")
	assert.Contains(t, reply.Content, "trouble connecting to my AI service")
}

package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pcoshealth/pcos-assistant/backend/internal/types"
)

var questionWords = []string{"what", "how", "why", "when", "where", "should", "can", "is", "are"}

// ChatService answers assistant messages. Question-shaped messages go to
// the question-answering model with the PCOS knowledge context; everything
// else is served from canned advice keyed on message keywords. An inference
// failure degrades to a canned reply, never to an error.
type ChatService struct {
	answerer QuestionAnswerer
}

func NewChatService(answerer QuestionAnswerer) *ChatService {
	return &ChatService{answerer: answerer}
}

// Respond produces the assistant's reply to one message.
func (s *ChatService) Respond(ctx context.Context, message string) types.ChatResponse {
	return types.ChatResponse{
		MessageID: uuid.New().String(),
		Response:  s.reply(ctx, message),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *ChatService) reply(ctx context.Context, message string) string {
	lower := strings.ToLower(message)

	if containsAny(lower, questionWords) {
		answer, err := s.answerer.AnswerQuestion(ctx, message, pcosKnowledge)
		if err != nil {
			log.Printf("chat question answering failed: %v", err)
			return unavailableReply
		}
		return answer
	}

	switch {
	case containsAny(lower, []string{"diet", "food", "eat", "meal", "nutrition"}):
		return dietAdvice
	case containsAny(lower, []string{"symptom", "pain", "cramp", "bloating", "period"}):
		return symptomAdvice
	case containsAny(lower, []string{"exercise", "workout", "gym", "fitness"}):
		return exerciseAdvice
	case containsAny(lower, []string{"hello", "hi", "help", "support"}):
		return greetingReply
	default:
		return defaultReply
	}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

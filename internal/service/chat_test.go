package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnswerer struct {
	answer       string
	err          error
	lastQuestion string
	called       bool
}

func (s *stubAnswerer) AnswerQuestion(ctx context.Context, question, knowledge string) (string, error) {
	s.called = true
	s.lastQuestion = question
	return s.answer, s.err
}

func TestChatService_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("should route questions to the answering model", func(t *testing.T) {
		answerer := &stubAnswerer{answer: "PCOS is a hormonal disorder."}
		svc := NewChatService(answerer)

		resp := svc.Respond(ctx, "What is PCOS?")

		require.True(t, answerer.called)
		assert.Equal(t, "What is PCOS?", answerer.lastQuestion)
		assert.Equal(t, "PCOS is a hormonal disorder.", resp.Response)
		assert.NotEmpty(t, resp.MessageID)
		assert.NotEmpty(t, resp.Timestamp)
	})

	t.Run("should degrade politely when the model fails", func(t *testing.T) {
		svc := NewChatService(&stubAnswerer{err: errors.New("model loading")})

		resp := svc.Respond(ctx, "What foods help with PCOS?")

		assert.Equal(t, unavailableReply, resp.Response)
	})

	t.Run("should serve canned diet advice without calling the model", func(t *testing.T) {
		answerer := &stubAnswerer{}
		svc := NewChatService(answerer)

		resp := svc.Respond(ctx, "tell me about nutrition")

		assert.False(t, answerer.called)
		assert.Equal(t, dietAdvice, resp.Response)
	})

	t.Run("should serve symptom and exercise advice", func(t *testing.T) {
		svc := NewChatService(&stubAnswerer{})

		assert.Equal(t, symptomAdvice, svc.Respond(ctx, "my cramps got worse").Response)
		assert.Equal(t, exerciseAdvice, svc.Respond(ctx, "gym routines please").Response)
	})

	t.Run("should greet and fall back to the default reply", func(t *testing.T) {
		svc := NewChatService(&stubAnswerer{})

		assert.Equal(t, greetingReply, svc.Respond(ctx, "hello there").Response)
		assert.Equal(t, defaultReply, svc.Respond(ctx, "ramble ramble").Response)
	})
}

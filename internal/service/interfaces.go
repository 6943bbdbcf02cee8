package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pcoshealth/pcos-assistant/backend/internal/models"
	"github.com/pcoshealth/pcos-assistant/backend/internal/types"
)

// TextGenerator produces free text from a prompt via the external inference
// endpoint. Implementations are expected to be unreliable; callers must
// treat any error as a degraded-generation signal.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// QuestionAnswerer answers a question against a fixed knowledge context.
type QuestionAnswerer interface {
	AnswerQuestion(ctx context.Context, question, knowledge string) (string, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

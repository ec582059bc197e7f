package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "financogram/internal/errors"
	"financogram/internal/portfolio"
)

// chatService answers chat messages, optionally with the user's portfolio
// as context.
type chatService struct {
	replier   Replier
	portfolio PortfolioServicer
	log       *zap.SugaredLogger
}

// NewChatService creates a new ChatServicer. A nil replier means the
// assistant is not configured and every message is answered with
// ErrAssistantUnavailable.
func NewChatService(replier Replier, portfolio PortfolioServicer, log *zap.SugaredLogger) ChatServicer {
	return &chatService{replier: replier, portfolio: portfolio, log: log}
}

// Chat replies to message. When email is given, the user's portfolio is
// valued and passed to the assistant; a portfolio that cannot be loaded is
// left out rather than failing the reply.
func (s *chatService) Chat(ctx context.Context, message, email string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperrors.NewFieldError("message", "must not be empty")
	}
	if s.replier == nil {
		return "", apperrors.ErrAssistantUnavailable
	}

	var summary *portfolio.Summary
	if strings.TrimSpace(email) != "" && s.portfolio != nil {
		var err error
		summary, err = s.portfolio.Summarize(ctx, email)
		if err != nil {
			s.log.Warnw("Chat without portfolio context", "error", err)
			summary = nil
		}
	}
	return s.replier.Reply(ctx, message, summary)
}

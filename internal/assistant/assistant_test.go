package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	apperrors "financogram/internal/errors"
	"financogram/internal/portfolio"
)

type fakeGenerator struct {
	model       string
	instruction string
	prompt      string
	resp        *genai.GenerateContentResponse
	err         error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if config != nil && config.SystemInstruction != nil {
		f.instruction = config.SystemInstruction.Parts[0].Text
	}
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestAssistant(g Generator) *Assistant {
	return NewWithGenerator(g, WithModel("test-model"), WithLogger(zap.NewNop().Sugar()))
}

func TestReply_Success(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("  Diversify across asset classes.  ")}

	reply, err := newTestAssistant(gen).Reply(context.Background(), " How should I invest? ", nil)

	require.NoError(t, err)
	assert.Equal(t, "Diversify across asset classes.", reply)
	assert.Equal(t, "test-model", gen.model)
	assert.Equal(t, "How should I invest?", gen.prompt)
	assert.Equal(t, "You are a financial assistant helping users.", gen.instruction)
}

func TestReply_IncludesPortfolioContext(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("ok")}
	summary := &portfolio.Summary{
		Holdings: []portfolio.Holding{{}},
		Totals: portfolio.Totals{
			TotalInvested:      decimal.NewFromInt(100000),
			TotalCurrent:       decimal.NewFromInt(112500),
			TotalReturnPercent: decimal.RequireFromString("12.5"),
		},
		Categories: []portfolio.CategorySummary{{Category: "Equity", Holdings: 1, Invested: decimal.NewFromInt(100000), AverageReturnPercent: decimal.RequireFromString("12.5")}},
		StaleCount: 1,
	}

	_, err := newTestAssistant(gen).Reply(context.Background(), "Am I on track?", summary)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gen.instruction, "You are a financial assistant helping users."))
	assert.Contains(t, gen.instruction, "₹100,000.00")
	assert.Contains(t, gen.instruction, "₹112,500.00")
	assert.Contains(t, gen.instruction, "12.50%")
	assert.Contains(t, gen.instruction, "- Equity: 1 holding(s)")
	assert.Contains(t, gen.instruction, "unavailable for 1 holding(s)")
}

func TestReply_EmptyMessage(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := newTestAssistant(gen).Reply(context.Background(), "   ", nil)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "message", appErr.Field)
	assert.Empty(t, gen.model, "generator must not be called")
}

func TestReply_UpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	_, err := newTestAssistant(gen).Reply(context.Background(), "hi", nil)

	assert.ErrorIs(t, err, apperrors.ErrAssistantFailure)
}

func TestReply_EmptyResponse(t *testing.T) {
	gen := &fakeGenerator{resp: &genai.GenerateContentResponse{}}
	_, err := newTestAssistant(gen).Reply(context.Background(), "hi", nil)

	assert.ErrorIs(t, err, apperrors.ErrAssistantFailure)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), "", "")
	assert.Error(t, err)
}

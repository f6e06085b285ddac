package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusdesk/complaint-api/internal/classifier"
	appErrors "github.com/campusdesk/complaint-api/pkg/errors"
)

// followUpThreshold is the number of prior history lines after which the
// conversation switches to the escalation prompt.
const followUpThreshold = 2

// ChatRequest is the support chatbot payload. ConversationHistory carries
// the prior turns as "sender: text" lines, oldest first.
type ChatRequest struct {
	Message             string   `json:"message" validate:"required"`
	ConversationHistory []string `json:"conversation_history"`
}

// ChatResponse relays the model reply verbatim.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Status string `json:"status"`
}

// ChatService forwards support questions to the language model. Replies are
// free text and are not validated beyond trimming.
type ChatService struct {
	generator classifier.TextGenerator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewChatService constructs a ChatService.
func NewChatService(generator classifier.TextGenerator, validate *validator.Validate, logger *zap.Logger) *ChatService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{generator: generator, validator: validate, logger: logger}
}

// Respond produces the chatbot reply for one message. Conversations past
// the follow-up threshold get the escalation prompt built from the last two
// history lines instead of the first-line troubleshooting prompt.
func (s *ChatService) Respond(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "No message provided")
	}

	prompt := classifier.SupportPrompt(req.Message)
	if len(req.ConversationHistory) > followUpThreshold {
		history := req.ConversationHistory
		prompt = classifier.FollowUpPrompt(req.Message, history[len(history)-2:])
	}

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}

	return &ChatResponse{Reply: reply, Status: "success"}, nil
}

// README: General-reply generator; Gemini chat when configured, canned replies otherwise.
package reply

import (
	"context"
	"log"
	"regexp"

	"dreamstate/internal/modules/chat"
)

// Chatter is the optional conversational model behind general replies.
type Chatter interface {
	GenerateReply(ctx context.Context, message string) (string, error)
}

// Service produces the conversational fallback for messages the structured
// handlers do not cover.
type Service struct {
	chatter Chatter
}

// NewService creates the generator. chatter may be nil, in which case every
// reply is canned.
func NewService(chatter Chatter) *Service {
	return &Service{chatter: chatter}
}

var greetingWords = regexp.MustCompile(`(?i)\b(hi|hello|hey|good morning|good afternoon|good evening)\b`)

const (
	greetingReply = "Hi! I'm the Dream State assistant. Ask me about any of our properties, or about the portfolio as a whole."
	defaultReply  = "I'm best at questions about our properties. Try asking about a specific unit, or something like \"which properties have pools?\""
)

// GeneralReply answers with the chat model when available. A model failure is
// not fatal for the guest: it degrades to the canned reply and is only logged.
func (s *Service) GeneralReply(ctx context.Context, message string) (chat.Result, error) {
	if s.chatter != nil {
		text, err := s.chatter.GenerateReply(ctx, message)
		if err == nil {
			return chat.Plain(text), nil
		}
		log.Printf("reply: chat model failed, using canned reply: %v", err)
	}
	if greetingWords.MatchString(message) {
		return chat.Plain(greetingReply), nil
	}
	return chat.Plain(defaultReply), nil
}

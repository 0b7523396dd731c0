package service

import "context"

// TurnRole marks who spoke a conversation turn.
type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// Turn is one message of a conversation handed to the model.
type Turn struct {
	Role TurnRole
	Text string
}

// TextGenerator produces free-form text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Converse answers the last turn of a conversation, steered by instruction.
	Converse(ctx context.Context, instruction string, turns []Turn) (string, error)
}

package agent

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/ocinet/ocinet/internal/constants"
)

// BuildPrompt joins the inventory context and the operator's question.
func BuildPrompt(inventory, question string) string {
	return fmt.Sprintf("Context: %s\n\nQuestion: %s\nAnswer:", inventory, question)
}

// Messages returns the chat history for one question: the fixed system
// instruction followed by the prompt.
func Messages(inventory, question string) []llms.MessageContent {
	return []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, constants.SystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, BuildPrompt(inventory, question)),
	}
}

package prompt

import (
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

var (
	ErrEmptyContext     = errors.New("context is empty")
	ErrEmptyInstruction = errors.New("instruction is empty")
)

const SystemTemplate = `Please create simple question based on only the following context:

{{.context}}`

const QuestionTemplate = `{{.question}}`

// Prompt is the model-ready conversation produced by the Assembler.
type Prompt struct {
	Messages []llms.ChatMessage
}

// MessageContents converts the prompt into provider request messages.
func (p Prompt) MessageContents() []llms.MessageContent {
	contents := make([]llms.MessageContent, len(p.Messages))
	for i, msg := range p.Messages {
		contents[i] = llms.TextParts(msg.GetType(), msg.GetContent())
	}

	return contents
}

func (p Prompt) String() string {
	var sb strings.Builder
	for i, msg := range p.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}

		sb.WriteString(string(msg.GetType()))
		sb.WriteString(": ")
		sb.WriteString(msg.GetContent())
	}

	return sb.String()
}

// Assembler renders the fixed two-part template: an AI message holding
// the retrieved context, followed by the caller's instruction.
type Assembler struct {
	template prompts.ChatPromptTemplate
}

func NewAssembler() *Assembler {
	template := prompts.NewChatPromptTemplate([]prompts.MessageFormatter{
		prompts.NewAIMessagePromptTemplate(SystemTemplate, []string{"context"}),
		prompts.NewHumanMessagePromptTemplate(QuestionTemplate, []string{"question"}),
	})

	return &Assembler{template}
}

func (a *Assembler) Assemble(context string, instruction string) (Prompt, error) {
	if context == "" {
		return Prompt{}, ErrEmptyContext
	}

	if instruction == "" {
		return Prompt{}, ErrEmptyInstruction
	}

	msgs, err := a.template.FormatMessages(map[string]any{
		"context":  context,
		"question": instruction,
	})
	if err != nil {
		return Prompt{}, err
	}

	return Prompt{msgs}, nil
}

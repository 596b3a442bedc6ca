package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	a := NewAssembler()

	p, err := a.Assemble("MagicBlock enables rollups on Solana.", "Create a quiz.")
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Len(p.Messages, 2)
	assert.Equal(llms.ChatMessageTypeAI, p.Messages[0].GetType())
	assert.Contains(p.Messages[0].GetContent(), "based on only the following context")
	assert.Contains(p.Messages[0].GetContent(), "MagicBlock enables rollups on Solana.")
	assert.Equal(llms.ChatMessageTypeHuman, p.Messages[1].GetType())
	assert.Equal("Create a quiz.", p.Messages[1].GetContent())

	contents := p.MessageContents()
	assert.Len(contents, 2)
	assert.Equal(llms.ChatMessageTypeAI, contents[0].Role)
	assert.Equal(llms.ChatMessageTypeHuman, contents[1].Role)
}

func TestAssembleIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	a := NewAssembler()

	first, err := a.Assemble("some context", "some instruction")
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	second, err := a.Assemble("some context", "some instruction")
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal(first.String(), second.String())
	assert.Equal(first.MessageContents(), second.MessageContents())
}

func TestAssembleKeepsContextVerbatim(t *testing.T) {
	assert := assert.New(t)

	context := `{"json": "<b>&amp;</b>"} {{.question}} line1
line2`

	p, err := NewAssembler().Assemble(context, "instruction")
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Contains(p.Messages[0].GetContent(), context)
	assert.Contains(p.String(), context)
}

func TestAssembleEmptyInput(t *testing.T) {
	assert := assert.New(t)

	a := NewAssembler()

	_, err := a.Assemble("", "instruction")
	assert.ErrorIs(err, ErrEmptyContext)

	_, err = a.Assemble("context", "")
	assert.ErrorIs(err, ErrEmptyInstruction)
}

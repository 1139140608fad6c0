package chat

import (
	"context"
	"fmt"

	"secondbrain/internal/entity"
	"secondbrain/pkg/logger/slogx"
)

const systemPrompt = "You are a 'Second Brain' assistant. " +
	"Answer the user's question based strictly on the provided context notes. Cite your sources."

const fallbackAnswer = "I couldn't find an answer in your notes."

type generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	selector  Selector  `option:"mandatory" validate:"required"`
	generator generator `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate chat usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

// Chat answers the message from the user's notes. The selected notes are
// returned alongside the answer so the caller can cite them.
func (u *Usecase) Chat(ctx context.Context, message string) (entity.ChatResult, error) {
	notes, err := u.selector.Select(ctx, message)
	if err != nil {
		return entity.ChatResult{}, fmt.Errorf("select context: %w", err)
	}

	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", ContextBlock(notes), message)

	answer, err := u.generator.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		slogx.Error(ctx, "generate answer", slogx.Err(err))
		return entity.ChatResult{}, fmt.Errorf("%w: %v", entity.ErrGeneration, err)
	}

	if answer == "" {
		answer = fallbackAnswer
	}

	return entity.ChatResult{Answer: answer, CitedNotes: notes}, nil
}

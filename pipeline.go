package quizblade

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/flarexio/quizblade/llm"
	"github.com/flarexio/quizblade/prompt"
	"github.com/flarexio/quizblade/source"
	"github.com/flarexio/quizblade/vector"
)

// Pipeline wires the document source, a per-run vector index, the
// assembler and the completer into one sequential run.
type Pipeline struct {
	source    source.Source
	indexes   vector.IndexFactory
	assembler *prompt.Assembler
	completer llm.Completer
	log       *zap.Logger
}

func NewPipeline(src source.Source, indexes vector.IndexFactory, completer llm.Completer) *Pipeline {
	return &Pipeline{
		source:    src,
		indexes:   indexes,
		assembler: prompt.NewAssembler(),
		completer: completer,
		log: zap.L().With(
			zap.String("component", "pipeline"),
		),
	}
}

type run struct {
	state State
	log   *zap.Logger
}

func (r *run) enter(state State) {
	r.log.Debug("state transition",
		zap.Stringer("from", r.state),
		zap.Stringer("to", state),
	)

	r.state = state
}

func (r *run) fail(kind error, err error) Result {
	failedAt := r.state
	r.enter(StateFailed)

	return Result{
		State:    StateFailed,
		FailedAt: failedAt,
		Err:      fmt.Errorf("%w: %w", kind, err),
	}
}

// Run executes one invocation. The instruction doubles as the retrieval query.
func (p *Pipeline) Run(ctx context.Context, loc source.Location, instruction string) Result {
	r := &run{
		state: StateIngesting,
		log: p.log.With(
			zap.String("bucket", loc.Bucket),
			zap.String("key", loc.Key),
		),
	}

	content, err := p.source.Fetch(ctx, loc.Bucket, loc.Key)
	if err != nil {
		return r.fail(ErrSourceFetch, err)
	}

	index, err := p.indexes(ctx)
	if err != nil {
		return r.fail(ErrEmbedding, err)
	}

	docs := []vector.Document{
		{
			ID:      loc.Bucket + "/" + loc.Key,
			Content: content,
		},
	}

	if err := index.Build(ctx, docs); err != nil {
		return r.fail(ErrEmbedding, err)
	}

	r.enter(StateRetrieving)

	retrieved, err := vector.NewRetriever(index).RetrieveTopContext(ctx, instruction)
	if err != nil {
		return r.fail(ErrRetrieval, err)
	}

	r.enter(StateAssembling)

	pr, err := p.assembler.Assemble(retrieved, instruction)
	if err != nil {
		return r.fail(ErrAssembly, err)
	}

	r.enter(StateGenerating)

	text, err := p.completer.Complete(ctx, pr)
	if err != nil {
		return r.fail(ErrGeneration, err)
	}

	r.enter(StateDone)

	return Result{
		State:   StateDone,
		Content: text,
	}
}

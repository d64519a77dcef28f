package ideagen

import "context"

// Pipeline is the per-request flow: normalize, fetch trends, synthesize.
// Everything is re-derived per call; there is no cross-request state and no
// retry anywhere, since the interactive caller re-invokes the whole pipeline.
type Pipeline struct {
	fetcher *TrendFetcher
	synth   *Synthesizer
}

// NewPipeline wires a pipeline. synth may be nil, which selects fallback mode
// for every request; credential presence is decided by the caller, not read
// from the environment here.
func NewPipeline(fetcher *TrendFetcher, synth *Synthesizer) *Pipeline {
	return &Pipeline{fetcher: fetcher, synth: synth}
}

// Mode reports which synthesis path requests will take.
func (p *Pipeline) Mode() string {
	if p.synth == nil {
		return "fallback"
	}
	return "llm"
}

// ModelName reports the configured completion model, or "" in fallback mode.
func (p *Pipeline) ModelName() string {
	if p.synth == nil {
		return ""
	}
	return p.synth.caller.ModelName()
}

// Run executes one generation request against a raw answers payload.
func (p *Pipeline) Run(ctx context.Context, rawAnswers map[string]any) (Result, error) {
	answers := NormalizeAnswers(rawAnswers)
	trends := p.fetcher.FetchAll(ctx, answers.Industry)

	if p.synth == nil {
		return Result{BusinessIdea: FallbackIdea(answers, trends), Trends: trends}, nil
	}
	return p.synth.Synthesize(ctx, answers, trends)
}

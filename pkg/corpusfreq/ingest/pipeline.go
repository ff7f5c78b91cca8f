package ingest

import (
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/dataset"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/normalize"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/sample"
)

// Pipeline orchestrates the preparation flow shared by every report:
// filter → sample → join → normalize → tokenize
type Pipeline struct {
	sampler   sample.Sampler
	tokenizer *Tokenizer
}

// NewPipeline creates a preparation pipeline with the given components
func NewPipeline(sampler sample.Sampler, tokenizer *Tokenizer) *Pipeline {
	return &Pipeline{
		sampler:   sampler,
		tokenizer: tokenizer,
	}
}

// Prepared is a category sample ready for counting
type Prepared struct {
	Records []dataset.Record
	Text    string // joined and normalized sample text
	Tokens  []string
}

// Process samples the category and turns the sample into tokens
func (p *Pipeline) Process(table *dataset.Table, category string) (Prepared, error) {
	records, err := p.sampler.Select(table, category)
	if err != nil {
		return Prepared{}, err
	}

	text := normalize.Text(sample.JoinText(records))

	return Prepared{
		Records: records,
		Text:    text,
		Tokens:  p.tokenizer.Tokenize(text),
	}, nil
}

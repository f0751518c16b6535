package service

import (
	"github.com/sirupsen/logrus"

	"topwords/internal/domain"
)

var _ domain.PipelineService = (*Pipeline)(nil)

// Pipeline runs Loader -> Ranker -> Reporter once per call.
type Pipeline struct {
	loader   domain.VectorLoader
	ranker   domain.Ranker
	reporter domain.Reporter
	log      logrus.FieldLogger
}

func NewPipeline(loader domain.VectorLoader, ranker domain.Ranker, reporter domain.Reporter, log logrus.FieldLogger) *Pipeline {
	return &Pipeline{loader: loader, ranker: ranker, reporter: reporter, log: log}
}

// Run loads the vector file at path, ranks it and reports the result.
// Nothing is reported if loading fails.
func (p *Pipeline) Run(path string) error {
	emb, err := p.loader.Load(path)
	if err != nil {
		return err
	}
	ranking := p.ranker.Rank(emb)
	if p.log != nil {
		p.log.WithFields(logrus.Fields{"words": emb.Len(), "dimensions": len(ranking)}).Info("reporting ranking")
	}
	return p.reporter.Report(ranking)
}

package speech

import (
	"context"
	"log/slog"

	"github.com/oratiodb/oratio/internal/corpus/vocab"
	"github.com/oratiodb/oratio/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListSpeeches(context context.Context, filter Filter, limit, offset int) ([]*Speech, int, error) {
	validator := &validate.Validator{}
	if filter.Type != "" {
		validator.OneOf(FieldType, filter.Type, vocab.SpeechType.Values()...)
	}
	if filter.TagType != "" {
		validator.OneOf(FieldTag, filter.TagType, vocab.TagType.Values()...)
	}
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.ListSpeeches(context, filter, limit, offset)
}

func (service *Service) GetSpeech(context context.Context, id int) (*Speech, error) {
	return service.repo.GetSpeech(context, id)
}

func (service *Service) ListClusters(context context.Context, limit, offset int) ([]*Cluster, int, error) {
	return service.repo.ListClusters(context, limit, offset)
}

func (service *Service) GetCluster(context context.Context, id int) (*Cluster, error) {
	return service.repo.GetCluster(context, id)
}

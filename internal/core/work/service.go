package work

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

func (service *Service) ListWorks(context context.Context, filter Filter, limit, offset int) ([]*Work, int, error) {
	if filter.Lang != "" {
		validator := &validate.Validator{}
		validator.OneOf(FieldLang, filter.Lang, vocab.Language.Values()...)
		if err := validator.Err(); err != nil {
			return nil, 0, err
		}
	}

	return service.repo.ListWorks(context, filter, limit, offset)
}

func (service *Service) GetWork(context context.Context, id int) (*Work, error) {
	return service.repo.GetWork(context, id)
}

func (service *Service) CreateWork(context context.Context, work *Work) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, work.Title).MaxLen(FieldTitle, work.Title, 64)
	validator.OneOf(FieldLang, work.Lang, vocab.Language.Values()...)
	validator.Custom(FieldAuthor, work.AuthorID == 0, "Owning author is required")

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateWork(context, work); err != nil {
		return err
	}

	service.logger.Info("work_created", slog.Int("work_id", work.ID), slog.String("title", work.Title))
	return nil
}

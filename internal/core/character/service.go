package character

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

// validateAttributes checks the three character vocabularies, skipping
// empty values so list filters can leave them unset.
func validateAttributes(validator *validate.Validator, being, number, gender string) {
	if being != "" {
		validator.OneOf(FieldBeing, being, vocab.Being.Values()...)
	}
	if number != "" {
		validator.OneOf(FieldNumber, number, vocab.Number.Values()...)
	}
	if gender != "" {
		validator.OneOf(FieldGender, gender, vocab.Gender.Values()...)
	}
}

func (service *Service) ListCharacters(context context.Context, filter Filter, limit, offset int) ([]*Character, int, error) {
	validator := &validate.Validator{}
	validateAttributes(validator, filter.Being, filter.Number, filter.Gender)
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.ListCharacters(context, filter, limit, offset)
}

func (service *Service) GetCharacter(context context.Context, id int) (*Character, error) {
	return service.repo.GetCharacter(context, id)
}

func (service *Service) CreateCharacter(context context.Context, character *Character) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, character.Name).MaxLen(FieldName, character.Name, 128)
	validator.OneOf(FieldBeing, character.Being, vocab.Being.Values()...)
	validator.OneOf(FieldNumber, character.Number, vocab.Number.Values()...)
	validator.OneOf(FieldGender, character.Gender, vocab.Gender.Values()...)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateCharacter(context, character); err != nil {
		return err
	}

	service.logger.Info("character_created", slog.Int("character_id", character.ID), slog.String("name", character.Name))
	return nil
}

func (service *Service) ListInstances(context context.Context, filter InstanceFilter, limit, offset int) ([]*Instance, int, error) {
	return service.repo.ListInstances(context, filter, limit, offset)
}

func (service *Service) GetInstance(context context.Context, id int) (*Instance, error) {
	return service.repo.GetInstance(context, id)
}

package character

import "context"

type Repository interface {
	ListCharacters(context context.Context, f Filter, limit, offset int) ([]*Character, int, error)
	GetCharacter(context context.Context, id int) (*Character, error)
	CreateCharacter(context context.Context, c *Character) error

	ListInstances(context context.Context, f InstanceFilter, limit, offset int) ([]*Instance, int, error)
	GetInstance(context context.Context, id int) (*Instance, error)

	// GetOrCreateInstance inserts the instance unless one already exists
	// for its (name, context) pair. The returned flag reports whether a
	// row was created. Either way inst.ID is populated.
	GetOrCreateInstance(context context.Context, inst *Instance) (bool, error)
}

package corpus

import (
	"context"

	"github.com/oratiodb/oratio/internal/core/character"
	"github.com/oratiodb/oratio/internal/corpus/vocab"
	"github.com/oratiodb/oratio/pkg/namekey"
	"github.com/oratiodb/oratio/pkg/pointer"
)

// Resolver turns a display name plus a narrative context into a
// CharacterInstance, consulting the registry's canonical -> alias ->
// anonymous-template chain.
//
// Resolution is split from persistence so the speech builder can resolve
// every role name while a row is still being validated, without writing
// anything: Resolve never touches the store, Persist runs get-or-create
// once the owning row has fully validated.
type Resolver struct {
	registry *Registry
	store    Store
	seeds    map[string]*InstanceSeed

	cache map[string]*character.Instance // persisted instances only
}

func NewResolver(registry *Registry, store Store, seeds map[string]*InstanceSeed) *Resolver {
	if seeds == nil {
		seeds = make(map[string]*InstanceSeed)
	}
	return &Resolver{
		registry: registry,
		store:    store,
		seeds:    seeds,
		cache:    make(map[string]*character.Instance),
	}
}

// Resolve builds an instance value for the name in the given narrative
// context. The literal display name is preserved even when the name is
// an alias, so a disguise keeps its assumed name while pointing at the
// underlying character. A previously persisted (name, context) pair
// returns the cached record unchanged.
func (res *Resolver) Resolve(name, narrativeContext string) (*character.Instance, error) {
	if cached, ok := res.cache[instanceKey(name, narrativeContext)]; ok {
		return cached, nil
	}

	resolution, ok := res.registry.Lookup(name)
	seed := res.seeds[namekey.From(name)]
	if !ok && seed == nil {
		return nil, &ResolutionError{Kind: "character", Ref: name}
	}

	inst := &character.Instance{
		Name:    name,
		Context: narrativeContext,
	}

	switch {
	case resolution.Char != nil:
		inst.CharID = pointer.To(resolution.Char.ID)
		inst.Being = resolution.Char.Being
		inst.Number = resolution.Char.Number
		inst.Gender = resolution.Char.Gender
		if resolution.ViaAlias {
			inst.Disguise = pointer.To(name)
		}

	case resolution.Template != nil:
		inst.Anon = true
		inst.Being = resolution.Template.Being
		inst.Number = resolution.Template.Number
		inst.Gender = resolution.Template.Gender
		inst.Labels = resolution.Template.Labels
		if resolution.Template.Notes != "" {
			inst.Notes = pointer.To(resolution.Template.Notes)
		}
	}

	if seed != nil {
		res.applySeed(inst, seed)
	}

	if inst.Being == "" {
		inst.Being = vocab.DefaultBeing
	}
	if inst.Number == "" {
		inst.Number = vocab.DefaultNumber
	}
	if inst.Gender == "" {
		inst.Gender = vocab.DefaultGender
	}

	return inst, nil
}

// applySeed overlays instance-file attributes onto a resolved instance.
// Seed values win over registry-copied ones.
func (res *Resolver) applySeed(inst *character.Instance, seed *InstanceSeed) {
	if seed.CharName != "" {
		if resolution, ok := res.registry.Lookup(seed.CharName); ok && resolution.Char != nil {
			inst.CharID = pointer.To(resolution.Char.ID)
			if inst.Being == "" {
				inst.Being = resolution.Char.Being
			}
			if inst.Number == "" {
				inst.Number = resolution.Char.Number
			}
			if inst.Gender == "" {
				inst.Gender = resolution.Char.Gender
			}
		}
	}
	if seed.Being != "" {
		inst.Being = seed.Being
	}
	if seed.Number != "" {
		inst.Number = seed.Number
	}
	if seed.Gender != "" {
		inst.Gender = seed.Gender
	}
	if seed.Disguise != "" {
		inst.Disguise = pointer.To(seed.Disguise)
	}
	if seed.Anon {
		inst.Anon = true
	}
	if seed.Notes != "" && inst.Notes == nil {
		inst.Notes = pointer.To(seed.Notes)
	}
}

// Persist writes an instance produced by Resolve through get-or-create
// and caches the surviving record. First use wins: a second (name,
// context) occurrence converges on the first's attributes. The flag
// reports whether a new record was created.
func (res *Resolver) Persist(ctx context.Context, inst *character.Instance) (*character.Instance, bool, error) {
	key := instanceKey(inst.Name, inst.Context)
	if cached, ok := res.cache[key]; ok {
		return cached, false, nil
	}

	created, err := res.store.GetOrCreateInstance(ctx, inst)
	if err != nil {
		return nil, false, err
	}

	res.cache[key] = inst
	return inst, created, nil
}

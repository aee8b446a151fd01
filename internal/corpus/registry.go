package corpus

import (
	"context"
	"log/slog"

	"github.com/oratiodb/oratio/internal/core/character"
	"github.com/oratiodb/oratio/internal/corpus/vocab"
	"github.com/oratiodb/oratio/pkg/namekey"
	"github.com/oratiodb/oratio/pkg/pointer"
)

// selfToken is reserved in speech addressee lists to mean "same as the
// first speaker" and must never name a real character.
const selfToken = "self"

// Alias maps a pseudonym to a canonical character name. It exists only
// for the duration of a run; resolution dereferences it to the canonical
// record before any instance is created.
type Alias struct {
	Name   string
	SameAs string

	target *character.Character // set by resolveAliases
}

// AnonTemplate seeds the attributes copied onto every instance of an
// unnamed recurring role ("a Trojan herald"). Like Alias, it never
// persists as its own entity.
type AnonTemplate struct {
	Name   string
	Being  string
	Number string
	Gender string
	Labels []string
	Notes  string
}

// Registry is the in-memory name index built from the character roster,
// threaded explicitly through the later pipeline stages. Keys are
// whitespace-normalized names (namekey.From); a separate accent-folded
// index catches probable data-entry near-duplicates for diagnostics.
type Registry struct {
	canonical map[string]*character.Character
	aliases   map[string]*Alias
	anon      map[string]*AnonTemplate

	folded map[string]string // namekey.Fold(name) -> first display form
	logger *slog.Logger
}

// Resolution is the outcome of a registry lookup: the canonical
// character (possibly reached through an alias) and/or the anonymous
// template that seeds instance attributes.
type Resolution struct {
	Char     *character.Character
	Template *AnonTemplate
	ViaAlias bool
}

// buildRegistry partitions the character roster and persists canonical
// characters. Rows with the reserved "self" name are skipped; name
// collisions are logged and the last writer wins.
func (ing *Ingestor) buildRegistry(ctx context.Context, rows []Row) (*Registry, error) {
	registry := &Registry{
		canonical: make(map[string]*character.Character),
		aliases:   make(map[string]*Alias),
		anon:      make(map[string]*AnonTemplate),
		folded:    make(map[string]string),
		logger:    ing.logger,
	}

	beingSpec := FieldSpec{Name: "being", Allowed: vocab.Being}
	numberSpec := FieldSpec{Name: "number", Allowed: vocab.Number}
	genderSpec := FieldSpec{Name: "gender", Allowed: vocab.Gender}

	nextID := 1

	for _, row := range rows {
		name := row.Get("name")
		if name == "" {
			ing.report.AddSkip(row, "name: value required")
			continue
		}
		if namekey.Fold(name) == selfToken {
			ing.report.AddSkip(row, "name: \"self\" is reserved")
			continue
		}

		key := namekey.From(name)
		registry.noteCollision(key, name)

		being := beingSpec.ValidateOr(row.Get("being"), vocab.DefaultBeing)
		number := numberSpec.ValidateOr(row.Get("number"), vocab.DefaultNumber)
		gender := genderSpec.ValidateOr(row.Get("gender"), vocab.DefaultGender)

		switch {
		case row.Get("same_as") != "":
			registry.aliases[key] = &Alias{Name: name, SameAs: row.Get("same_as")}

		case BoolField(row.Get("anon")):
			registry.anon[key] = &AnonTemplate{
				Name:   name,
				Being:  being,
				Number: number,
				Gender: gender,
				Labels: row.Labels("tag_"),
				Notes:  row.Get("notes"),
			}

		default:
			c := &character.Character{
				ID:     nextID,
				Name:   name,
				Being:  being,
				Number: number,
				Gender: gender,
				WD:     row.Get("wd"),
				Manto:  row.Get("manto"),
				TT:     row.Get("tt"),
			}
			if notes := row.Get("notes"); notes != "" {
				c.Notes = pointer.To(notes)
			}

			if err := ing.store.CreateCharacter(ctx, c); err != nil {
				ing.report.AddSkip(row, "character not stored: "+err.Error())
				continue
			}
			nextID++

			registry.canonical[key] = c
			ing.report.Created("characters")
		}
	}

	registry.resolveAliases()

	return registry, nil
}

// noteCollision logs duplicate and accent-folded near-duplicate names.
// Neither blocks the load.
func (r *Registry) noteCollision(key, name string) {
	if _, seen := r.canonical[key]; seen {
		r.logger.Warn("character_name_collision", slog.String("name", name))
	} else if _, seen := r.aliases[key]; seen {
		r.logger.Warn("character_name_collision", slog.String("name", name))
	} else if _, seen := r.anon[key]; seen {
		r.logger.Warn("character_name_collision", slog.String("name", name))
	}

	folded := namekey.Fold(name)
	if first, seen := r.folded[folded]; seen {
		if first != name {
			r.logger.Warn("character_name_near_duplicate",
				slog.String("name", name), slog.String("similar_to", first))
		}
	} else {
		r.folded[folded] = name
	}
}

// resolveAliases derefs every alias's same_as target against the
// canonical partition. A dangling alias is dropped; speeches referring
// to it will fail resolution downstream with a traceable diagnostic.
func (r *Registry) resolveAliases() {
	for key, alias := range r.aliases {
		target, ok := r.canonical[namekey.From(alias.SameAs)]
		if !ok {
			r.logger.Warn("alias_target_missing",
				slog.String("alias", alias.Name), slog.String("same_as", alias.SameAs))
			delete(r.aliases, key)
			continue
		}
		alias.target = target
	}
}

// Lookup resolves a display name through the canonical, alias, and
// anonymous-template partitions, first match wins.
func (r *Registry) Lookup(name string) (Resolution, bool) {
	key := namekey.From(name)

	if c, ok := r.canonical[key]; ok {
		return Resolution{Char: c}, true
	}
	if alias, ok := r.aliases[key]; ok {
		return Resolution{Char: alias.target, ViaAlias: true}, true
	}
	if template, ok := r.anon[key]; ok {
		return Resolution{Template: template}, true
	}
	return Resolution{}, false
}

package corpus

import (
	"github.com/oratiodb/oratio/internal/corpus/vocab"
	"github.com/oratiodb/oratio/pkg/namekey"
)

// InstanceSeed carries attributes from the optional instances file that
// are overlaid onto a resolved instance: a disguise, an anonymity flag,
// attribute overrides, or a link to a canonical character the registry
// alone cannot supply. Earlier corpus revisions inlined these per
// speech; the file supersedes that.
type InstanceSeed struct {
	Name     string
	CharName string // "instance_of" column, a canonical character name
	Being    string
	Number   string
	Gender   string
	Disguise string
	Anon     bool
	Notes    string
}

// loadInstanceSeeds indexes the instances file by normalized name. The
// file is optional; callers pass nil rows when it is absent.
func (ing *Ingestor) loadInstanceSeeds(rows []Row) map[string]*InstanceSeed {
	seeds := make(map[string]*InstanceSeed, len(rows))

	beingSpec := FieldSpec{Name: "being", Allowed: vocab.Being, AllowEmpty: true}
	numberSpec := FieldSpec{Name: "number", Allowed: vocab.Number, AllowEmpty: true}
	genderSpec := FieldSpec{Name: "gender", Allowed: vocab.Gender, AllowEmpty: true}

	for _, row := range rows {
		name := row.Get("name")
		if name == "" {
			ing.report.AddSkip(row, "name: value required")
			continue
		}

		errs := &RowErrors{}

		being, fieldErr := beingSpec.Validate(row.Get("being"))
		errs.AddField(fieldErr)

		number, fieldErr := numberSpec.Validate(row.Get("number"))
		errs.AddField(fieldErr)

		gender, fieldErr := genderSpec.Validate(row.Get("gender"))
		errs.AddField(fieldErr)

		if errs.HasErrors() {
			ing.report.AddSkip(row, errs.Reasons()...)
			continue
		}

		seeds[namekey.From(name)] = &InstanceSeed{
			Name:     name,
			CharName: row.Get("instance_of"),
			Being:    being,
			Number:   number,
			Gender:   gender,
			Disguise: row.Get("disguise"),
			Anon:     BoolField(row.Get("anon")),
			Notes:    row.Get("notes"),
		}
	}

	return seeds
}

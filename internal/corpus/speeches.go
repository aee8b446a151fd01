package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/oratiodb/oratio/internal/core/character"
	"github.com/oratiodb/oratio/internal/core/speech"
	"github.com/oratiodb/oratio/internal/core/work"
	"github.com/oratiodb/oratio/internal/corpus/vocab"
	"github.com/oratiodb/oratio/pkg/pointer"
)

// modifierPattern strips parenthetical and bracketed qualifiers from role
// names: "Achilles (in disguise)" resolves as "Achilles".
var modifierPattern = regexp.MustCompile(`\s*\([^)]*\)|\s*\[[^\]]*\]`)

// Bystander cells use these tokens to state that bystanders are
// unrecorded; they produce no instances and no diagnostics.
var bystanderNullTokens = map[string]bool{
	"unspecified": true,
	"none":        true,
}

// speechDraft accumulates one row's validated fields and resolved
// instances. Nothing is written while a draft is open: a draft either
// becomes fully valid and commits in one pass, or is rejected having
// caused no storage side effects at all, orphaned clusters included.
type speechDraft struct {
	row  Row
	errs *RowErrors

	sp         speech.Speech
	speakers   []*character.Instance
	addressees []*character.Instance
	bystanders []*character.Instance
	tags       []speech.Tag
}

// ingestSpeeches runs the per-row state machine over one speeches file:
// parse and validate everything, then commit only fully valid rows.
func (ing *Ingestor) ingestSpeeches(ctx context.Context, rows []Row, works map[int]*work.Work) {
	for _, row := range rows {
		// Alternate readings of an already-recorded speech are not
		// ingested; the skip keeps them visible in the report.
		if BoolField(row.Get("alt")) {
			ing.report.AddSkip(row, "alternate reading, not ingested")
			continue
		}

		draft := ing.parseSpeechRow(row, works)

		if draft.errs.HasErrors() {
			ing.logger.Warn("speech_row_rejected",
				slog.String("file", row.File),
				slog.Int("line", row.Line),
				slog.String("reasons", draft.errs.Error()))
			ing.report.AddSkip(row, draft.errs.Reasons()...)
			continue
		}

		ing.commitSpeech(ctx, draft)
	}
}

// parseSpeechRow is the PARSING and VALIDATING phase. Failures are
// accumulated, never short-circuited, so one diagnostic lists every
// problem on the row. The phase is pure with respect to storage.
func (ing *Ingestor) parseSpeechRow(row Row, works map[int]*work.Work) *speechDraft {
	draft := &speechDraft{row: row, errs: &RowErrors{}}

	workID, fieldErr := IntField("work_id", row.Get("work_id"))
	draft.errs.AddField(fieldErr)

	var owner *work.Work
	if fieldErr == nil {
		var ok bool
		if owner, ok = works[workID]; !ok {
			draft.errs.Add(&ResolutionError{Kind: "work", Ref: strconv.Itoa(workID)})
		}
	}

	clusterID, fieldErr := IntField("cluster_id", row.Get("cluster_id"))
	draft.errs.AddField(fieldErr)

	part, fieldErr := IntField("cluster_part", row.Get("cluster_part"))
	draft.errs.AddField(fieldErr)

	if fieldErr == nil && ing.partSeen(clusterID, part) {
		draft.errs.Add(&FieldError{
			Field:  "cluster_part",
			Raw:    row.Get("cluster_part"),
			Reason: fmt.Sprintf("part already used in cluster %d", clusterID),
		})
	}

	typeSpec := FieldSpec{Name: "type", Allowed: vocab.SpeechType, Transform: FirstLetterUpper}
	speechType, fieldErr := typeSpec.Validate(row.Get("type"))
	draft.errs.AddField(fieldErr)

	level, fieldErr := IntFieldOr("embedded_level", row.Get("embedded_level"), 1)
	draft.errs.AddField(fieldErr)
	if level < 1 {
		level = 1
	}

	firstLine, fieldErr := Locus("from_line", row.Get("from_book"), row.Get("from_line"))
	draft.errs.AddField(fieldErr)

	lastLine, fieldErr := Locus("to_line", row.Get("to_book"), row.Get("to_line"))
	draft.errs.AddField(fieldErr)

	draft.sp = speech.Speech{
		ClusterID: clusterID,
		WorkID:    workID,
		Type:      speechType,
		Part:      part,
		FirstLine: firstLine,
		LastLine:  lastLine,
		Level:     level,
	}
	// Corpus order normally dictates seq, but a source file may pin it
	// explicitly; later unpinned rows continue from the pinned value.
	if raw := row.Get("seq"); raw != "" {
		seq, fieldErr := IntField("seq", raw)
		draft.errs.AddField(fieldErr)
		if fieldErr == nil && seq == 0 {
			draft.errs.Add(&FieldError{Field: "seq", Raw: raw, Reason: "must be positive"})
		}
		draft.sp.Seq = seq
	}

	// The partial-line columns are named "a" and "b"; older hands record
	// an affirmative as "y(es)", newer ones repeat the column letter.
	if row.Has("a") {
		draft.sp.PartialA = partialFlag(row.Get("a"), 'a')
	}
	if row.Has("b") {
		draft.sp.PartialB = partialFlag(row.Get("b"), 'b')
	}
	if notes := row.Get("speaker_notes"); notes != "" {
		draft.sp.SpeakerNotes = pointer.To(notes)
	}
	if notes := row.Get("addressee_notes"); notes != "" {
		draft.sp.AddresseeNotes = pointer.To(notes)
	}
	if notes := row.Get("notes"); notes != "" {
		draft.sp.Notes = pointer.To(notes)
	}

	// Role resolution needs the work's long name as narrative context;
	// without a resolvable work the row has already failed.
	if owner != nil {
		narrativeContext := owner.LongName()
		draft.speakers = ing.resolveRole(draft, "speaker", row.Get("speaker"), narrativeContext)
		draft.addressees = ing.resolveAddressees(draft, row, narrativeContext)
		draft.bystanders = ing.resolveBystanders(draft, row.Get("bystanders"), narrativeContext)

		if len(draft.speakers) == 0 {
			draft.errs.Add(&FieldError{Field: "speaker", Raw: row.Get("speaker"), Reason: "at least one speaker required"})
		}
	}

	tags, tagErrs := ParseTags(row.Get("short_type"), ing.opts.LenientTags)
	for _, tagErr := range tagErrs {
		draft.errs.AddField(tagErr)
	}
	draft.tags = tags

	return draft
}

// resolveRole splits a role cell and resolves each name. Resolution
// failures accumulate on the draft.
func (ing *Ingestor) resolveRole(draft *speechDraft, field, raw, narrativeContext string) []*character.Instance {
	var instances []*character.Instance

	for _, name := range ing.splitNames(raw) {
		if strings.EqualFold(name, selfToken) {
			draft.errs.Add(&FieldError{Field: field, Raw: name, Reason: `"self" is only valid as an addressee`})
			continue
		}

		inst, err := ing.resolver.Resolve(name, narrativeContext)
		if err != nil {
			draft.errs.Add(err)
			continue
		}
		instances = append(instances, inst)
	}

	return instances
}

// resolveAddressees handles the two addressee columns: present
// addressees, where the reserved "self" token resolves to the first
// speaker, and absent addressees, which are marked absent when first
// created.
func (ing *Ingestor) resolveAddressees(draft *speechDraft, row Row, narrativeContext string) []*character.Instance {
	var instances []*character.Instance

	for _, name := range ing.splitNames(row.Get("addressee")) {
		if strings.EqualFold(name, selfToken) {
			if len(draft.speakers) == 0 {
				draft.errs.Add(&FieldError{Field: "addressee", Raw: name, Reason: `"self" with no speaker`})
				continue
			}
			instances = append(instances, draft.speakers[0])
			continue
		}

		inst, err := ing.resolver.Resolve(name, narrativeContext)
		if err != nil {
			draft.errs.Add(err)
			continue
		}
		instances = append(instances, inst)
	}

	for _, name := range ing.splitNames(row.Get("absent_addressee")) {
		inst, err := ing.resolver.Resolve(name, narrativeContext)
		if err != nil {
			draft.errs.Add(err)
			continue
		}
		if inst.ID == 0 {
			inst.Absent = true
		}
		instances = append(instances, inst)
	}

	return instances
}

func (ing *Ingestor) resolveBystanders(draft *speechDraft, raw, narrativeContext string) []*character.Instance {
	var instances []*character.Instance

	for _, name := range ing.splitNames(raw) {
		if bystanderNullTokens[strings.ToLower(name)] {
			continue
		}

		inst, err := ing.resolver.Resolve(name, narrativeContext)
		if err != nil {
			draft.errs.Add(err)
			continue
		}
		instances = append(instances, inst)
	}

	return instances
}

// splitNames splits a role cell on the configured separator, strips
// bracketed modifiers, and drops empty tokens.
func (ing *Ingestor) splitNames(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var names []string
	for _, token := range strings.Split(raw, ing.opts.Separator) {
		name := strings.TrimSpace(modifierPattern.ReplaceAllString(token, ""))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// commitSpeech is the PERSISTED phase: instances, cluster, speech row,
// role links, tags, in that order. The draft validated everything
// already; failures here are storage faults and skip the row.
func (ing *Ingestor) commitSpeech(ctx context.Context, draft *speechDraft) {
	for _, group := range []*[]*character.Instance{&draft.speakers, &draft.addressees, &draft.bystanders} {
		for i, inst := range *group {
			persisted, created, err := ing.resolver.Persist(ctx, inst)
			if err != nil {
				ing.report.AddSkip(draft.row, "instance not stored: "+err.Error())
				return
			}
			if created {
				ing.report.Created("instances")
			}
			(*group)[i] = persisted
		}
	}

	cluster := &speech.Cluster{ID: draft.sp.ClusterID, Level: draft.sp.Level}
	created, err := ing.store.GetOrCreateCluster(ctx, cluster)
	if err != nil {
		ing.report.AddSkip(draft.row, "cluster not stored: "+err.Error())
		return
	}
	if !created && cluster.Level != draft.sp.Level {
		ing.logger.Warn("cluster_level_mismatch",
			slog.Int("cluster_id", cluster.ID),
			slog.Int("cluster_level", cluster.Level),
			slog.Int("speech_level", draft.sp.Level))
	}
	if created {
		ing.report.Created("clusters")
	}

	if draft.sp.Seq == 0 {
		draft.sp.Seq = ing.nextSeq
	}
	if err := ing.store.CreateSpeech(ctx, &draft.sp); err != nil {
		ing.report.AddSkip(draft.row, "speech not stored: "+err.Error())
		return
	}
	ing.nextSeq = draft.sp.Seq + 1

	roles := []struct {
		role      speech.Role
		instances []*character.Instance
	}{
		{speech.RoleSpeaker, draft.speakers},
		{speech.RoleAddressee, draft.addressees},
		{speech.RoleBystander, draft.bystanders},
	}
	for _, r := range roles {
		for _, inst := range r.instances {
			if err := ing.store.AttachRole(ctx, r.role, draft.sp.ID, inst.ID); err != nil {
				ing.report.AddSkip(draft.row, "role link not stored: "+err.Error())
				return
			}
		}
	}

	for i := range draft.tags {
		draft.tags[i].SpeechID = draft.sp.ID
		if err := ing.store.CreateTag(ctx, &draft.tags[i]); err != nil {
			ing.report.AddSkip(draft.row, "tag not stored: "+err.Error())
			return
		}
		ing.report.Created("tags")
	}

	ing.markPart(draft.sp.ClusterID, draft.sp.Part)
	ing.sequencer.Observe(draft.sp.ClusterID)
	ing.report.Created("speeches")
}

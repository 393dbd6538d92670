package ingestion

import (
	"github.com/poiesic/carena/core"
)

// Catalog is the parsed form of an authored catalog file. Records reference
// each other by slug; the loader resolves slugs to content-hash IDs.
type Catalog struct {
	Concerns []ConcernRecord `json:"concerns"`
	Cares    []CareRecord    `json:"cares"`
	Variants []VariantRecord `json:"variants"`
	Bundles  []BundleRecord  `json:"bundles"`
}

// ConcernRecord is a concern as authored in a catalog file.
type ConcernRecord struct {
	Id            string              `json:"id"`
	Title         string              `json:"title"`
	Category      string              `json:"category"`
	PrimaryTags   []string            `json:"primary_tags,omitempty"`
	SecondaryTags []string            `json:"secondary_tags,omitempty"`
	TraitTypes    []string            `json:"trait_types,omitempty"`
	Situations    map[string][]string `json:"situations,omitempty"`
	Examples      map[string][]string `json:"examples,omitempty"`
	CareIds       []string            `json:"care_ids,omitempty"`
}

// CareRecord is a care as authored in a catalog file.
type CareRecord struct {
	Id      string        `json:"id"`
	Title   string        `json:"title"`
	Bullets []string      `json:"bullets,omitempty"`
	Tags    []string      `json:"tags,omitempty"`
	Signals SignalsRecord `json:"signals"`
}

// SignalsRecord carries the scoring tags of a care. Absent fields stay
// neutral for the scorer.
type SignalsRecord struct {
	Cost               string   `json:"cost,omitempty"`
	Difficulty         string   `json:"difficulty,omitempty"`
	ExpertiseRequired  string   `json:"expertise_required,omitempty"`
	PsychologicalEase  string   `json:"psychological_ease,omitempty"`
	LegalBasis         string   `json:"legal_basis,omitempty"`
	EffectType         string   `json:"effect_type,omitempty"`
	LeadTimeDays       *int     `json:"lead_time_days,omitempty"`
	MonthlyUpkeepHours *float64 `json:"monthly_upkeep_hours,omitempty"`
	StakeholderCount   *int     `json:"stakeholder_count,omitempty"`
}

// VariantRecord is a domain-specific care elaboration as authored.
type VariantRecord struct {
	Id                string   `json:"id"`
	CareId            string   `json:"care_id"`
	Domain            string   `json:"domain"`
	Detail            []string `json:"detail,omitempty"`
	RequestDifficulty float64  `json:"request_difficulty,omitempty"`
}

// BundleRecord fixes the presentation order of cares for one concern.
type BundleRecord struct {
	ConcernId string              `json:"concern_id"`
	Entries   []BundleEntryRecord `json:"entries"`
}

// BundleEntryRecord pairs a care slug with its variant slugs.
type BundleEntryRecord struct {
	CareId     string   `json:"care_id"`
	VariantIds []string `json:"variant_ids,omitempty"`
}

// refID resolves a reference slug to an ID. Empty slugs map to the zero ID
// so domain validation can reject them as missing references.
func refID(slug string) core.ID {
	if slug == "" {
		return 0
	}
	return core.IDFromSlug(slug)
}

func refIDs(slugs []string) []core.ID {
	if len(slugs) == 0 {
		return nil
	}
	ids := make([]core.ID, len(slugs))
	for i, slug := range slugs {
		ids[i] = refID(slug)
	}
	return ids
}

func domainLists(m map[string][]string) map[core.Domain][]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[core.Domain][]string, len(m))
	for domain, values := range m {
		out[core.Domain(domain)] = values
	}
	return out
}

func (r *ConcernRecord) toConcern() *core.Concern {
	return &core.Concern{
		Slug:          r.Id,
		Title:         r.Title,
		Category:      r.Category,
		PrimaryTags:   r.PrimaryTags,
		SecondaryTags: r.SecondaryTags,
		TraitTypes:    r.TraitTypes,
		Situations:    domainLists(r.Situations),
		Examples:      domainLists(r.Examples),
		CareIds:       refIDs(r.CareIds),
	}
}

func (r *CareRecord) toCare() *core.Care {
	return &core.Care{
		Slug:    r.Id,
		Title:   r.Title,
		Bullets: r.Bullets,
		Tags:    r.Tags,
		Signals: core.CareSignals{
			Cost:               core.Level(r.Signals.Cost),
			Difficulty:         core.Level(r.Signals.Difficulty),
			ExpertiseRequired:  core.Level(r.Signals.ExpertiseRequired),
			PsychologicalEase:  core.Level(r.Signals.PsychologicalEase),
			LegalBasis:         core.LegalBasis(r.Signals.LegalBasis),
			EffectType:         core.EffectType(r.Signals.EffectType),
			LeadTimeDays:       r.Signals.LeadTimeDays,
			MonthlyUpkeepHours: r.Signals.MonthlyUpkeepHours,
			StakeholderCount:   r.Signals.StakeholderCount,
		},
	}
}

func (r *VariantRecord) toVariant() *core.CareVariant {
	return &core.CareVariant{
		Slug:              r.Id,
		CareId:            refID(r.CareId),
		Domain:            core.Domain(r.Domain),
		Detail:            r.Detail,
		RequestDifficulty: r.RequestDifficulty,
	}
}

func (r *BundleRecord) toBundle() *core.Bundle {
	bundle := &core.Bundle{
		ConcernId: refID(r.ConcernId),
	}
	for _, entry := range r.Entries {
		bundle.Entries = append(bundle.Entries, core.BundleEntry{
			CareId:     refID(entry.CareId),
			VariantIds: refIDs(entry.VariantIds),
		})
	}
	return bundle
}

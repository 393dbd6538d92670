package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entities.
// It is derived from the entity's authored slug via content-based hashing,
// so the same catalog always produces the same IDs.
type ID uint64

// IDFromSlug generates a deterministic ID from an authored slug using BLAKE2b hashing.
// Cross-references in catalog data (a bundle entry naming a care, a variant naming
// its care) resolve by hashing the referenced slug with this function.
func IDFromSlug(slug string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(slug))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Domain is a life context in which a concern arises and a remedy applies.
type Domain string

const (
	// DomainWorkplace covers employment contexts.
	DomainWorkplace Domain = "workplace"
	// DomainEducation covers school and university contexts.
	DomainEducation Domain = "education"
	// DomainSupportService covers public/support service contexts.
	DomainSupportService Domain = "support-service"
)

// Domains lists the supported domains in presentation order.
var Domains = []Domain{DomainWorkplace, DomainEducation, DomainSupportService}

// ValidDomain reports whether d is one of the supported domains.
func ValidDomain(d Domain) bool {
	switch d {
	case DomainWorkplace, DomainEducation, DomainSupportService:
		return true
	}
	return false
}

// Level is a low/medium/high ordinal used by care signals and hard limits.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// LegalBasis classifies how strongly a remedy is legally grounded.
type LegalBasis string

const (
	LegalMandatory        LegalBasis = "mandatory"
	LegalReasonableEffort LegalBasis = "reasonable-effort"
	LegalOptional         LegalBasis = "optional"
)

// EffectType classifies how a remedy's benefit lands.
type EffectType string

const (
	EffectImmediate   EffectType = "immediate"
	EffectBroadImpact EffectType = "broad-impact"
	EffectSustained   EffectType = "sustained"
	EffectLocalized   EffectType = "localized"
)

// Concern is a describable difficulty a person may face.
// Concerns are immutable once loaded; derived indices are rebuilt on reload.
type Concern struct {
	Id            ID
	Slug          string
	Title         string
	Category      string
	PrimaryTags   []string
	SecondaryTags []string
	TraitTypes    []string            // personal traits this concern is associated with
	Situations    map[Domain][]string // domain -> situation labels it can arise in
	Examples      map[Domain][]string // domain -> example texts
	CareIds       []ID                // informational; display order comes from the Bundle
	InsertedAt    time.Time
	UpdatedAt     time.Time
}

// Care is a reusable, domain-agnostic remedy description.
type Care struct {
	Id         ID
	Slug       string
	Title      string
	Bullets    []string // short summary points, at most MaxCareBullets
	Tags       []string
	Signals    CareSignals
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// MaxCareBullets is the maximum number of summary bullets a care may carry.
const MaxCareBullets = 5

// CareSignals is the tag metadata the recommendation scorer reads.
// Ordinal fields left empty and nil numeric fields score as neutral.
type CareSignals struct {
	Cost               Level
	Difficulty         Level
	ExpertiseRequired  Level
	PsychologicalEase  Level // high means easy to ask for
	LegalBasis         LegalBasis
	EffectType         EffectType
	LeadTimeDays       *int
	MonthlyUpkeepHours *float64
	StakeholderCount   *int
}

// CareVariant is a domain-specific elaboration of a Care.
type CareVariant struct {
	Id                ID
	Slug              string
	CareId            ID
	Domain            Domain
	Detail            []string // longer detail paragraphs
	RequestDifficulty float64
	InsertedAt        time.Time
	UpdatedAt         time.Time
}

// Bundle is the authoritative presentation order of remedies for one Concern.
// At most one bundle exists per concern; storage keys bundles by concern id.
type Bundle struct {
	ConcernId  ID
	Entries    []BundleEntry
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// BundleEntry pairs one care with its domain variants, in presentation order.
type BundleEntry struct {
	CareId     ID
	VariantIds []ID // conceptually one per domain; violations degrade at read time
}

// Query selects concerns by personal traits, one context domain, and
// situational tags. Empty fields act as wildcards.
type Query struct {
	Traits     []string
	Domain     Domain
	Situations []string
}

package view

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/recommend"
	"github.com/poiesic/carena/storage"
)

// placeholderTitle is shown for a bundle entry whose care is missing.
const placeholderTitle = "unknown"

// CareCard is one remedy option prepared for display, scoped to a domain.
type CareCard struct {
	Care       *core.Care
	Label      string // stable option label from bundle position: "A", "B", ...
	Bullets    []string
	Detail     []string
	Difficulty float64
}

// Item pairs a matched concern with its ordered remedy cards.
type Item struct {
	Concern *core.Concern
	Cards   []*CareCard
}

// Options converts the item's cards into rankable candidates for the
// recommendation scorer.
func (i *Item) Options() []recommend.Option {
	options := make([]recommend.Option, len(i.Cards))
	for idx, card := range i.Cards {
		options[idx] = recommend.Option{
			Id:    card.Care.Id,
			Label: card.Label,
			Title: card.Care.Title,
			Tags:  card.Care.Signals,
		}
	}
	return options
}

// Assembler joins filtered concerns with their bundled remedy options.
type Assembler struct {
	careRepository   storage.CareRepository
	bundleRepository storage.BundleRepository
	logger           *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAssembler creates a new assembler.
func NewAssembler(
	careRepository storage.CareRepository,
	bundleRepository storage.BundleRepository,
	opts ...Option,
) (*Assembler, error) {
	if careRepository == nil {
		return nil, ErrCareRepositoryRequired
	}
	if bundleRepository == nil {
		return nil, ErrBundleRepositoryRequired
	}

	a := &Assembler{
		careRepository:   careRepository,
		bundleRepository: bundleRepository,
		logger:           slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Assemble builds one Item per concern, in input order, with remedy cards in
// bundle order scoped to the target domain. Missing bundles, missing cares,
// and absent domain variants degrade gracefully; they never fail the call.
func (a *Assembler) Assemble(ctx context.Context, concerns []*core.Concern, domain core.Domain) ([]*Item, error) {
	if !core.ValidDomain(domain) {
		return nil, ErrInvalidDomain
	}

	items := make([]*Item, 0, len(concerns))
	for _, concern := range concerns {
		if concern == nil {
			continue
		}
		item, err := a.assembleItem(ctx, concern, domain)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (a *Assembler) assembleItem(ctx context.Context, concern *core.Concern, domain core.Domain) (*Item, error) {
	item := &Item{
		Concern: concern,
		Cards:   []*CareCard{},
	}

	bundle, err := a.bundleRepository.GetBundle(ctx, concern.Id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Concern still shown, with zero options.
			a.logger.Debug("concern has no bundle", "concernID", concern.Id, "slug", concern.Slug)
			return item, nil
		}
		a.logger.Error("error retrieving bundle", "concernID", concern.Id, "err", err)
		return nil, err
	}

	for position, entry := range bundle.Entries {
		card, err := a.assembleCard(ctx, entry, position, domain)
		if err != nil {
			return nil, err
		}
		item.Cards = append(item.Cards, card)
	}
	return item, nil
}

func (a *Assembler) assembleCard(ctx context.Context, entry core.BundleEntry, position int, domain core.Domain) (*CareCard, error) {
	care, err := a.careRepository.GetCare(ctx, entry.CareId)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.logger.Error("error retrieving care", "careID", entry.CareId, "err", err)
			return nil, err
		}
		// Dangling reference: synthesize a placeholder card.
		a.logger.Warn("bundle entry references missing care", "careID", entry.CareId)
		care = &core.Care{Id: entry.CareId, Title: placeholderTitle}
	}

	card := &CareCard{
		Care:    care,
		Label:   optionLabel(position),
		Bullets: care.Bullets,
		Detail:  []string{},
	}

	variant, err := a.domainVariant(ctx, entry, domain)
	if err != nil {
		return nil, err
	}
	if variant != nil {
		card.Detail = variant.Detail
		card.Difficulty = variant.RequestDifficulty
		if len(card.Bullets) == 0 {
			card.Bullets = variant.Detail
			if len(card.Bullets) > core.MaxCareBullets {
				card.Bullets = card.Bullets[:core.MaxCareBullets]
			}
		}
	}
	if card.Bullets == nil {
		card.Bullets = []string{}
	}
	return card, nil
}

// domainVariant resolves the entry's first variant matching the target
// domain. The data model implies at most one variant per domain but does not
// enforce it; extras are ignored with a warning.
func (a *Assembler) domainVariant(ctx context.Context, entry core.BundleEntry, domain core.Domain) (*core.CareVariant, error) {
	if len(entry.VariantIds) == 0 {
		return nil, nil
	}

	variants, err := a.careRepository.GetVariants(ctx, entry.VariantIds...)
	if err != nil {
		a.logger.Error("error retrieving variants", "careID", entry.CareId, "err", err)
		return nil, err
	}
	if len(variants) < len(entry.VariantIds) {
		a.logger.Warn("bundle entry references missing variants",
			"careID", entry.CareId, "expected", len(entry.VariantIds), "found", len(variants))
	}

	var matched *core.CareVariant
	for _, variant := range variants {
		if variant.Domain != domain {
			continue
		}
		if matched != nil {
			a.logger.Warn("multiple variants match domain, using first",
				"careID", entry.CareId, "domain", domain)
			break
		}
		matched = variant
	}
	return matched, nil
}

// optionLabel derives the stable display label from a bundle position:
// 0 -> "A", 1 -> "B", ..., 25 -> "Z", 26 -> "AA".
func optionLabel(position int) string {
	label := ""
	for position >= 0 {
		label = string(rune('A'+position%26)) + label
		position = position/26 - 1
	}
	return label
}

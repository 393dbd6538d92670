package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/carena"
	"github.com/poiesic/carena/ingestion"
)

func intPtr(v int) *int       { return &v }
func fPtr(v float64) *float64 { return &v }

// sampleCatalog is a small accommodation catalog for local development.
var sampleCatalog = ingestion.Catalog{
	Concerns: []ingestion.ConcernRecord{
		{
			Id:          "noise-sensitivity",
			Title:       "Sensitivity to background noise",
			Category:    "sensory",
			PrimaryTags: []string{"sensory", "focus"},
			TraitTypes:  []string{"ADHD", "autism"},
			Situations: map[string][]string{
				"workplace": {"open-plan office", "meeting"},
				"education": {"lecture hall", "group work"},
			},
			Examples: map[string][]string{
				"workplace": {"Conversations two desks over make it impossible to follow my own thoughts."},
			},
			CareIds: []string{"noise-cancelling-headphones", "quiet-room-access", "written-meeting-notes"},
		},
		{
			Id:          "time-blindness",
			Title:       "Losing track of time on absorbing tasks",
			Category:    "executive-function",
			PrimaryTags: []string{"planning", "focus"},
			TraitTypes:  []string{"ADHD"},
			Situations: map[string][]string{
				"workplace": {"deadline", "context switch"},
				"education": {"exam", "assignment deadline"},
			},
			CareIds: []string{"timeboxing-support", "deadline-reminders"},
		},
		{
			Id:          "unpredictable-interaction",
			Title:       "Difficulty with unscripted social interaction",
			Category:    "social",
			PrimaryTags: []string{"communication"},
			TraitTypes:  []string{"autism", "social-anxiety"},
			Situations: map[string][]string{
				"workplace":       {"meeting", "performance review"},
				"support-service": {"phone call", "walk-in appointment"},
			},
			CareIds: []string{"agenda-in-advance", "written-communication-option"},
		},
		{
			Id:          "sensory-overload-commute",
			Title:       "Overload from crowded commutes",
			Category:    "sensory",
			PrimaryTags: []string{"sensory", "energy"},
			TraitTypes:  []string{"autism", "sensory-processing"},
			Situations: map[string][]string{
				"workplace": {"rush hour", "office arrival"},
			},
			CareIds: []string{"flexible-hours"},
		},
	},
	Cares: []ingestion.CareRecord{
		{
			Id:      "noise-cancelling-headphones",
			Title:   "Noise-cancelling headphones",
			Bullets: []string{"Blocks ambient noise", "Low setup effort", "Works immediately"},
			Tags:    []string{"equipment", "sensory"},
			Signals: ingestion.SignalsRecord{
				Cost: "low", Difficulty: "low", PsychologicalEase: "high",
				LegalBasis: "mandatory", EffectType: "immediate",
				LeadTimeDays: intPtr(3), StakeholderCount: intPtr(1),
			},
		},
		{
			Id:    "quiet-room-access",
			Title: "Access to a quiet room",
			Tags:  []string{"environment", "sensory"},
			Signals: ingestion.SignalsRecord{
				Cost: "medium", Difficulty: "medium", PsychologicalEase: "medium",
				LegalBasis: "reasonable-effort", EffectType: "sustained",
				LeadTimeDays: intPtr(21), MonthlyUpkeepHours: fPtr(1), StakeholderCount: intPtr(3),
			},
		},
		{
			Id:      "written-meeting-notes",
			Title:   "Written notes for every meeting",
			Bullets: []string{"Nothing relies on in-the-moment listening", "Creates a shared record"},
			Tags:    []string{"process", "communication"},
			Signals: ingestion.SignalsRecord{
				Cost: "low", Difficulty: "medium", PsychologicalEase: "high",
				LegalBasis: "optional", EffectType: "sustained",
				MonthlyUpkeepHours: fPtr(4), StakeholderCount: intPtr(5),
			},
		},
		{
			Id:      "timeboxing-support",
			Title:   "Shared timeboxing with a colleague or coach",
			Bullets: []string{"External structure for task switching"},
			Tags:    []string{"process", "planning"},
			Signals: ingestion.SignalsRecord{
				Cost: "low", Difficulty: "medium", PsychologicalEase: "medium",
				LegalBasis: "optional", EffectType: "sustained",
				MonthlyUpkeepHours: fPtr(6), StakeholderCount: intPtr(2),
			},
		},
		{
			Id:      "deadline-reminders",
			Title:   "Structured deadline reminders",
			Bullets: []string{"Automated nudges at agreed intervals"},
			Tags:    []string{"tooling", "planning"},
			Signals: ingestion.SignalsRecord{
				Cost: "low", Difficulty: "low", PsychologicalEase: "high",
				LegalBasis: "optional", EffectType: "immediate",
				LeadTimeDays: intPtr(1), StakeholderCount: intPtr(1),
			},
		},
		{
			Id:      "agenda-in-advance",
			Title:   "Agendas shared before every meeting",
			Bullets: []string{"Removes surprise topics", "Allows prepared responses"},
			Tags:    []string{"process", "communication"},
			Signals: ingestion.SignalsRecord{
				Cost: "low", Difficulty: "low", PsychologicalEase: "medium",
				LegalBasis: "reasonable-effort", EffectType: "immediate",
				LeadTimeDays: intPtr(7), StakeholderCount: intPtr(4),
			},
		},
		{
			Id:    "written-communication-option",
			Title: "Written alternative to calls and walk-ins",
			Tags:  []string{"process", "communication"},
			Signals: ingestion.SignalsRecord{
				Cost: "low", Difficulty: "medium", PsychologicalEase: "high",
				LegalBasis: "reasonable-effort", EffectType: "broad-impact",
				LeadTimeDays: intPtr(14), StakeholderCount: intPtr(3),
			},
		},
		{
			Id:      "flexible-hours",
			Title:   "Flexible start and end times",
			Bullets: []string{"Avoids rush-hour commutes", "Aligns work with energy levels"},
			Tags:    []string{"policy", "energy"},
			Signals: ingestion.SignalsRecord{
				Cost: "low", Difficulty: "medium", PsychologicalEase: "medium",
				LegalBasis: "reasonable-effort", EffectType: "broad-impact",
				LeadTimeDays: intPtr(30), StakeholderCount: intPtr(4),
			},
		},
	},
	Variants: []ingestion.VariantRecord{
		{
			Id: "noise-cancelling-headphones-workplace", CareId: "noise-cancelling-headphones",
			Domain: "workplace",
			Detail: []string{
				"Agree with the team on a signal for interruptibility while wearing them.",
				"Employers frequently cover the cost as standard equipment.",
			},
			RequestDifficulty: 0.1,
		},
		{
			Id: "noise-cancelling-headphones-education", CareId: "noise-cancelling-headphones",
			Domain:            "education",
			Detail:            []string{"Check exam regulations before relying on them during assessments."},
			RequestDifficulty: 0.3,
		},
		{
			Id: "quiet-room-access-workplace", CareId: "quiet-room-access",
			Domain: "workplace",
			Detail: []string{
				"Identify an underused meeting room as a starting point.",
				"Agree on booking rules so the room stays available.",
				"Review usage after a month.",
			},
			RequestDifficulty: 0.5,
		},
		{
			Id: "quiet-room-access-education", CareId: "quiet-room-access",
			Domain:            "education",
			Detail:            []string{"Student services usually administer quiet exam rooms."},
			RequestDifficulty: 0.4,
		},
		{
			Id: "written-meeting-notes-workplace", CareId: "written-meeting-notes",
			Domain:            "workplace",
			Detail:            []string{"Rotate note duty, or use transcription tooling where policy allows."},
			RequestDifficulty: 0.3,
		},
		{
			Id: "timeboxing-support-workplace", CareId: "timeboxing-support",
			Domain:            "workplace",
			Detail:            []string{"A recurring fifteen-minute planning slot with a colleague works well."},
			RequestDifficulty: 0.4,
		},
		{
			Id: "deadline-reminders-education", CareId: "deadline-reminders",
			Domain:            "education",
			Detail:            []string{"Most learning platforms support per-student reminder schedules."},
			RequestDifficulty: 0.2,
		},
		{
			Id: "agenda-in-advance-workplace", CareId: "agenda-in-advance",
			Domain:            "workplace",
			Detail:            []string{"Ask for agendas at least one working day ahead."},
			RequestDifficulty: 0.2,
		},
		{
			Id: "written-communication-option-support-service", CareId: "written-communication-option",
			Domain:            "support-service",
			Detail:            []string{"Many agencies accept email or form-based contact on request."},
			RequestDifficulty: 0.3,
		},
		{
			Id: "flexible-hours-workplace", CareId: "flexible-hours",
			Domain:            "workplace",
			Detail:            []string{"Propose a trial period with defined core hours."},
			RequestDifficulty: 0.5,
		},
	},
	Bundles: []ingestion.BundleRecord{
		{
			ConcernId: "noise-sensitivity",
			Entries: []ingestion.BundleEntryRecord{
				{CareId: "noise-cancelling-headphones", VariantIds: []string{
					"noise-cancelling-headphones-workplace", "noise-cancelling-headphones-education",
				}},
				{CareId: "quiet-room-access", VariantIds: []string{
					"quiet-room-access-workplace", "quiet-room-access-education",
				}},
				{CareId: "written-meeting-notes", VariantIds: []string{"written-meeting-notes-workplace"}},
			},
		},
		{
			ConcernId: "time-blindness",
			Entries: []ingestion.BundleEntryRecord{
				{CareId: "deadline-reminders", VariantIds: []string{"deadline-reminders-education"}},
				{CareId: "timeboxing-support", VariantIds: []string{"timeboxing-support-workplace"}},
			},
		},
		{
			ConcernId: "unpredictable-interaction",
			Entries: []ingestion.BundleEntryRecord{
				{CareId: "agenda-in-advance", VariantIds: []string{"agenda-in-advance-workplace"}},
				{CareId: "written-communication-option", VariantIds: []string{
					"written-communication-option-support-service",
				}},
			},
		},
		{
			ConcernId: "sensory-overload-commute",
			Entries: []ingestion.BundleEntryRecord{
				{CareId: "flexible-hours", VariantIds: []string{"flexible-hours-workplace"}},
			},
		},
	},
}

var seedFileName = flag.String("src", "", "catalog JSON file to load instead of the built-in sample")
var dbPath = flag.String("db", "./catalog_db", "path to BadgerDB database directory")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	catalog, err := carena.Open(*dbPath)
	if err != nil {
		panic(err)
	}
	defer catalog.Close()

	loader, err := catalog.NewLoader()
	if err != nil {
		panic(err)
	}
	defer loader.Release()

	ctx := context.Background()

	var stats *ingestion.LoadStats
	if *seedFileName != "" {
		stats, err = loader.LoadFile(ctx, *seedFileName)
	} else {
		stats, err = loader.Load(ctx, &sampleCatalog)
	}
	if err != nil {
		panic(err)
	}

	slog.Info("seeded catalog",
		"concerns", stats.Concerns,
		"cares", stats.Cares,
		"variants", stats.Variants,
		"bundles", stats.Bundles)
}

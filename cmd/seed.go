package cmd

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/present"
)

// profile defines a persona for generating seed data.
type profile struct {
	name        string
	description string
	// frequency is the probability of logging on any given day (0.0-1.0).
	frequency float64
	// score picks a score for the given day; progress runs from 0 at the
	// first seeded day to 1 at today.
	score func(progress float64, day time.Time, rng *rand.Rand) int
}

var profiles = map[string]profile{
	"steady": {
		name:        "steady",
		description: "Mostly good days with small dips, logs almost daily",
		frequency:   0.9,
		score: func(_ float64, _ time.Time, rng *rand.Rand) int {
			return 6 + rng.IntN(4)
		},
	},
	"rollercoaster": {
		name:        "rollercoaster",
		description: "Big swings over a roughly two-week cycle",
		frequency:   0.8,
		score: func(_ float64, day time.Time, rng *rand.Rand) int {
			phase := float64(day.YearDay()) / 14 * 2 * math.Pi
			return int(math.Round(5.5+4*math.Sin(phase))) + rng.IntN(3) - 1
		},
	},
	"rough-patch": {
		name:        "rough-patch",
		description: "A slide into a hard stretch, then slow recovery",
		frequency:   0.75,
		score: func(progress float64, _ time.Time, rng *rand.Rand) int {
			// Lowest around the middle of the range.
			base := 2 + 12*math.Abs(progress-0.5)
			return int(math.Round(base)) + rng.IntN(3) - 1
		},
	},
}

var (
	seedTags = []string{"work", "family", "sleep", "exercise", "friends", "weather", "health"}

	seedNotes = map[string][]string{
		"great": {
			"Everything clicked today.",
			"Long walk and a great dinner with friends.",
			"Finished the project and celebrated.",
		},
		"good": {
			"Solid day, got most of my list done.",
			"Nice chat with an old friend.",
			"Slept well for once.",
		},
		"meh": {
			"Nothing special.",
			"Tired but fine.",
			"A lot of meetings.",
		},
		"bad": {
			"Couldn't focus at all.",
			"Argument with a neighbor.",
			"Headache most of the afternoon.",
		},
		"awful": {
			"Really rough day.",
			"Barely slept and everything went wrong.",
			"Just want this week to end.",
		},
	}
)

var (
	seedProfile string
	seedDays    int
	seedSeed    uint64
	seedList    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the mood log with realistic sample data",
	Long: `Populate the mood log with generated entries to try out the views.

Available profiles:
  steady        - Mostly good days with small dips
  rollercoaster - Big swings over a roughly two-week cycle
  rough-patch   - A slide into a hard stretch, then recovery

Generated entries are added to the existing log.`,
	Example: `  moodctl seed
  moodctl seed --profile rollercoaster --days 90
  moodctl seed --list`,
	Args:     cobra.NoArgs,
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if seedList {
			names := make([]string, 0, len(profiles))
			for name := range profiles {
				names = append(names, name)
			}
			slices.Sort(names)
			fmt.Fprintln(w, "Available profiles:")
			for _, name := range names {
				fmt.Fprintf(w, "  %-15s %s\n", name, profiles[name].description)
			}
			return nil
		}
		return seedRun(w, seedProfile, seedDays, seedSeed)
	},
}

func seedRun(w io.Writer, profileName string, days int, seed uint64) error {
	p, ok := profiles[profileName]
	if !ok {
		return fmt.Errorf("unknown profile %q (run 'moodctl seed --list')", profileName)
	}
	if days <= 0 {
		return fmt.Errorf("--days must be positive")
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	generated := generateEntries(p, days, now(), rng)
	entries := append(store.Load(), generated...)
	if err := store.Save(entries); err != nil {
		return err
	}

	fmt.Fprintf(w, "Seeded %d entries over %d days (%s profile)\n", len(generated), days, p.name)
	return nil
}

// generateEntries produces entries for the days before end, oldest first.
// No entry is later than end.
func generateEntries(p profile, days int, end time.Time, rng *rand.Rand) []mood.Entry {
	var out []mood.Entry
	start := end.AddDate(0, 0, -days+1)
	for i := range days {
		day := start.AddDate(0, 0, i)
		if rng.Float64() >= p.frequency {
			continue
		}
		progress := 1.0
		if days > 1 {
			progress = float64(i) / float64(days-1)
		}

		// One to three entries, spread over the waking hours.
		count := 1 + rng.IntN(3)
		hours := make([]int, count)
		for j := range hours {
			hours[j] = 7 + rng.IntN(15)
		}
		slices.Sort(hours)

		for _, hour := range hours {
			ts := time.Date(day.Year(), day.Month(), day.Day(), hour, rng.IntN(60), 0, 0, day.Location())
			if ts.After(end) {
				continue
			}
			score := min(max(p.score(progress, day, rng), mood.MinScore), mood.MaxScore)
			out = append(out, seedEntry(score, ts, rng))
		}
	}
	return out
}

func seedEntry(score int, ts time.Time, rng *rand.Rand) mood.Entry {
	e := mood.Entry{Timestamp: ts, Score: score}
	if rng.Float64() < 0.5 {
		e.Tag = mood.StringPtr(seedTags[rng.IntN(len(seedTags))])
	}
	if rng.Float64() < 0.4 {
		notes := seedNotes[string(present.CategoryFor(score))]
		e.Note = mood.StringPtr(notes[rng.IntN(len(notes))])
	}
	return e
}

func init() {
	seedCmd.Flags().StringVarP(&seedProfile, "profile", "p", "steady", "data profile (steady|rollercoaster|rough-patch)")
	seedCmd.Flags().IntVarP(&seedDays, "days", "d", 60, "number of days to generate")
	seedCmd.Flags().Uint64Var(&seedSeed, "seed", 0, "random seed for reproducible data (0 = random)")
	seedCmd.Flags().BoolVar(&seedList, "list", false, "list available profiles")
	rootCmd.AddCommand(seedCmd)
}

package ui

import (
	"math/rand/v2"

	"github.com/chris-regnier/moodctl/internal/present"
)

var mascots = map[present.Category]string{
	present.Great: "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧",
	present.Good:  "(•‿•)",
	present.Meh:   "(ಠ_ಠ)",
	present.Bad:   "(ಥ﹏ಥ)",
	present.Awful: "(x_x)",
}

var companionMessages = map[present.Category][]string{
	present.Great: {
		"You're glowing, bestie! ✨",
		"Look at you thriving! 🌟",
		"That energy is contagious! 💫",
		"Main character vibes! 🎬",
	},
	present.Good: {
		"Solid day, friend! 😊",
		"We love to see it! 💚",
		"Keep that momentum! 🌱",
		"You're doing great! 👍",
	},
	present.Meh: {
		"Surviving is still progress. 💪",
		"Meh days are valid too. 🤷",
		"Tomorrow's a new start. 🌅",
		"We all have these days. 🫂",
	},
	present.Bad: {
		"Okay, who pissed you off? 😤",
		"This too shall pass, friend. 🌧️",
		"Be gentle with yourself. 💙",
		"I see you struggling. 🫂",
	},
	present.Awful: {
		"I'm here with you. 💜",
		"You're still showing up. 🌙",
		"One breath at a time. 🌊",
		"It's okay to not be okay. 🕊️",
	},
}

// Companion picks the mascot and supportive message shown after a save.
type Companion struct {
	rng *rand.Rand
}

// NewCompanion returns a companion drawing messages from src. A nil source
// uses the package-level generator.
func NewCompanion(src rand.Source) *Companion {
	if src == nil {
		return &Companion{}
	}
	return &Companion{rng: rand.New(src)}
}

func (c *Companion) intN(n int) int {
	if c == nil || c.rng == nil {
		return rand.IntN(n)
	}
	return c.rng.IntN(n)
}

// Mascot returns the face for the score's category.
func Mascot(score int) string {
	return mascots[present.CategoryFor(score)]
}

// Messages returns every message the companion may say for a score.
func Messages(score int) []string {
	return companionMessages[present.CategoryFor(score)]
}

// Say returns the companion's lines for a freshly saved score.
func (c *Companion) Say(score int) []Line {
	msgs := Messages(score)
	style := Style(present.ColorKey(score))
	// Meh keeps the neutral text color rather than the warning amber.
	if present.CategoryFor(score) == present.Meh {
		style = StylePlain
	}
	return []Line{
		{Text: Mascot(score), Style: style, Bold: true},
		L(style, msgs[c.intN(len(msgs))]),
	}
}

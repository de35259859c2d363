package display

// dealer rotates through canned dialogue so consecutive lines differ.
type dealer struct {
	goodLuck      []string
	encouragement []string
	snark         []string
}

func newDealer() *dealer {
	return &dealer{
		goodLuck: []string{
			"Good luck! May the cards favor you.",
			"Let's see if lady luck is smiling at you.",
			"Shuffle up and deal! Time to win big.",
		},
		encouragement: []string{
			"You're close to 21, careful now!",
			"Nice hand, don't push your luck!",
			"Almost there, tension is high!",
		},
		snark: []string{
			"Ouch! That must hurt.",
			"Better luck next time, rookie.",
			"I knew that wasn't going to work out.",
		},
	}
}

func rotate(lines []string) string {
	line := lines[0]
	copy(lines, lines[1:])
	lines[len(lines)-1] = line
	return line
}

func (d *dealer) nextGoodLuck() string      { return rotate(d.goodLuck) }
func (d *dealer) nextEncouragement() string { return rotate(d.encouragement) }
func (d *dealer) nextSnark() string         { return rotate(d.snark) }

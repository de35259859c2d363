package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmguzman/blackjack/internal/game"
)

// readLine blocks for one line of input. EOF reads as an empty line and
// latches the eof flag so prompts degrade instead of spinning.
func (r *Renderer) readLine() string {
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		r.eof = true
		return ""
	}
	return strings.TrimSpace(line)
}

// PlaceBet implements game.Controller. An empty line takes the default;
// anything unparseable also falls back to the default. The engine clamps
// whatever is returned.
func (r *Renderer) PlaceBet(a *game.Agent, def, max int) (int, bool) {
	r.printf("%s", PromptStyle.Render(
		fmt.Sprintf("You have %d chips. Press ENTER to bet %d or type an amount (1-%d): ", a.Chips, def, max)))
	line := r.readLine()
	if line == "" {
		return 0, false
	}
	amount, err := strconv.Atoi(line)
	if err != nil {
		r.println(InfoStyle.Render("Invalid input, using default."))
		return 0, false
	}
	return amount, true
}

// ChooseAction implements game.Controller. Help and the profiles menu loop
// here; only hit, stand, discard and quit reach the engine.
func (r *Renderer) ChooseAction(a *game.Agent) game.PlayerAction {
	for {
		r.printf("\nYour hand: %s (value: %d)\n", a.Hand.Longform(), a.HandValue())
		if hv := a.HandValue(); hv >= 17 && hv < 21 {
			r.dealerSays(r.dealer.nextEncouragement())
		}
		r.printf("%s", PromptStyle.Render("Choose action: (h)it, (s)tand, (d)iscard, (v)iew profiles, (q)uit, (?)help: "))
		line := strings.ToLower(r.readLine())
		if line == "" {
			if r.eof {
				return game.ActionQuit
			}
			continue
		}
		switch line[0] {
		case 'h':
			return game.ActionHit
		case 's':
			return game.ActionStand
		case 'd':
			return game.ActionDiscard
		case 'v':
			r.ProfilesMenu()
		case 'q':
			r.println("Quitting...")
			return game.ActionQuit
		case '?':
			r.println("\nActions:")
			r.println("  h = hit")
			r.println("  s = stand")
			r.println("  d = discard card (remove last)")
			r.println("  v = view profiles")
			r.println("  q = quit")
			r.println("  ? = help")
		default:
			r.println(InfoStyle.Render("Unknown option. Type ? for help."))
		}
	}
}

// ContinueChoice is the player's answer to the between-rounds prompt.
type ContinueChoice int

const (
	ContinuePlay ContinueChoice = iota
	ContinueQuit
	ContinueProfiles
)

// PromptContinue asks whether to play another round.
func (r *Renderer) PromptContinue() ContinueChoice {
	r.printf("%s", PromptStyle.Render("Play another round? (y/n) or (p) profiles: "))
	line := strings.ToLower(r.readLine())
	if line == "" {
		if r.eof {
			return ContinueQuit
		}
		return ContinuePlay
	}
	switch line[0] {
	case 'n':
		return ContinueQuit
	case 'p':
		return ContinueProfiles
	default:
		return ContinuePlay
	}
}

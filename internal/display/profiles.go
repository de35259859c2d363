package display

import (
	"fmt"
	"strings"

	"github.com/jmguzman/blackjack/internal/stats"
)

// ProfilesMenu runs the interactive profile browser against the bound
// record store. Reachable mid-turn and between rounds.
func (r *Renderer) ProfilesMenu() {
	for {
		r.println("\n--- Player Profiles Menu ---")
		r.println("1) View all profiles")
		r.println("2) View specific profile")
		r.println("3) Reset a profile's stats")
		r.println("4) Reset ALL stats")
		r.println("5) Back to game")
		r.println("6) View achievements for a player")
		r.println("7) View chip overview")
		r.println("8) View wager history for a player")
		r.printf("%s", PromptStyle.Render("Choose: "))

		line := r.readLine()
		if line == "" && r.eof {
			return
		}
		switch line {
		case "1":
			r.println("\n-- All Profiles --")
			for _, name := range r.store.Names() {
				r.showProfile(name)
			}
		case "2":
			name := r.promptName("Enter player name: ", "")
			if _, ok := r.store.Lookup(name); ok {
				r.showProfile(name)
			} else {
				r.printf("No profile named '%s'.\n", name)
			}
		case "3":
			name := r.promptName("Enter player name to reset: ", "")
			if r.store.Reset(name) {
				r.resetChips(name)
				r.saveStore()
				r.printf("Profile reset for %s.\n", name)
			} else {
				r.printf("No profile named '%s'.\n", name)
			}
		case "4":
			r.store.ResetAll()
			for _, a := range r.table.Agents() {
				a.Chips = r.table.Config().StartingChips
				a.Wagers = nil
			}
			r.saveStore()
			r.println("All profiles reset.")
		case "5":
			return
		case "6":
			name := r.promptName("Enter player name for achievements (default: You): ", "You")
			r.showAchievements(name)
		case "7":
			r.println("\n--- Chip Overview ---")
			for _, a := range r.table.Agents() {
				r.printf("%s : %d\n", a.Name, a.Chips)
			}
		case "8":
			name := r.promptName("Enter player name for wager history (default: You): ", "You")
			found := false
			for _, a := range r.table.Agents() {
				if a.Name == name {
					found = true
					r.printf("Wager history for %s: %s\n", name, joinInts(a.Wagers, ", "))
				}
			}
			if !found {
				r.printf("No player named '%s'.\n", name)
			}
		default:
			r.println("Unknown choice.")
		}
	}
}

func (r *Renderer) promptName(prompt, def string) string {
	r.printf("%s", PromptStyle.Render(prompt))
	name := r.readLine()
	if name == "" {
		return def
	}
	return name
}

func (r *Renderer) showProfile(name string) {
	rec, ok := r.store.Lookup(name)
	if !ok {
		return
	}
	r.printf("%s : wins=%d losses=%d ties=%d total_games=%d best_streak=%d current_streak=%d biggest_win=%d blackjacks=%d achievements=[%s]\n",
		name, rec.Wins, rec.Losses, rec.Ties, rec.TotalGames, rec.BestStreak,
		rec.CurrentStreak, rec.BiggestWin, rec.Blackjacks,
		strings.Join(rec.AchievementIDs(), ", "))
}

// showAchievements lists unlocked and locked achievements with descriptions.
func (r *Renderer) showAchievements(name string) {
	rec, ok := r.store.Lookup(name)
	if !ok {
		r.printf("No profile named '%s'.\n", name)
		return
	}
	r.printf("\n=== Achievements for %s ===\nUnlocked:\n", name)
	ids := rec.AchievementIDs()
	if len(ids) == 0 {
		r.println("  (none)")
	}
	for _, id := range ids {
		r.printf("  %s %s - %s\n", SuccessStyle.Render("✔"), id, stats.Catalog[id])
	}
	r.println("\nLocked:")
	anyLocked := false
	for _, id := range stats.CatalogIDs() {
		if !rec.Unlocked(id) {
			anyLocked = true
			r.printf("  %s %s - %s\n", ErrorStyle.Render("✘"), id, stats.Catalog[id])
		}
	}
	if !anyLocked {
		r.println("  (none, all unlocked!)")
	}
	r.println("===============================")
}

func (r *Renderer) resetChips(name string) {
	for _, a := range r.table.Agents() {
		if a.Name == name {
			a.Chips = r.table.Config().StartingChips
		}
	}
}

func (r *Renderer) saveStore() {
	if err := r.store.Save(); err != nil {
		r.println(WarningStyle.Render(fmt.Sprintf("Warning: cannot save player stats: %v", err)))
		r.logger.Warn("cannot save player stats", "error", err)
	}
}

package game

// PlayRound runs one complete round: betting, two-pass dealing, natural
// blackjack detection, per-agent turns, settlement. It returns the settled
// outcome, or ErrQuit if the human quit mid-round. The roster is never
// culled here; callers remove bankrupt agents after persisting the outcome.
func (t *Table) PlayRound() (*Outcome, error) {
	t.round++
	t.prepare()
	t.obs.RoundStarted(t.round, t.agents)

	t.collectBets()
	t.deal()
	t.detectBlackjacks()
	t.obs.HandsDealt(t.agents)

	for i, a := range t.agents {
		if a.Bet == 0 || a.Status != InPlay {
			continue
		}
		t.obs.TurnStarted(a)
		if a.IsHuman() {
			if err := t.humanTurn(a); err != nil {
				return nil, err
			}
		} else {
			t.npcTurn(a, i)
		}
	}

	out := t.settle()
	t.obs.RoundSettled(out)
	return out, nil
}

// prepare folds last round's hands into the discard pile, resets per-round
// state and rebuilds the shoe if it is running low on cards.
func (t *Table) prepare() {
	t.pot = t.pot[:0]
	for _, a := range t.agents {
		for _, c := range a.ResetForRound() {
			t.shoe.Discard(c)
		}
	}
	if t.shoe.Remaining() < t.cfg.LowCardThreshold {
		t.logger.Debug("low shoe, rebuilding", "remaining", t.shoe.Remaining())
		t.shoe.Build(t.cfg.Decks)
		t.shoe.Shuffle()
	}
}

// collectBets takes a stake from every agent with chips. The stake leaves
// the chip balance immediately; losing later costs nothing further.
func (t *Table) collectBets() {
	for _, a := range t.agents {
		if a.Chips <= 0 {
			continue
		}
		var bet int
		if a.IsHuman() {
			def := a.LastBet
			if def <= 0 {
				def = t.cfg.MinBet
			}
			if def > a.Chips {
				def = a.Chips
			}
			if t.ctrl != nil {
				if amount, ok := t.ctrl.PlaceBet(a, def, a.Chips); ok {
					bet = clampBet(amount, a.Chips)
				} else {
					bet = clampBet(def, a.Chips)
				}
			} else {
				bet = clampBet(def, a.Chips)
			}
		} else {
			bet = npcBet(a, t.cfg.MinBet, t.records.CurrentStreak(a.Name), t.rng)
		}

		a.Chips -= bet
		a.Bet = bet
		a.LastBet = bet
		a.Wagers = append(a.Wagers, bet)
		t.pot = append(t.pot, potEntry{name: a.Name, amount: bet})
		t.ledger.Push(-bet)
		t.logger.Debug("bet placed", "agent", a.Name, "bet", bet, "chips", a.Chips)
		t.obs.BetPlaced(a, bet)
	}
}

// deal gives two cards to each staked agent, one card per agent per pass.
func (t *Table) deal() {
	for pass := 0; pass < 2; pass++ {
		for _, a := range t.agents {
			if a.Bet == 0 {
				continue
			}
			c := t.shoe.DealOne()
			a.Receive(c)
			t.obs.CardDealt(a, c, pass)
		}
	}
}

// detectBlackjacks stands every naturally dealt 21 before any agent acts.
// Each agent is judged on its own cards only.
func (t *Table) detectBlackjacks() {
	for _, a := range t.agents {
		if a.Bet == 0 {
			continue
		}
		if a.Hand.IsBlackjack() {
			a.Status = Stood
			t.tally[a.Name].Blackjacks++
			t.logger.Debug("natural blackjack", "agent", a.Name)
			t.obs.BlackjackDealt(a)
		}
	}
}

// humanTurn prompts until the human stands, busts or quits. Discarding hands
// the last-drawn card to the shoe's discard pile and the turn continues.
func (t *Table) humanTurn(a *Agent) error {
	for a.Status == InPlay {
		switch t.ctrl.ChooseAction(a) {
		case ActionHit:
			c := t.shoe.DealOne()
			a.Receive(c)
			t.obs.AgentDrew(a, c)
			if a.Hand.IsBust() {
				a.Status = Busted
				t.obs.AgentBusted(a)
			}
		case ActionStand:
			a.Status = Stood
			t.obs.AgentStood(a)
		case ActionDiscard:
			if len(a.Hand) > 0 {
				c := a.Hand[len(a.Hand)-1]
				a.Hand = a.Hand[:len(a.Hand)-1]
				t.shoe.Discard(c)
				t.obs.CardDiscarded(a, c)
			}
		case ActionQuit:
			return ErrQuit
		}
	}
	return nil
}

// npcTurn applies the agent's decision policy until it stands or busts, with
// the occasional table-talk line.
func (t *Table) npcTurn(a *Agent, idx int) {
	for a.Status == InPlay {
		up := HighestUpcard(t.agents, idx)
		if a.Personality.ShouldHit(a.Hand, up, t.rng) {
			if line := t.maybeSpeak(a, 40); line != "" {
				t.obs.AgentSaid(a, line)
			}
			c := t.shoe.DealOne()
			a.Receive(c)
			t.obs.AgentDrew(a, c)
			if a.Hand.IsBust() {
				a.Status = Busted
				t.obs.AgentBusted(a)
			}
		} else {
			a.Status = Stood
			if line := t.maybeSpeak(a, 60); line != "" {
				t.obs.AgentSaid(a, line)
			}
			t.obs.AgentStood(a)
		}
	}
}

// maybeSpeak rolls percent out of 100 for the agent's next speech line.
func (t *Table) maybeSpeak(a *Agent, percent int) string {
	if t.rng.IntN(100) >= percent {
		return ""
	}
	return a.NextLine()
}

// settle determines winners, pays them out and updates session tallies. It
// runs once every agent has a terminal status.
func (t *Table) settle() *Outcome {
	snaps := make([]Snapshot, len(t.agents))
	for i, a := range t.agents {
		snaps[i] = Snapshot{
			Name:      a.Name,
			Human:     a.IsHuman(),
			Bet:       a.Bet,
			Value:     a.HandValue(),
			Busted:    a.Status == Busted,
			Stood:     a.Status == Stood,
			Blackjack: a.Hand.IsBlackjack(),
		}
	}

	pot := t.PotTotal()
	winners := DetermineWinners(snaps)
	winnerSet := make(map[int]bool, len(winners))
	for _, i := range winners {
		winnerSet[i] = true
	}

	out := &Outcome{
		Round:   t.round,
		Pot:     pot,
		Winners: winners,
		Agents:  make([]AgentOutcome, len(t.agents)),
	}

	for i, a := range t.agents {
		s := snaps[i]
		ao := AgentOutcome{
			Name:       s.Name,
			Human:      s.Human,
			Bet:        s.Bet,
			FinalValue: s.Value,
			Busted:     s.Busted,
			Stood:      s.Stood,
			Blackjack:  s.Blackjack,
			Winner:     winnerSet[i],
		}
		if ao.Winner && pot > 0 {
			payout := PayoutFor(s, pot, len(winners))
			a.Chips += payout
			t.ledger.Push(payout)
			ao.Payout = payout
			t.logger.Debug("payout", "agent", a.Name, "payout", payout, "chips", a.Chips)
		}
		ao.ChipsAfter = a.Chips
		out.Agents[i] = ao

		if s.Bet > 0 {
			if ao.Winner {
				t.tally[a.Name].Wins++
			} else {
				t.tally[a.Name].Losses++
			}
		}
	}

	if len(winners) == 0 {
		t.logger.Debug("everyone busted, pot forfeited", "pot", pot)
	}
	return out
}

package game

// Ledger records every chip movement in order: stakes as negative amounts,
// payouts as positive. It is presentation fodder (the "recent transactions"
// view) and feeds nothing back into play.
type Ledger struct {
	entries []int
}

// Push appends a transaction amount.
func (l *Ledger) Push(amount int) {
	l.entries = append(l.entries, amount)
}

// Recent returns up to n of the most recent transactions, oldest first.
func (l *Ledger) Recent(n int) []int {
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]int, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}

// Len returns the total number of recorded transactions.
func (l *Ledger) Len() int {
	return len(l.entries)
}

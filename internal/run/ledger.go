package run

// Ledger tracks the soul currency for one run. The balance is zeroed when
// the next run starts, so the upgrade screen spends it between runs; it is
// never allowed to go negative.
type Ledger struct {
	balance int
}

func NewLedger() *Ledger { return &Ledger{} }

// Credit adds souls. Non-positive amounts are ignored.
func (l *Ledger) Credit(n int) {
	if n <= 0 {
		return
	}
	l.balance += n
}

// TrySpend atomically deducts n if the balance covers it. On failure the
// balance is untouched.
func (l *Ledger) TrySpend(n int) bool {
	if n < 0 || n > l.balance {
		return false
	}
	l.balance -= n
	return true
}

func (l *Ledger) Balance() int { return l.balance }

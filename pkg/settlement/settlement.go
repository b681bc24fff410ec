package settlement

import "slices"

// Balance is the net position of a single participant. A positive Net means
// the participant is owed money (creditor), a negative Net means they owe
// money (debtor). Names are not required to be unique.
type Balance struct {
	Name string `json:"name" yaml:"name"`
	Net  int64  `json:"net"  yaml:"net"`
}

// Transfer is a single payment instruction: From pays To exactly Amount.
// Amount is always strictly positive.
type Transfer struct {
	From   string `json:"from"   yaml:"from"`
	To     string `json:"to"     yaml:"to"`
	Amount int64  `json:"amount" yaml:"amount"`
}

// Settle returns the transfers that zero out the given balances, in the order
// they were matched.
//
// Debtors and creditors are each ordered by the amount outstanding, largest
// first; equal amounts keep their input order. The head of both queues is
// matched for the smaller of the two amounts and whatever is left on either
// side goes back into its queue behind any entries of the same size. Zero
// balances never produce a transfer.
func Settle(balances []Balance) []Transfer {
	debtors, creditors := split(balances)

	transfers := make([]Transfer, 0, max(debtors.len()+creditors.len()-1, 0))
	for debtors.len() > 0 && creditors.len() > 0 {
		d := debtors.pop()
		c := creditors.pop()

		amount := min(d.owed, c.owed)
		if amount > 0 {
			transfers = append(transfers, Transfer{From: d.name, To: c.name, Amount: amount})
		}

		if rest := d.owed - amount; rest > 0 {
			debtors.push(position{name: d.name, owed: rest})
		}
		if rest := c.owed - amount; rest > 0 {
			creditors.push(position{name: c.name, owed: rest})
		}
	}

	return transfers
}

// split partitions balances into a debtor and a creditor queue, dropping
// everyone who broke even.
func split(balances []Balance) (debtors, creditors queue) {
	for _, b := range balances {
		switch {
		case b.Net < 0:
			debtors = append(debtors, position{name: b.Name, owed: -b.Net})
		case b.Net > 0:
			creditors = append(creditors, position{name: b.Name, owed: b.Net})
		}
	}

	debtors.sort()
	creditors.sort()

	return debtors, creditors
}

// Total returns the sum of all nets. Balanced input totals zero.
func Total(balances []Balance) int64 {
	var total int64
	for _, b := range balances {
		total += b.Net
	}

	return total
}

// Residuals applies transfers to balances and returns the net each name is
// left with. Creditors receive, debtors pay. Entries sharing a name are
// summed. For balanced input settled by Settle every residual is zero.
func Residuals(balances []Balance, transfers []Transfer) map[string]int64 {
	out := make(map[string]int64, len(balances))
	for _, b := range balances {
		out[b.Name] += b.Net
	}
	for _, t := range transfers {
		out[t.From] += t.Amount
		out[t.To] -= t.Amount
	}

	return out
}

// Bounds returns the range the number of transfers produced by Settle falls
// in for balanced input: at least one transfer per participant on the larger
// side, at most one less than the number of non-zero participants.
func Bounds(balances []Balance) (lower, upper int) {
	debtors, creditors := Counts(balances)
	if debtors == 0 || creditors == 0 {
		return 0, 0
	}

	return max(debtors, creditors), debtors + creditors - 1
}

// Counts reports how many debtors and creditors the balances contain.
func Counts(balances []Balance) (debtors, creditors int) {
	for _, b := range balances {
		switch {
		case b.Net < 0:
			debtors++
		case b.Net > 0:
			creditors++
		}
	}

	return debtors, creditors
}

// Sorted returns a copy of balances ordered by Net, largest first. Equal nets
// keep their input order.
func Sorted(balances []Balance) []Balance {
	out := slices.Clone(balances)
	slices.SortStableFunc(out, func(a, b Balance) int {
		switch {
		case a.Net > b.Net:
			return -1
		case a.Net < b.Net:
			return 1
		default:
			return 0
		}
	})

	return out
}

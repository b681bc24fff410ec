package settlement

import "slices"

// position is an amount still outstanding for one participant.
type position struct {
	name string
	owed int64
}

// queue holds positions ordered by owed, largest first.
type queue []position

func (q *queue) len() int { return len(*q) }

// sort orders the queue descending. It is stable so participants with the
// same amount stay in input order.
func (q *queue) sort() {
	slices.SortStableFunc(*q, func(a, b position) int {
		switch {
		case a.owed > b.owed:
			return -1
		case a.owed < b.owed:
			return 1
		default:
			return 0
		}
	})
}

// pop removes and returns the largest position. The queue must not be empty.
func (q *queue) pop() position {
	head := (*q)[0]
	*q = (*q)[1:]

	return head
}

// push inserts p before the first position owing strictly less than p, or at
// the end if there is none.
func (q *queue) push(p position) {
	i := slices.IndexFunc(*q, func(e position) bool { return e.owed < p.owed })
	if i < 0 {
		*q = append(*q, p)

		return
	}

	*q = slices.Insert(*q, i, p)
}

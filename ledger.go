package expenses

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger is the collection of transactions belonging to one account.
//
// Insertion order carries no meaning: display order is always re-derived
// from the transaction dates. Sorting is stable, so transactions on the same
// date keep their relative insertion order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions to the ledger. It does not touch any balance:
// Account.AddTransaction is the mutation path that keeps both in step.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in its
// original insertion order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// sortedAscending returns a chronologically sorted copy of the transactions.
// The sort is stable.
func (l *Ledger) sortedAscending() []Transaction {
	txs := slices.Clone(l.transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs
}

// RunningBalance yields (date, cumulative sum) pairs: the opening amount
// plus a prefix sum over the transactions sorted ascending by date, with
// same-date transactions in insertion order. The sequence is lazy and
// restartable: each range re-derives it from the current ledger content.
func (l *Ledger) RunningBalance(opening Amount) iter.Seq2[Datetime, Amount] {
	return func(yield func(Datetime, Amount) bool) {
		sum := A(0).Add(opening)
		for _, tx := range l.sortedAscending() {
			sum = sum.Add(tx.Amount)
			if !yield(tx.Date, sum) {
				return
			}
		}
	}
}

// GroupedByDescription returns the sum of amounts for each exact description
// string. No trimming or case folding is applied.
func (l *Ledger) GroupedByDescription() map[string]Amount {
	sums := make(map[string]Amount)
	for _, tx := range l.transactions {
		sums[tx.Description] = sums[tx.Description].Add(tx.Amount)
	}
	return sums
}

// Descriptions iterates over the distinct descriptions in lexical order.
func (l *Ledger) Descriptions() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			visited[tx.Description] = struct{}{}
		}
		descriptions := slices.Collect(maps.Keys(visited))
		slices.Sort(descriptions)
		for _, description := range descriptions {
			if !yield(description) {
				return
			}
		}
	}
}

// AllSortedDescending returns a copy of the transactions ordered by date
// descending, for display. The ledger is not mutated.
func (l *Ledger) AllSortedDescending() []Transaction {
	txs := slices.Clone(l.transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	return txs
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// missing value for an empty ledger.
func (l *Ledger) OldestTransactionDate() Datetime {
	var oldest Datetime
	for _, tx := range l.transactions {
		if oldest.IsZero() || tx.Date.Before(oldest) {
			oldest = tx.Date
		}
	}
	return oldest
}

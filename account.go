package expenses

import "iter"

// Account is the unit of persistence: one credential, one profile and one
// ledger. Accounts are created at sign-up and never deleted.
//
// The password is stored and compared as plain text, a known weakness of the
// store format kept for compatibility with existing files.
type Account struct {
	password string
	profile  *Profile
	ledger   *Ledger
}

// NewAccount creates an account with an empty ledger and the given initial
// balance.
func NewAccount(username, password string, age int, balance Amount) *Account {
	return &Account{
		password: password,
		profile:  NewProfile(username, age, balance),
		ledger:   NewLedger(),
	}
}

func (a *Account) Profile() *Profile { return a.profile }
func (a *Account) Ledger() *Ledger   { return a.ledger }

// InitialBalance derives the balance the account was opened with: the
// current balance minus the sum of every recorded amount.
func (a *Account) InitialBalance() Amount {
	initial := a.profile.balance
	for _, tx := range a.ledger.Transactions() {
		initial = initial.Sub(tx.Amount)
	}
	return initial
}

// RunningBalance yields the account balance over time: the initial balance
// plus the prefix sum of transaction amounts in chronological order.
func (a *Account) RunningBalance() iter.Seq2[Datetime, Amount] {
	return a.ledger.RunningBalance(a.InitialBalance())
}

// AddTransaction records a signed transaction and applies the same delta to
// the profile balance in the same operation, so the balance invariant is
// never observable in a half-applied state.
func (a *Account) AddTransaction(date Datetime, description string, amount Amount) Transaction {
	tx := NewTransaction(date, description, amount)
	a.ledger.Append(tx)
	a.profile.UpdateBalance(amount)
	return tx
}

package expenses

// Transaction is the atomic unit of the ledger: a dated, signed movement of
// money with a free-text description. The description may be empty.
//
// The exported field names double as the JSON keys of the store file, which
// keeps the persisted records in their historical "Date", "Description",
// "Amount" shape.
type Transaction struct {
	Date        Datetime
	Description string
	Amount      Amount
}

// NewTransaction creates a transaction with the given signed amount.
func NewTransaction(date Datetime, description string, amount Amount) Transaction {
	return Transaction{Date: date, Description: description, Amount: amount}
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() Datetime { return t.Date }

func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date && t.Description == o.Description && t.Amount.Equal(o.Amount)
}

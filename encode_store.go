package expenses

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// accountRecord mirrors one account entry in the store document.
type accountRecord struct {
	Password string        `json:"password"`
	Age      int           `json:"age"`
	Balance  Amount        `json:"balance"`
	Expenses []Transaction `json:"expenses"`
}

// EncodeStore serializes every account to a single JSON document and writes
// it to w. The output is canonical: accounts in username order, account
// fields in the historical password, age, balance, expenses order, records
// with their date normalized to the canonical string form and missing fields
// written as empty strings rather than nulls, two-space indentation.
//
// The document always describes the whole store; writing it is a full
// replace, never an append or a diff.
func EncodeStore(w io.Writer, s *Store) error {
	var doc jsonObjectWriter
	for account := range s.Accounts() {
		var entry jsonObjectWriter
		entry.Append("password", account.password)
		entry.Append("age", account.profile.age)
		entry.Append("balance", account.profile.balance)

		records := make([]Transaction, 0, account.ledger.Len())
		for _, tx := range account.ledger.Transactions() {
			records = append(records, tx)
		}
		entry.Append("expenses", records)

		doc.Append(account.profile.username, &entry)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return fmt.Errorf("could not indent store document: %w", err)
	}
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("could not write store document: %w", err)
	}
	return nil
}

// DecodeStore parses a store document from r and reconstructs one account
// per entry. Empty input yields an empty store and no error, this is the
// expected first-run state. A present but unparseable document also yields
// an empty store, with an error wrapping ErrMalformedStore so the caller can
// surface the warning and keep going.
func DecodeStore(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read store document: %w", err)
	}

	store := NewStore()
	if len(bytes.TrimSpace(data)) == 0 {
		return store, nil
	}

	var raw map[string]accountRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewStore(), fmt.Errorf("%w: %v", ErrMalformedStore, err)
	}

	for username, record := range raw {
		account := NewAccount(username, record.Password, record.Age, record.Balance)
		account.ledger.Append(record.Expenses...)
		store.accounts[username] = account
	}
	return store, nil
}

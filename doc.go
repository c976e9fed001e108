// Package expenses tracks per-user financial transactions against a running
// balance, persisting every account in a single durable JSON file. It is
// designed to be local-first and auditable: the store file is plain UTF-8
// text that round-trips through the codec without type ambiguity or silent
// data loss.
//
// The model is deliberately small. A Transaction is a dated, signed amount
// with a free-text description. A Ledger is the collection of transactions
// belonging to one account. A Profile carries the user's identity and its
// derived balance, and an Account composes a credential, a Profile and a
// Ledger. The Store owns every Account and is the unit of persistence.
//
// The one invariant that matters: after any completed mutation, a profile's
// balance equals its initial balance plus the sum of all recorded amounts.
// Account.AddTransaction is the only mutation path, and it applies both
// updates in the same operation.
package expenses

package expenses

import "testing"

// equalStores reports structural equality on username, password, age,
// balance and the transaction records of every account.
func equalStores(t *testing.T, got, want *Store) bool {
	t.Helper()
	if got.Len() != want.Len() {
		t.Logf("store has %d accounts, want %d", got.Len(), want.Len())
		return false
	}
	for wantAccount := range want.Accounts() {
		username := wantAccount.Profile().Username()
		gotAccount := got.Account(username)
		if gotAccount == nil {
			t.Logf("account %q is missing", username)
			return false
		}
		if gotAccount.password != wantAccount.password ||
			gotAccount.Profile().Age() != wantAccount.Profile().Age() ||
			!gotAccount.Profile().Balance().Equal(wantAccount.Profile().Balance()) {
			t.Logf("account %q differs", username)
			return false
		}
		if gotAccount.Ledger().Len() != wantAccount.Ledger().Len() {
			t.Logf("account %q has %d records, want %d", username,
				gotAccount.Ledger().Len(), wantAccount.Ledger().Len())
			return false
		}
		gotTxs := make([]Transaction, 0, gotAccount.Ledger().Len())
		for _, tx := range gotAccount.Ledger().Transactions() {
			gotTxs = append(gotTxs, tx)
		}
		for i, wantTx := range wantAccount.Ledger().Transactions() {
			if !gotTxs[i].Equal(wantTx) {
				t.Logf("account %q record %d = %v, want %v", username, i, gotTxs[i], wantTx)
				return false
			}
		}
	}
	return true
}

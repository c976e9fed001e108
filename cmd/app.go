// Package cmd implements the CLI application to manage the expense store.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Environment variables honored by every command; a .env file next to the
// binary is loaded by the main package.
const (
	EnvStoreFile = "MEX_STORE_FILE"
	EnvCurrency  = "MEX_CURRENCY"
)

var storeFile = flag.String("store-file", defaultStoreFile(), "Path to the store file holding every account (JSON format)")

func defaultStoreFile() string {
	if path := os.Getenv(EnvStoreFile); path != "" {
		return path
	}
	return "users.json"
}

// Currency returns the display currency code for amounts.
func Currency() string {
	if cur := os.Getenv(EnvCurrency); cur != "" {
		return cur
	}
	return "INR"
}

// Commands lists the subcommands to register.
// A main package will call Register() on each, and Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&signupCmd{},
	&expenseCmd{},
	&creditCmd{},
	&historyCmd{},
	&summaryCmd{},
	&profileCmd{},
	&fmtCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// LoadStore loads the store file, degrading to an empty store with a warning
// when the file is present but corrupted.
func LoadStore() (*expenses.Store, error) {
	store, err := expenses.LoadStore(*storeFile)
	if errors.Is(err, expenses.ErrMalformedStore) {
		log.Println("warning, store file is corrupted, starting with an empty store:", err)
		return store, nil
	}
	return store, err
}

// SaveStore rewrites the whole store file from the in-memory store.
func SaveStore(store *expenses.Store) error {
	return expenses.SaveStore(*storeFile, store)
}

// userFlags holds the credential flags shared by every account-scoped command.
type userFlags struct {
	username string
	password string
}

func (u *userFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&u.username, "u", "", "Username of the account.")
	f.StringVar(&u.password, "p", "", "Password of the account.")
}

// login loads the store and authenticates the account named by the flags.
func (u *userFlags) login() (*expenses.Store, *expenses.Account, error) {
	if u.username == "" || u.password == "" {
		return nil, nil, fmt.Errorf("flags -u and -p are required")
	}
	store, err := LoadStore()
	if err != nil {
		return nil, nil, err
	}
	account, err := store.Authenticate(u.username, u.password)
	if err != nil {
		return nil, nil, err
	}
	return store, account, nil
}

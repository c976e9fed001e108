package agent

import (
	"context"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewCoach creates the budget coach expert bound to one authenticated
// account. It never sees the credential, only the profile and the ledger.
func NewCoach(account *expenses.Account, currency string) *Expert {
	library := NewLibrary(
		&profileFunc{account: account, currency: currency},
		&transactionsFunc{account: account, currency: currency},
		&summaryFunc{account: account, currency: currency},
	)
	return &Expert{
		Name:      "Coach",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: library.Declarations()},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal budget coach. The user tracks expenses and
			credits in a local ledger, and you can read it through the Tools:
			the profile (age and current balance), the full transaction list,
			and a summary of the balance over time with totals per
			description.

			Always check the ledger before answering questions about the
			user's money. Negative amounts are expenses, positive amounts are
			credits. Be concrete: quote dates, descriptions and amounts from
			the ledger, and keep advice short and actionable.
		`}}},
		},
		Library: library,
	}
}

type profileFunc struct {
	account  *expenses.Account
	currency string
}

func (f *profileFunc) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "profile",
		Description: "The user's profile: username, age and current balance.",
	}
}

func (f *profileFunc) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: "profile",
		Response: map[string]any{
			"markdown": renderer.Profile(f.account.Profile(), f.currency),
		},
	}
}

type transactionsFunc struct {
	account  *expenses.Account
	currency string
}

func (f *transactionsFunc) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "transactions",
		Description: "Every recorded transaction, most recent first, as a markdown table.",
	}
}

func (f *transactionsFunc) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: "transactions",
		Response: map[string]any{
			"markdown": renderer.Transactions(f.account.Ledger().AllSortedDescending(), f.currency),
		},
	}
}

type summaryFunc struct {
	account  *expenses.Account
	currency string
}

func (f *summaryFunc) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "summary",
		Description: "The balance over time and the totals grouped by description.",
	}
}

func (f *summaryFunc) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: "summary",
		Response: map[string]any{
			"markdown": renderer.Summary(f.account, f.currency),
		},
	}
}

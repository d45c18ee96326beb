package agent

import (
	"context"
	"fmt"

	"github.com/fintra/fintra"
	"github.com/fintra/fintra/docs"
	"github.com/fintra/fintra/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand and manage his personal finances: his incomes, expenses,
			what is left of each income, and the money he lent to or borrowed from people.

			Devise a plan of questions to ask each expert and come up with the best response to
			the user's request. Check the ledger first rather than asking the user for figures
			you can look up.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach creates the expert for general financial guidance, grounded
// with search.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a personal finance coach.
		He knows about budgeting, saving habits, and everyday money decisions,
		and can search for current information like prices or typical costs.
		Ask the Coach whenever you need advice or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal finance coach. You give pragmatic advice about budgeting,
			spending and saving. You leverage Google Search to ground your assertions,
			and you relate what you find to the user's situation.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of the user's ledger. It
// reads the ledger through the given loader on every call, so the expert
// always sees the persisted state.
func NewBookkeeper(load func() (*fintra.Ledger, error)) *Expert {
	lib := ledgerLibrary(load)

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's ledger.
		He can report the balance, the income funds still available, the active debts,
		and find movements by title.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's personal ledger.
				You know how to use the Tools to extract relevant information about the
				user's finances. You are part of a team of experts; yours is everything
				recorded in the ledger. Pardon their approximative language and figure
				out what they meant.

				Use the available tools to get information about
				  - the overall balance
				  - the income funds and what remains of them
				  - the active debts, who owes whom
				  - individual movements, found by title
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// report wraps a markdown producing projection into a Func body.
func report(name string, load func() (*fintra.Ledger, error), render func(*fintra.Ledger, map[string]any) (string, error)) func(context.Context, string, map[string]any) *genai.FunctionResponse {
	return func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
		l, err := load()
		if err != nil {
			fresp.Response["error"] = fmt.Sprintf("could not load ledger: %v", err)
			return fresp
		}
		out, err := render(l, args)
		if err != nil {
			fresp.Response["error"] = err.Error()
			return fresp
		}
		fresp.Response["output"] = out
		return fresp
	}
}

// markdownResponse is the shared response schema of the ledger reports.
var markdownResponse = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown-formatted report.",
}

func ledgerLibrary(load func() (*fintra.Ledger, error)) []Function {
	balance := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Balance",
			Description: "Balance reports the total balance of the ledger: all incomes minus all expenses, plus the outstanding debt totals.",
			Response:    markdownResponse,
		},
		Func: report("Balance", load, func(l *fintra.Ledger, _ map[string]any) (string, error) {
			return renderer.BalanceMarkdown(renderer.NewBalance(l)), nil
		}),
	}

	funds := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Funds",
			Description: `Funds lists the income funds: for each recorded income, how much of it
			is still unspent and available for future expenses.`,
			Response: markdownResponse,
		},
		Func: report("Funds", load, func(l *fintra.Ledger, _ map[string]any) (string, error) {
			return renderer.FundsMarkdown(renderer.NewFunds(l)), nil
		}),
	}

	debts := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Debts",
			Description: `Debts lists the active debts: who owes money to the user and whom the
			user owes, with the original and remaining amounts.`,
			Response: markdownResponse,
		},
		Func: report("Debts", load, func(l *fintra.Ledger, _ map[string]any) (string, error) {
			return renderer.DebtsMarkdown(renderer.NewDebts(l)), nil
		}),
	}

	movements := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Movements",
			Description: "Movements lists the ledger movements whose title contains the given text, most recent first.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title": {
						Type:        genai.TypeString,
						Description: "Text to look for in movement titles. Empty matches everything.",
					},
					"since": {
						Type: genai.TypeString,
						Description: `Only movements on or after this date. All movements by default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + docTopic("dates"),
					},
				},
			},
			Response: markdownResponse,
		},
		Func: report("Movements", load, func(l *fintra.Ledger, args map[string]any) (string, error) {
			title, _ := args["title"].(string)
			found := l.Search(title, l.Amount(0))
			if sdate, ok := args["since"].(string); ok && sdate != "" {
				since, err := fintra.ParseDate(sdate)
				if err != nil {
					return "", fmt.Errorf("argument 'since' must be a valid date, got %q: %w", sdate, err)
				}
				kept := found[:0]
				for _, m := range found {
					if !m.Date.Before(since) {
						kept = append(kept, m)
					}
				}
				found = kept
			}
			return renderer.StatementMarkdown(l, found), nil
		}),
	}

	return []Function{balance, funds, debts, movements}
}

// docTopic exposes the embedded documentation to the experts, e.g. for
// explaining date formats in tool descriptions.
func docTopic(topic string) string { return must(docs.GetTopic(topic)) }

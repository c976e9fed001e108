package agent

import (
	"context"
	"fmt"
	"sort"

	"google.golang.org/genai"
)

// Function is one tool an expert can call: a declaration for the model and
// the Go code that serves it.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// Library indexes an expert's tools by their declared name.
type Library map[string]Function

// NewLibrary builds the dispatch table for the given tools.
func NewLibrary(functions ...Function) Library {
	lib := make(Library, len(functions))
	for _, f := range functions {
		lib[f.Declaration().Name] = f
	}
	return lib
}

// Declarations returns the declarations to advertise to the model, in name
// order so the tool list is deterministic.
func (l Library) Declarations() []*genai.FunctionDeclaration {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)

	declarations := make([]*genai.FunctionDeclaration, 0, len(l))
	for _, name := range names {
		declarations = append(declarations, l[name].Declaration())
	}
	return declarations
}

// Dispatch serves one function call. A call to an unknown name is answered
// with an error response, never dropped: the model always gets something to
// continue the conversation with.
func (l Library) Dispatch(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
	f, ok := l[call.Name]
	if !ok {
		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"error": fmt.Sprintf("unknown function %q", call.Name),
			},
		}
	}
	return f.Call(ctx, call.ID, call.Args)
}

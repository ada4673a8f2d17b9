package constructs

import "github.com/cwbudde/go-webidl/internal/ast"

// ArgumentRef pairs an Argument found by Container.FindArgument (or the
// parser's name-resolution search) with the Construct whose argument list
// it came from, since Argument itself carries no parent link (spec.md §3
// models it as a production, not a Construct).
type ArgumentRef struct {
	Argument *ast.Argument
	Owner    Construct
}

func (r *ArgumentRef) Name() string   { return r.Argument.Name() }
func (r *ArgumentRef) String() string { return r.Argument.String() }

package constructs

import "github.com/cwbudde/go-webidl/internal/ast"

// Constructor is synthesized from a `Constructor` or `NamedConstructor`
// extended attribute on an interface, and lifted into that interface's
// member list so FindMethod/FindMethods see it alongside regular operations
// (spec.md §4.3). It owns no tokens of its own — the text that produced it
// already appears, verbatim, inside the interface's ExtendedAttributeList —
// so String() contributes nothing to the interface body's reconstruction.
type Constructor struct {
	Base
	Args *ast.ArgumentList
}

func (c *Constructor) Arguments() *ast.ArgumentList { return c.Args }
func (c *Constructor) String() string               { return "" }

// liftConstructors scans an interface's extended-attribute list for
// Constructor/NamedConstructor entries and returns the synthesized
// Constructor members, in the order the attributes appeared.
func liftConstructors(list *ExtendedAttributeList, interfaceName string) []Construct {
	if list == nil {
		return nil
	}
	var out []Construct
	for _, attr := range list.Attributes {
		switch a := attr.(type) {
		case *ExtendedAttributeArgList:
			if a.Ident.Name() != "Constructor" {
				continue
			}
			c := &Constructor{Args: a.Args}
			c.Kind = "constructor"
			c.NameText = interfaceName
			out = append(out, c)
		case *ExtendedAttributeNoArgs:
			if a.Ident.Name() != "Constructor" {
				continue
			}
			c := &Constructor{Args: &ast.ArgumentList{}}
			c.Kind = "constructor"
			c.NameText = interfaceName
			out = append(out, c)
		case *ExtendedAttributeNamedArgList:
			if a.NameText != "NamedConstructor" {
				continue
			}
			c := &Constructor{Args: a.Args}
			c.Kind = "constructor"
			c.NameText = a.ValueIdent.Name()
			out = append(out, c)
		}
	}
	return out
}

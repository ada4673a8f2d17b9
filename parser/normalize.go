package parser

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/constructs"
	"github.com/cwbudde/go-webidl/internal/lexer"
)

// splitNameAndArgs splits text into a bare method name and its raw
// "(...)" argument-list text (without the parens), or returns ok=false if
// text carries no parenthesized tail at all.
func splitNameAndArgs(text string) (name, argsText string, ok bool) {
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return "", "", false
	}
	return strings.TrimSpace(text[:open]), text[open+1 : len(text)-1], true
}

// argumentNamesFromText parses text as a WebIDL ArgumentList if possible,
// returning its canonical-and-shortened name variants (spec.md §4.4,
// "Argument-name variants"). If text does not parse as an ArgumentList
// (e.g. it is already a bare comma-separated name list), the names are
// taken verbatim and a single variant is returned.
func argumentNamesFromText(argsText string) []string {
	trimmed := strings.TrimSpace(argsText)
	if trimmed == "" {
		return []string{""}
	}
	t := lexer.New(trimmed)
	al := ast.NewArgumentList(t, nil)
	if !t.HasTokens() && len(al.Arguments) > 0 {
		return al.ArgumentNames()
	}
	// Not a well-formed ArgumentList: treat as a bare comma-separated name
	// list, one variant.
	parts := strings.Split(trimmed, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return []string{strings.Join(parts, ", ")}
}

// NormalizedMethodName implements spec.md §4.4's normalized_method_name:
// parse text as Name(arg-list), resolve the real method (optionally
// scoped to a named interface/mixin/namespace), and return its canonical
// "Name(args)" form; synthesize one from the parsed text if no match is
// found.
func (p *Parser) NormalizedMethodName(text string, interfaceName string) string {
	variants := p.NormalizedMethodNames(text, interfaceName)
	if len(variants) == 0 {
		return text
	}
	return variants[0]
}

// NormalizedMethodNames returns every argument-name variant of the
// resolved method (spec.md §4.4, "normalized_method_names returns all
// variants"), most-specific first.
func (p *Parser) NormalizedMethodNames(text string, interfaceName string) []string {
	name, argsText, hasParens := splitNameAndArgs(text)
	if !hasParens {
		name = strings.TrimSpace(text)
		argsText = ""
	}

	var scope constructs.Container
	if interfaceName != "" {
		scope, _ = p.Get(interfaceName).(constructs.Container)
	}

	variants := argumentNamesFromText(argsText)
	withName := func(vs []string) []string {
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = fmt.Sprintf("%s(%s)", name, v)
		}
		return out
	}

	for _, variant := range variants {
		argNames := splitVariant(variant)
		if method := p.findMethod(scope, name, argNames); method != nil {
			if ha, ok := method.(constructs.HasArguments); ok {
				return withName(ha.Arguments().ArgumentNames())
			}
		}
	}

	// No variant positionally matched an existing method (e.g. the caller
	// passed "()" for a method whose arguments are all required). Fall back
	// to a name-only match and report that method's real signature, rather
	// than a synthesized guess (spec.md §8 end-to-end scenario 5).
	if method := p.findMethodByNameOnly(scope, name); method != nil {
		if ha, ok := method.(constructs.HasArguments); ok {
			return withName(ha.Arguments().ArgumentNames())
		}
	}

	return withName(variants)
}

// findMethodByNameOnly returns the first HasArguments construct or member
// named name, ignoring its argument list entirely.
func (p *Parser) findMethodByNameOnly(scope constructs.Container, name string) constructs.Construct {
	if scope != nil {
		if m := scope.FindMember(name); m != nil {
			if _, ok := m.(constructs.HasArguments); ok {
				return m
			}
		}
		return nil
	}
	for _, c := range p.constructs {
		if _, ok := c.(constructs.HasArguments); ok && c.Name() == name {
			return c
		}
		if container, ok := c.(constructs.Container); ok {
			if m := container.FindMember(name); m != nil {
				if _, ok := m.(constructs.HasArguments); ok {
					return m
				}
			}
		}
	}
	return nil
}

func splitVariant(variant string) []string {
	if variant == "" {
		return []string{}
	}
	parts := strings.Split(variant, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// findMethod delegates to scope.FindMethod when a scope was resolved,
// else scans every top-level construct's own members (spec.md §4.4, "If
// interface is supplied... Otherwise scan all top-level constructs").
func (p *Parser) findMethod(scope constructs.Container, name string, argNames []string) constructs.Construct {
	if scope != nil {
		return scope.FindMethod(name, argNames)
	}
	for _, c := range p.constructs {
		if container, ok := c.(constructs.Container); ok {
			if m := container.FindMethod(name, argNames); m != nil {
				return m
			}
		}
		if ha, ok := c.(constructs.HasArguments); ok && c.Name() == name {
			if ha.Arguments().MatchesNames(argNames) {
				return c
			}
		}
	}
	return nil
}

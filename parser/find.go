package parser

import "github.com/cwbudde/go-webidl/internal/constructs"

// findArgumentOn looks up an argument named name directly on c: its own
// argument list if c implements constructs.HasArguments, else (if c is a
// Container) a reverse scan of its members' argument lists.
func findArgumentOn(c constructs.Construct, name string) *constructs.ArgumentRef {
	if ha, ok := c.(constructs.HasArguments); ok {
		if args := ha.Arguments(); args != nil {
			for _, a := range args.Arguments {
				if a.Name() == name {
					return &constructs.ArgumentRef{Argument: a, Owner: c}
				}
			}
		}
	}
	if container, ok := c.(constructs.Container); ok {
		if arg := container.FindArgument(name, true); arg != nil {
			return &constructs.ArgumentRef{Argument: arg, Owner: c}
		}
	}
	return nil
}

// Find implements spec.md §4.4's name resolution: parenthesis-stripping,
// path splitting on "/" or ".", then a construct/member/argument lookup.
// The result is a constructs.Construct, a *constructs.ArgumentRef, or nil.
func (p *Parser) Find(name string) any {
	stripped := stripArgumentParens(name)
	segments := splitPath(stripped)

	if len(segments) == 1 {
		return p.findBareName(segments[0], true)
	}

	c0 := p.findTopLevelNamed(segments[0], true)
	if c0 == nil {
		return nil
	}
	container, ok := c0.(constructs.Container)
	if !ok {
		return nil
	}

	if len(segments) == 3 {
		member := container.FindMember(segments[1])
		if member == nil {
			return nil
		}
		return findArgumentOn(member, segments[2])
	}

	// len(segments) == 2
	if member := container.FindMember(segments[1]); member != nil {
		return member
	}
	return findArgumentOn(c0, segments[1])
}

// FindAll is Find's non-early-terminating counterpart: every construct
// whose bare name matches, scanned in forward declaration order
// (spec.md §4.4, "find_all does the same in forward order without early
// termination"). Path-qualified names have only ever one resolution, so
// FindAll on a path returns at most the single Find result.
func (p *Parser) FindAll(name string) []any {
	stripped := stripArgumentParens(name)
	segments := splitPath(stripped)
	if len(segments) > 1 {
		if r := p.Find(name); r != nil {
			return []any{r}
		}
		return nil
	}

	var out []any
	for _, c := range p.constructs {
		if c.Name() == segments[0] {
			out = append(out, c)
		}
	}
	for _, c := range p.constructs {
		if container, ok := c.(constructs.Container); ok {
			for _, m := range container.FindMembers(segments[0]) {
				out = append(out, m)
			}
		}
	}
	for _, c := range p.constructs {
		if arg := findArgumentOn(c, segments[0]); arg != nil {
			out = append(out, arg)
		}
	}
	return out
}

// findBareName resolves a single, unqualified name against the top-level
// construct list: a direct top-level match, else a member match in any
// construct, else an argument match in any construct (spec.md §4.4,
// "For a bare name..."). reverse controls scan direction; Find always
// passes true (reverse, "first hit wins" meaning most-recently declared).
func (p *Parser) findBareName(name string, reverse bool) any {
	if c := p.findTopLevelNamed(name, reverse); c != nil {
		return c
	}
	for _, c := range p.iterate(reverse) {
		if container, ok := c.(constructs.Container); ok {
			if m := container.FindMember(name); m != nil {
				return m
			}
		}
	}
	for _, c := range p.iterate(reverse) {
		if arg := findArgumentOn(c, name); arg != nil {
			return arg
		}
	}
	return nil
}

func (p *Parser) findTopLevelNamed(name string, reverse bool) constructs.Construct {
	for _, c := range p.iterate(reverse) {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func (p *Parser) iterate(reverse bool) []constructs.Construct {
	if !reverse {
		return p.constructs
	}
	out := make([]constructs.Construct, len(p.constructs))
	for i, c := range p.constructs {
		out[len(out)-1-i] = c
	}
	return out
}

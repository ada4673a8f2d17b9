package parser

import (
	"fmt"

	"github.com/cwbudde/go-webidl/internal/constructs"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// DebugJSON renders the construct tree as JSON for tooling/debugging:
// each node's idl_type, name, complexity, and children, pretty-printed.
// Built incrementally with sjson rather than a hand-rolled struct-plus-
// json.Marshal tree, so adding a field later is a one-line sjson.SetBytes
// call instead of a new tagged struct.
func (p *Parser) DebugJSON() ([]byte, error) {
	doc := []byte(`{"constructs":[]}`)
	var err error
	for i, c := range p.constructs {
		doc, err = appendNodeJSON(doc, fmt.Sprintf("constructs.%d", i), c)
		if err != nil {
			return nil, err
		}
	}
	return pretty.Pretty(doc), nil
}

func appendNodeJSON(doc []byte, path string, c constructs.Construct) ([]byte, error) {
	var err error
	doc, err = sjson.SetBytes(doc, path+".idl_type", c.IdlType())
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, path+".name", c.Name())
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, path+".complexity", constructs.Complexity(c))
	if err != nil {
		return nil, err
	}
	container, ok := c.(constructs.Container)
	if !ok {
		return doc, nil
	}
	doc, err = sjson.SetBytes(doc, path+".members", []any{})
	if err != nil {
		return nil, err
	}
	for i := 0; i < container.Len(); i++ {
		doc, err = appendNodeJSON(doc, fmt.Sprintf("%s.members.%d", path, i), container.MemberAt(i))
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziust-lang/ziust/common"
)

func TestSexpOmitsAbsentChildren(t *testing.T) {
	span := common.SpanDefault()
	let := New(KindLetDecl, span,
		New(KindAttributeList, span),
		nil,
		Leaf(KindIdentifier, "x", span),
		nil,
		Leaf(KindIntegerLiteral, "42", span),
	)
	mod := New(KindModule, span, let)
	assert.Equal(t,
		"(module (let_declaration (attribute_list) (identifier) (integer_literal)))",
		mod.Sexp())
}

func TestChildAndRest(t *testing.T) {
	span := common.SpanDefault()
	n := New(KindTemplateParam, span, Leaf(KindIdentifier, "N", span), Leaf(KindIntegerLiteral, "1", span))
	require.NotNil(t, n.Child(0))
	assert.Equal(t, "N", n.Child(0).Text)
	assert.Nil(t, n.Child(5))
	assert.Nil(t, n.Child(-1))
	assert.Len(t, n.Rest(1), 1)
	assert.Nil(t, n.Rest(2))
}

func TestKindNames(t *testing.T) {
	seen := map[string]Kind{}
	for _, k := range Kinds() {
		name := k.String()
		require.NotEmpty(t, name, "kind %d has no name", k)
		if prev, dup := seen[name]; dup {
			t.Fatalf("kinds %d and %d share the name %q", prev, k, name)
		}
		seen[name] = k

		back, ok := KindByName(name)
		require.True(t, ok)
		assert.Equal(t, k, back)
	}
	assert.Len(t, Kinds(), int(KindCount))
	assert.Equal(t, "Kind(250)", Kind(250).String())
}

func TestInspectPrunes(t *testing.T) {
	span := common.SpanDefault()
	tree := New(KindModule, span,
		New(KindExpressionStmt, span, New(KindAttributeList, span), Leaf(KindBoolLiteral, "true", span)),
		New(KindNullStmt, span, New(KindAttributeList, span)),
	)
	var kinds []Kind
	Inspect(tree, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != KindExpressionStmt
	})
	assert.Equal(t, []Kind{KindModule, KindExpressionStmt, KindNullStmt, KindAttributeList}, kinds)
}

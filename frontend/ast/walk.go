package ast

// Visitor is driven by Walk. Enter is called before a node's children;
// returning false skips them and the matching Exit.
type Visitor interface {
	Enter(n Node) bool
	Exit(n Node)
}

type inspector func(Node) bool

func (f inspector) Enter(n Node) bool { return f(n) }
func (f inspector) Exit(Node)         {}

// Inspect calls f for every node in source order; f returning false
// prunes the subtree.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Walk traverses n depth-first in source order. Nil children are skipped.
func Walk(v Visitor, n Node) {
	if isNil(n) || !v.Enter(n) {
		return
	}
	defer v.Exit(n)

	switch n := n.(type) {
	case *Module:
		walkList(v, n.Statements)

	// declarations
	case *StructDeclaration:
		walkList(v, n.Attributes)
		walkList(v, n.TemplateParameters)
		walkList(v, n.GenericParameters)
		walkList(v, n.Members)
	case *StructMember:
		walkList(v, n.Attributes)
		Walk(v, n.Type)
	case *EnumDeclaration:
		walkList(v, n.Attributes)
		walkList(v, n.TemplateParameters)
		walkList(v, n.GenericParameters)
		Walk(v, n.TagType)
		walkList(v, n.Members)
	case *EnumMember:
		walkList(v, n.Attributes)
		walkList(v, n.Types)
		Walk(v, n.TagValue)
	case *TypeDeclaration:
		walkList(v, n.Attributes)
		walkList(v, n.TemplateParameters)
		walkList(v, n.GenericParameters)
		Walk(v, n.Type)
	case *TraitDeclaration:
		walkList(v, n.Attributes)
		walkList(v, n.TemplateParameters)
		walkList(v, n.Members)
	case *TraitConstMember:
		walkList(v, n.Attributes)
		Walk(v, n.Type)
	case *TraitFnMember:
		walkList(v, n.Attributes)
		walkList(v, n.TemplateParameters)
		walkList(v, n.GenericParameters)
		walkList(v, n.Parameters)
		Walk(v, n.ReturnType)
	case *ImplDeclaration:
		walkList(v, n.Attributes)
		walkList(v, n.TemplateParameters)
		walkList(v, n.GenericParameters)
		Walk(v, n.Trait)
		Walk(v, n.Target)
		walkList(v, n.Members)
	case *ConstDeclaration:
		walkList(v, n.Attributes)
		Walk(v, n.Type)
		Walk(v, n.Value)
	case *FnDeclaration:
		walkList(v, n.Attributes)
		walkList(v, n.TemplateParameters)
		walkList(v, n.GenericParameters)
		walkList(v, n.Parameters)
		Walk(v, n.ReturnType)
		Walk(v, n.Body)
	case *SelfParameter:
	case *NormalParameter:
		Walk(v, n.Type)

	// statements
	case *LetDeclaration:
		walkList(v, n.Attributes)
		Walk(v, n.Type)
		Walk(v, n.Value)
	case *LetElseDeclaration:
		walkList(v, n.Attributes)
		Walk(v, n.Pattern)
		Walk(v, n.Value)
		Walk(v, n.Else)
	case *NullStatement:
		walkList(v, n.Attributes)
	case *DeferrableStatement:
		Walk(v, n.Statement)
	case *DeferStatement:
		walkList(v, n.Attributes)
		Walk(v, n.Statement)
	case *TestStatement:
		walkList(v, n.Attributes)
		walkList(v, n.Statements)
	case *ErrorStatement:
	case *BlockStatement:
		walkList(v, n.Statements)
	case *ExpressionStatement:
		walkList(v, n.Attributes)
		Walk(v, n.Expression)
	case *AssignmentStatement:
		Walk(v, n.Lhs)
		Walk(v, n.Rhs)
	case *ForStatement:
		Walk(v, n.Pattern)
		Walk(v, n.In)
		Walk(v, n.Body)
	case *WhileStatement:
		Walk(v, n.Condition)
		Walk(v, n.Body)

	// attributes and generics
	case *Attribute:
		walkList(v, n.Members)
	case *AttributeMember:
		Walk(v, n.Name)
		Walk(v, n.Argument)
	case *ArgumentGroup:
		walkList(v, n.Arguments)
	case *TemplateParameter:
		walkList(v, n.Candidates)
	case *GenericParameter:
		Walk(v, n.Bound)
	case *GenericArgumentTerminal:
		Walk(v, n.Type)
	case *GenericArgumentTuple:
		walkList(v, n.Arguments)

	// expressions
	case *Literal, *ConstReference:
	case *ParenthesisedExpression:
		walkList(v, n.Expressions)
	case *BuiltinCallExpression:
		Walk(v, n.Arguments)
	case *MacroCallExpression:
		Walk(v, n.Name)
		Walk(v, n.Arguments)
	case *MemberExpression:
		Walk(v, n.Expression)
	case *BlockExpression:
		walkList(v, n.Statements)
		Walk(v, n.Value)
	case *IfExpression:
		Walk(v, n.Condition)
		Walk(v, n.Then)
		walkList(v, n.ElseIfs)
		Walk(v, n.Else)
	case *IfCondition:
		Walk(v, n.Pattern)
		Walk(v, n.Expression)
	case *ElseIf:
		Walk(v, n.Condition)
		Walk(v, n.Then)
	case *LoopExpression:
		walkList(v, n.Statements)
	case *MatchExpression:
		Walk(v, n.Expression)
		walkList(v, n.Arms)
	case *MatchArm:
		Walk(v, n.Pattern)
		Walk(v, n.Guard)
		Walk(v, n.Value)
	case *ReturnExpression:
		Walk(v, n.Value)
	case *BreakExpression:
		Walk(v, n.Value)
	case *ContinueExpression:
	case *AndExpression:
		Walk(v, n.Lhs)
		Walk(v, n.Rhs)
	case *OrExpression:
		Walk(v, n.Lhs)
		Walk(v, n.Rhs)
	case *AsExpression:
		Walk(v, n.Expression)
		Walk(v, n.Type)

	// types
	case *NeverType:
	case *TupleType:
		walkList(v, n.Members)
	case *ReferenceType:
		Walk(v, n.Type)
	case *PointerType:
		Walk(v, n.Type)
	case *ArrayType:
		Walk(v, n.Type)
		Walk(v, n.Length)
	case *SliceType:
		Walk(v, n.Type)
	case *TerminalType:
		Walk(v, n.Name)
		walkList(v, n.TemplateArguments)
		walkList(v, n.GenericArguments)

	// patterns
	case *TerminalPattern:
		Walk(v, n.Name)
		Walk(v, n.Literal)
	case *EnumPattern:
		Walk(v, n.Name)
		walkList(v, n.Elements)
	case *StructPattern:
		Walk(v, n.Name)
		walkList(v, n.Fields)
	case *StructPatternField:
		Walk(v, n.Pattern)
	}
}

func walkList[T Node](v Visitor, list []T) {
	for _, n := range list {
		Walk(v, n)
	}
}

// isNil catches both untyped nil and typed nil pointers stored in an interface.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch n := n.(type) {
	case *Module:
		return n == nil
	case *ConstReference:
		return n == nil
	case *ArgumentGroup:
		return n == nil
	case *BlockExpression:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *IfCondition:
		return n == nil
	case *Literal:
		return n == nil
	}
	return false
}

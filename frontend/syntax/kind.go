package syntax

import "fmt"

// Kind is the production a Node was built from. The set is closed:
// KindCount bounds it and every value below KindCount is a real production.
type Kind uint8

const (
	KindModule Kind = iota
	KindStatementList
	KindAttributeList
	KindAttribute
	KindAttributeMember
	KindArgumentGroup

	// leaves and modifiers
	KindIdentifier
	KindLabel
	KindLabelList
	KindConstReference
	KindVisibility
	KindMutability
	KindBorrow
	KindOptionalMarker
	KindConstModifier
	KindWildcard

	// declarations
	KindStructDecl
	KindStructMemberList
	KindStructMember
	KindEnumDecl
	KindEnumMemberList
	KindEnumMember
	KindTypeList
	KindTypeDecl
	KindTraitDecl
	KindTraitMemberList
	KindTraitConst
	KindTraitFn
	KindImplDecl
	KindImplMemberList
	KindConstDecl
	KindFnDecl
	KindParamList
	KindSelfParam
	KindParam
	KindTemplateParamList
	KindTemplateParam
	KindGenericParamList
	KindGenericParam
	KindGenericTuple
	KindGenericArgumentList
	KindTemplateArgumentList

	// statements
	KindLetDecl
	KindLetElseDecl
	KindNullStmt
	KindDeferStmt
	KindTestStmt
	KindExpressionStmt
	KindAssignmentStmt
	KindBlockStmt
	KindForStmt
	KindWhileStmt

	// expressions
	KindIntegerLiteral
	KindFloatLiteral
	KindStringLiteral
	KindCharLiteral
	KindBoolLiteral
	KindParenthesisedExpr
	KindBuiltinCall
	KindMacroCall
	KindMemberExpr
	KindBlockExpr
	KindIfExpr
	KindIfCondition
	KindElseIfList
	KindElseIf
	KindLoopExpr
	KindMatchExpr
	KindMatchArmList
	KindMatchArm
	KindReturnExpr
	KindBreakExpr
	KindContinueExpr
	KindAndExpr
	KindOrExpr
	KindAsExpr

	// types
	KindNeverType
	KindTupleType
	KindReferenceType
	KindPointerType
	KindArrayType
	KindSliceType
	KindTerminalType

	// patterns
	KindTerminalPattern
	KindEnumPattern
	KindStructPattern
	KindStructPatternField

	KindCount
)

var kindNames = [KindCount]string{
	KindModule:               "module",
	KindStatementList:        "statement_list",
	KindAttributeList:        "attribute_list",
	KindAttribute:            "attribute",
	KindAttributeMember:      "attribute_member",
	KindArgumentGroup:        "argument_group",
	KindIdentifier:           "identifier",
	KindLabel:                "label",
	KindLabelList:            "label_list",
	KindConstReference:       "const_reference",
	KindVisibility:           "visibility",
	KindMutability:           "mutability",
	KindBorrow:               "borrow",
	KindOptionalMarker:       "optional_marker",
	KindConstModifier:        "const_modifier",
	KindWildcard:             "wildcard",
	KindStructDecl:           "struct_declaration",
	KindStructMemberList:     "struct_member_list",
	KindStructMember:         "struct_member",
	KindEnumDecl:             "enum_declaration",
	KindEnumMemberList:       "enum_member_list",
	KindEnumMember:           "enum_member",
	KindTypeList:             "type_list",
	KindTypeDecl:             "type_declaration",
	KindTraitDecl:            "trait_declaration",
	KindTraitMemberList:      "trait_member_list",
	KindTraitConst:           "trait_const",
	KindTraitFn:              "trait_fn",
	KindImplDecl:             "impl_declaration",
	KindImplMemberList:       "impl_member_list",
	KindConstDecl:            "const_declaration",
	KindFnDecl:               "fn_declaration",
	KindParamList:            "parameter_list",
	KindSelfParam:            "self_parameter",
	KindParam:                "parameter",
	KindTemplateParamList:    "template_parameter_list",
	KindTemplateParam:        "template_parameter",
	KindGenericParamList:     "generic_parameter_list",
	KindGenericParam:         "generic_parameter",
	KindGenericTuple:         "generic_tuple",
	KindGenericArgumentList:  "generic_argument_list",
	KindTemplateArgumentList: "template_argument_list",
	KindLetDecl:              "let_declaration",
	KindLetElseDecl:          "let_else_declaration",
	KindNullStmt:             "null_statement",
	KindDeferStmt:            "defer_statement",
	KindTestStmt:             "test_statement",
	KindExpressionStmt:       "expression_statement",
	KindAssignmentStmt:       "assignment_statement",
	KindBlockStmt:            "block_statement",
	KindForStmt:              "for_statement",
	KindWhileStmt:            "while_statement",
	KindIntegerLiteral:       "integer_literal",
	KindFloatLiteral:         "float_literal",
	KindStringLiteral:        "string_literal",
	KindCharLiteral:          "char_literal",
	KindBoolLiteral:          "bool_literal",
	KindParenthesisedExpr:    "parenthesised_expression",
	KindBuiltinCall:          "builtin_call_expression",
	KindMacroCall:            "macro_call_expression",
	KindMemberExpr:           "member_expression",
	KindBlockExpr:            "block_expression",
	KindIfExpr:               "if_expression",
	KindIfCondition:          "if_condition",
	KindElseIfList:           "else_if_list",
	KindElseIf:               "else_if",
	KindLoopExpr:             "loop_expression",
	KindMatchExpr:            "match_expression",
	KindMatchArmList:         "match_arm_list",
	KindMatchArm:             "match_arm",
	KindReturnExpr:           "return_expression",
	KindBreakExpr:            "break_expression",
	KindContinueExpr:         "continue_expression",
	KindAndExpr:              "and_expression",
	KindOrExpr:               "or_expression",
	KindAsExpr:               "as_expression",
	KindNeverType:            "never_type",
	KindTupleType:            "tuple_type",
	KindReferenceType:        "reference_type",
	KindPointerType:          "pointer_type",
	KindArrayType:            "array_type",
	KindSliceType:            "slice_type",
	KindTerminalType:         "terminal_type",
	KindTerminalPattern:      "terminal_pattern",
	KindEnumPattern:          "enum_pattern",
	KindStructPattern:        "struct_pattern",
	KindStructPatternField:   "struct_pattern_field",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every production in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, KindCount)
	for k := range KindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindByName looks a kind up by its s-expression name.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsLeaf reports whether nodes of kind k carry text instead of children.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindIdentifier, KindLabel, KindVisibility, KindMutability, KindBorrow,
		KindOptionalMarker, KindConstModifier, KindWildcard, KindNeverType,
		KindIntegerLiteral, KindFloatLiteral, KindStringLiteral, KindCharLiteral, KindBoolLiteral:
		return true
	}
	return false
}

func (k Kind) IsType() bool {
	return k >= KindNeverType && k <= KindTerminalType
}

func (k Kind) IsPattern() bool {
	return k >= KindTerminalPattern && k <= KindStructPattern
}

func (k Kind) IsLiteral() bool {
	return k >= KindIntegerLiteral && k <= KindBoolLiteral
}

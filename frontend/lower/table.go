package lower

import "github.com/ziust-lang/ziust/frontend/syntax"

type production func(l *lowerer, n *syntax.Node) any

var productions [syntax.KindCount]production

func init() {
	// The literal is assigned to a [syntax.KindCount] array, so it only
	// compiles while its last key is the last kind.
	productions = [...]production{
		syntax.KindModule:          lowerModule,
		syntax.KindStatementList:   lowerStatementList,
		syntax.KindAttributeList:   lowerAttributeList,
		syntax.KindAttribute:       lowerAttribute,
		syntax.KindAttributeMember: lowerAttributeMember,
		syntax.KindArgumentGroup:   lowerArgumentGroup,
		syntax.KindIdentifier:      lowerIdentifier,
		syntax.KindLabel:           lowerLabel,
		syntax.KindLabelList:       lowerLabelList,
		syntax.KindConstReference:  lowerConstReference,
		syntax.KindVisibility:      lowerMarker,
		syntax.KindMutability:      lowerMarker,
		syntax.KindBorrow:          lowerMarker,
		syntax.KindOptionalMarker:  lowerMarker,
		syntax.KindConstModifier:   lowerMarker,
		syntax.KindWildcard:        lowerMarker,

		syntax.KindStructDecl:       lowerStruct,
		syntax.KindStructMemberList: lowerStructMemberList,
		syntax.KindStructMember:     lowerStructMember,
		syntax.KindEnumDecl:         lowerEnum,
		syntax.KindEnumMemberList:   lowerEnumMemberList,
		syntax.KindEnumMember:       lowerEnumMember,
		syntax.KindTypeList:         lowerTypeList,
		syntax.KindTypeDecl:         lowerTypeDecl,
		syntax.KindTraitDecl:        lowerTrait,
		syntax.KindTraitMemberList:  lowerTraitMemberList,
		syntax.KindTraitConst:       lowerTraitConst,
		syntax.KindTraitFn:          lowerTraitFn,
		syntax.KindImplDecl:         lowerImpl,
		syntax.KindImplMemberList:   lowerImplMemberList,
		syntax.KindConstDecl:        lowerConst,
		syntax.KindFnDecl:           lowerFn,
		syntax.KindParamList:        lowerParamList,
		syntax.KindSelfParam:        lowerSelfParam,
		syntax.KindParam:            lowerParam,

		syntax.KindTemplateParamList:    lowerTemplateParamList,
		syntax.KindTemplateParam:        lowerTemplateParam,
		syntax.KindGenericParamList:     lowerGenericParamList,
		syntax.KindGenericParam:         lowerGenericParam,
		syntax.KindGenericTuple:         lowerGenericTuple,
		syntax.KindGenericArgumentList:  lowerGenericArgumentList,
		syntax.KindTemplateArgumentList: lowerTemplateArgumentList,

		syntax.KindLetDecl:        lowerLet,
		syntax.KindLetElseDecl:    lowerLetElse,
		syntax.KindNullStmt:       lowerNull,
		syntax.KindDeferStmt:      lowerDefer,
		syntax.KindTestStmt:       lowerTest,
		syntax.KindExpressionStmt: lowerExpressionStmt,
		syntax.KindAssignmentStmt: lowerAssignment,
		syntax.KindBlockStmt:      lowerBlockStmt,
		syntax.KindForStmt:        lowerFor,
		syntax.KindWhileStmt:      lowerWhile,

		syntax.KindIntegerLiteral: lowerInteger,
		syntax.KindFloatLiteral:   lowerFloat,
		syntax.KindStringLiteral:  lowerString,
		syntax.KindCharLiteral:    lowerChar,
		syntax.KindBoolLiteral:    lowerBool,

		syntax.KindParenthesisedExpr: lowerParenthesised,
		syntax.KindBuiltinCall:       lowerBuiltinCall,
		syntax.KindMacroCall:         lowerMacroCall,
		syntax.KindMemberExpr:        lowerMember,
		syntax.KindBlockExpr:         lowerBlockExpr,
		syntax.KindIfExpr:            lowerIf,
		syntax.KindIfCondition:       lowerIfCondition,
		syntax.KindElseIfList:        lowerElseIfList,
		syntax.KindElseIf:            lowerElseIf,
		syntax.KindLoopExpr:          lowerLoop,
		syntax.KindMatchExpr:         lowerMatch,
		syntax.KindMatchArmList:      lowerMatchArmList,
		syntax.KindMatchArm:          lowerMatchArm,
		syntax.KindReturnExpr:        lowerReturn,
		syntax.KindBreakExpr:         lowerBreak,
		syntax.KindContinueExpr:      lowerContinue,
		syntax.KindAndExpr:           lowerAnd,
		syntax.KindOrExpr:            lowerOr,
		syntax.KindAsExpr:            lowerAs,

		syntax.KindNeverType:     lowerNeverType,
		syntax.KindTupleType:     lowerTupleType,
		syntax.KindReferenceType: lowerReferenceType,
		syntax.KindPointerType:   lowerPointerType,
		syntax.KindArrayType:     lowerArrayType,
		syntax.KindSliceType:     lowerSliceType,
		syntax.KindTerminalType:  lowerTerminalType,

		syntax.KindTerminalPattern:    lowerTerminalPattern,
		syntax.KindEnumPattern:        lowerEnumPattern,
		syntax.KindStructPattern:      lowerStructPattern,
		syntax.KindStructPatternField: lowerStructPatternField,
	}
}

// Package asttext implements the canonical AST text format: a deterministic,
// tab-indented, one-word-per-line encoding of a tree that the back-end reads
// and that [Read] turns back into a structurally equal tree.
//
// A file starts with a fixed four-line signature, followed by one block per
// top-level item:
//
//	file signature:
//	name: ast txt format
//	autor: Maksim Sebelev
//	version: 1.0
//	DEF_FUNC
//	{
//		TYPE: int
//		NAME: main
//		ARGS
//		{
//		}
//		BODY
//		{
//			RET
//			{
//				NUM: int 0
//			}
//		}
//	}
//
// Sequence nodes are never written; every list is written as its items at the
// same nesting level.
package asttext

import "errors"

// Signature is the exact header every AST text file starts with.
var Signature = [...]string{
	"file signature:",
	"name: ast txt format",
	"autor: Maksim Sebelev",
	"version: 1.0",
}

// Vocabulary of the body.
const (
	wordOpen          = "{"
	wordClose         = "}"
	wordDefFunc       = "DEF_FUNC"
	wordArgs          = "ARGS"
	wordBody          = "BODY"
	wordCondition     = "CONDITION"
	wordCycle         = "CYCLE"
	wordCycleCond     = "CYCLE_CONDITION"
	wordDefVar        = "DEF_VAR"
	wordAssign        = "ASGN"
	wordOp            = "OP"
	wordCall          = "CALL_FUNC"
	wordCallArgs      = "CALL_FUNC_ARGS"
	wordReturn        = "RET"
	wordNum           = "NUM"
	wordName          = "NAME"
	wordType          = "TYPE"
	condIf            = "if"
	condElseIf        = "else_if"
	condElse          = "else"
	cycleWhile        = "while"
	cycleFor          = "for"
	tagSeparator      = ": "
	numFieldSeparator = " "
)

// vocabulary lists every body keyword; it feeds "did you mean" hints.
var vocabulary = []string{
	wordOpen, wordClose, wordDefFunc, wordArgs, wordBody, wordCondition,
	wordCycle, wordCycleCond, wordDefVar, wordAssign, wordOp, wordCall,
	wordCallArgs, wordReturn, wordNum, wordName, wordType,
}

// ErrMalformedTree is returned by [Write] for a tree that the grammar could
// not have produced.
var ErrMalformedTree = errors.New("malformed tree")

func tagged(key, value string) string { return key + tagSeparator + value }

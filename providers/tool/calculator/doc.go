// Package calculator provides a locally-executed arithmetic tool. It supports
// the four basic operations over floating-point operands and formats results
// as plain text.
//
// [NewTool] returns the ready-to-register definition; the underlying
// computation is also exported as [Calc] for direct invocation.
package calculator

package calculator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tripsmith-ai/tripsmith/providers/tool"
)

// Input holds the two operands and the operation applied by [Calc].
type Input struct {
	A  float64 `json:"a" jsonschema_description:"First operand"`
	B  float64 `json:"b" jsonschema_description:"Second operand"`
	Op string  `json:"op" jsonschema:"enum=add,enum=sub,enum=mul,enum=div" jsonschema_description:"Arithmetic operation to perform"`
}

// NewTool returns the calculator tool. The result is formatted as plain text
// so it reads naturally in the conversation transcript.
func NewTool() (tool.Definition, error) {
	return tool.New("calculator", Calc,
		tool.WithDescription("Performs basic arithmetic: add, sub, mul, div. Useful for budget totals and currency math."),
	)
}

// Calc applies req.Op to the operands. Division by zero and unrecognized
// operations return errors rather than IEEE infinities or silent zeros.
func Calc(ctx context.Context, req Input) (string, error) {
	var result float64
	switch req.Op {
	case "add":
		result = req.A + req.B
	case "sub":
		result = req.A - req.B
	case "mul":
		result = req.A * req.B
	case "div":
		if req.B == 0 {
			return "", fmt.Errorf("division by zero")
		}
		result = req.A / req.B
	default:
		return "", fmt.Errorf("unsupported operation: %q", req.Op)
	}
	return strconv.FormatFloat(result, 'f', -1, 64), nil
}

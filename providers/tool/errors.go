package tool

import "errors"

var (
	// ErrUnknownTool is returned when a lookup names a tool that was never
	// registered. The orchestration loop treats this as fatal: the model was
	// advertised a tool set that does not match the registry, which is a
	// configuration bug rather than a model mistake.
	ErrUnknownTool = errors.New("tripsmith: unknown tool")

	// ErrDuplicateTool is returned when two tools are registered under the
	// same name. Registration happens at agent construction, so this fails
	// fast before any session starts.
	ErrDuplicateTool = errors.New("tripsmith: duplicate tool")

	// ErrBadArguments is returned when a tool call's argument payload cannot
	// be decoded or does not satisfy the tool's parameter schema. The
	// executor reports it back to the model as tool-result text so the model
	// can correct itself on the next round.
	ErrBadArguments = errors.New("tripsmith: invalid tool arguments")
)

package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// SaveFile writes a transcript to path as indented JSON, replacing any
// previous content. Use it together with [LoadFile] to resume conversations
// across process restarts.
func SaveFile(path string, messages []ai.Message) error {
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// LoadFile reads a transcript previously written by [SaveFile]. A missing
// file is not an error: it yields an empty transcript so first runs and
// resumed runs share one code path.
func LoadFile(path string) ([]ai.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []ai.Message{}, nil
		}
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var messages []ai.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return messages, nil
}

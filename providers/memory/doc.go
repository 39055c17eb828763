// Package memory defines the Store interface for conversation transcripts.
// Implementations are responsible for storing and retrieving [ai.Message]
// values across a session. The interface is intentionally minimal: it covers
// exactly the operations the orchestration loop needs for turn-based
// conversations, and every method returns an error so persistent
// implementations can surface failures instead of swallowing them.
//
// The bundled reference implementation lives in the sibling package
// [github.com/tripsmith-ai/tripsmith/providers/memory/inmemory].
// [SaveFile] and [LoadFile] persist a transcript as a JSON file for
// resumable CLI conversations.
package memory

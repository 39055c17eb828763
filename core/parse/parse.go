package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/tripsmith-ai/tripsmith/internal/schema"
)

// As parses model-produced text into the target type T. Primitive targets
// (string, bool, numeric) are converted directly; everything else is decoded
// as JSON. Malformed JSON gets one automatic repair pass (markdown fences,
// single quotes, trailing commas) before the decode is retried.
func As[T any](content string) (T, error) {
	var result T

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(strings.TrimSpace(content))
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		data, err := RecoverJSON(content)
		if err != nil {
			return result, err
		}
		if err := json.Unmarshal(data, &result); err != nil {
			return result, fmt.Errorf("failed to unmarshal content as %T: %w", result, err)
		}
		return result, nil
	}
}

// Outcome is the two-sided result of parsing a final answer: either the
// decoded, schema-valid record, or the raw text for the caller to handle.
// Raw always carries the original content, so nothing is lost when the
// model drifted from the contract.
type Outcome[T any] struct {
	Data  *T
	Raw   string
	Valid bool
}

// Structured parses content into T and validates it against sch. It never
// fails: any decode or validation problem yields the raw-text variant. A nil
// schema skips validation and relies on the decode alone.
func Structured[T any](content string, sch *schema.Generated) Outcome[T] {
	out := Outcome[T]{Raw: content}

	// A plain-text target is always satisfied by the content itself.
	if reflect.TypeFor[T]().Kind() == reflect.String {
		var value T
		reflect.ValueOf(&value).Elem().SetString(content)
		out.Data = &value
		out.Valid = true
		return out
	}

	data, err := RecoverJSON(content)
	if err != nil {
		return out
	}
	if sch != nil {
		if err := sch.ValidateLooseJSON(data); err != nil {
			return out
		}
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return out
	}
	out.Data = &value
	out.Valid = true
	return out
}

// RecoverJSON returns content as JSON bytes, repairing it first when it is
// not already valid JSON. Models routinely wrap payloads in code fences or
// use relaxed syntax; jsonrepair normalizes the common cases.
func RecoverJSON(content string) ([]byte, error) {
	data := []byte(content)
	if json.Valid(data) {
		return data, nil
	}
	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return nil, fmt.Errorf("failed to repair JSON: %w", err)
	}
	return []byte(repaired), nil
}

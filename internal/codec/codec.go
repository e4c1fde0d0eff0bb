// Package codec serializes character drafts to the versioned JSON export
// format and decodes them back with ordered structural checks. Decode
// failures are a tagged result, not an error; a bad import file is an
// expected condition the caller surfaces to the user.
package codec

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the export format version this build writes. Decode
// accepts any version up to and including it.
const CurrentVersion = 1

// Decode failure messages, ordered from most to least fundamental.
const (
	msgInvalidJSON    = "Invalid JSON format."
	msgNotAnObject    = "Expected a JSON object."
	msgBadVersion     = "Missing or invalid version field."
	msgBadCharacter   = "Missing or invalid character field."
	msgNameNotString  = "Character name must be a string."
	msgLevelNotNumber = "Character level must be a number."
)

// Envelope is the export file wrapper.
type Envelope struct {
	Version   int             `json:"version"`
	Character json.RawMessage `json:"character"`
}

// DecodeResult is the tagged outcome of a decode attempt. Exactly one of
// Character or Error is meaningful, selected by Success.
type DecodeResult struct {
	Success   bool
	Character json.RawMessage
	Error     string
}

// Serialize wraps the character in the current-version envelope and
// pretty-prints it. The character may be any JSON-marshalable draft
// value.
func Serialize(character any) ([]byte, error) {
	raw, err := json.Marshal(character)
	if err != nil {
		return nil, fmt.Errorf("marshal character: %w", err)
	}
	return json.MarshalIndent(Envelope{
		Version:   CurrentVersion,
		Character: raw,
	}, "", "  ")
}

// Deserialize checks the payload in strict order: JSON syntax, object
// shape, version field, version support, character field, then the name
// and level field types. The first violation is reported and nothing
// after it is checked. On success the character is returned as raw JSON
// for the caller to unmarshal; no catalog-level validation happens here.
func Deserialize(data []byte) DecodeResult {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return failure(msgInvalidJSON)
	}

	root, ok := parsed.(map[string]any)
	if !ok {
		return failure(msgNotAnObject)
	}

	version, ok := root["version"].(float64)
	if !ok {
		return failure(msgBadVersion)
	}
	if version > CurrentVersion {
		return failure(fmt.Sprintf("Unsupported version %v. This app supports version %d or earlier.",
			formatVersion(version), CurrentVersion))
	}

	character, ok := root["character"].(map[string]any)
	if !ok {
		return failure(msgBadCharacter)
	}

	if name, present := character["name"]; present {
		if _, ok := name.(string); !ok {
			return failure(msgNameNotString)
		}
	}
	if level, present := character["level"]; present {
		if _, ok := level.(float64); !ok {
			return failure(msgLevelNotNumber)
		}
	}

	raw, err := json.Marshal(character)
	if err != nil {
		return failure(msgBadCharacter)
	}
	return DecodeResult{Success: true, Character: raw}
}

func failure(message string) DecodeResult {
	return DecodeResult{Error: message}
}

// formatVersion renders whole-number versions without a decimal point.
func formatVersion(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%v", v)
}

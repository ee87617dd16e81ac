package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/billbuddy/internal/schemas"
	"github.com/jonathan/billbuddy/internal/types"
)

// readDraft loads a bill draft from path, or from stdin when path is "-".
// The JSON must match the draft schema; missing sections read as empty.
func readDraft(path string, stdin io.Reader) (types.Draft, error) {
	if path == "" {
		return types.Draft{}, fmt.Errorf("--draft is required (use - for stdin)")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return types.Draft{}, fmt.Errorf("failed to read draft: %w", err)
	}

	if err := schemas.Validate(schemas.KindDraft, string(data)); err != nil {
		return types.Draft{}, fmt.Errorf("invalid draft %s: %w", path, err)
	}

	var draft types.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return types.Draft{}, fmt.Errorf("failed to parse draft: %w", err)
	}
	return draft, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

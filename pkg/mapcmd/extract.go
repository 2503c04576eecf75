// ABOUTME: Extracts MAP_COMMANDS fenced blocks from agent reply text
// ABOUTME: Parses each block as a JSON command array and strips it from the display text

package mapcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var blockPattern = regexp.MustCompile("(?s)```MAP_COMMANDS[ \t]*\n(.*?)\n```")

// Extract pulls map commands out of an agent reply.
//
// Each MAP_COMMANDS fenced block is parsed as a JSON array of commands.
// Any block holding valid JSON is removed from the returned display text,
// even when it is not a command array and yields nothing executable; only
// a block that fails to parse as JSON stays in the text so the user can
// see what the model produced. Individual commands that fail validation
// are dropped. All problems are collected into the returned error for the
// caller to log; extraction itself never fails hard.
func Extract(text string) (string, []Command, error) {
	matches := blockPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, nil, nil
	}

	clean := text
	var commands []Command
	var errs []error

	for _, m := range matches {
		block, body := m[0], m[1]

		var parsed []Command
		if err := json.Unmarshal([]byte(body), &parsed); err != nil {
			if json.Valid([]byte(body)) {
				// Valid JSON that is not a command array. The model
				// meant it as a command block, so it is stripped, but
				// nothing in it can run.
				errs = append(errs, fmt.Errorf("skipping map command block: %w", err))
				clean = strings.Replace(clean, block, "", 1)
			} else {
				errs = append(errs, fmt.Errorf("parsing map command block: %w", err))
			}
			continue
		}

		for _, cmd := range parsed {
			if err := cmd.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("skipping map command: %w", err))
				continue
			}
			commands = append(commands, cmd)
		}

		clean = strings.Replace(clean, block, "", 1)
	}

	return strings.TrimSpace(clean), commands, errors.Join(errs...)
}

// Package proctitle labels the running folio process by subcommand.
package proctitle

import (
	"errors"
	"strings"
)

const prefix = "folio-"

func format(command string) (string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", errors.New("empty process title")
	}
	return prefix + command, nil
}

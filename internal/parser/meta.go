package parser

import (
	"strings"
)

type MetaCommand int

const (
	Unknown MetaCommand = iota + 1
	Help
	Exit
	Constants
	Stats
)

func IsMetaCommand(input string) bool {
	return len(input) > 0 && input[:1] == "."
}

// ParseMetaCommand recognizes commands starting with a dot, e.g. ".exit"
func ParseMetaCommand(input string) MetaCommand {
	if !IsMetaCommand(input) {
		return Unknown
	}
	switch strings.ToLower(strings.TrimSpace(input[1:])) {
	case "help":
		return Help
	case "exit":
		return Exit
	case "constants":
		return Constants
	case "stats":
		return Stats
	default:
		return Unknown
	}
}

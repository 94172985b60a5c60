package cli

import (
	"fmt"
	"strconv"
)

// resolvePathID parses a positional path ID argument.
func resolvePathID(input string) (int64, error) {
	if input == "" {
		return 0, fmt.Errorf("path ID is required")
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid path ID %q", input)
	}
	return id, nil
}

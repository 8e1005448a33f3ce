package cmd

import (
	"fmt"
	"strconv"

	"github.com/corpdir/corpdir/internal/output"
)

// cmdError returns an appropriate error for JSON or text mode.
// Note: Use %v instead of %w for error arguments - wrapping is not preserved in JSON mode.
func cmdError(jsonMode bool, code string, format string, args ...any) error {
	if jsonMode {
		return output.Error(code, fmt.Sprintf(format, args...))
	}
	return fmt.Errorf(format, args...)
}

// parseIDArg converts a positional id argument into a database id.
func parseIDArg(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid company id: %q", arg)
	}
	return uint(id), nil
}

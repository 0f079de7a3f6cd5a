package check

import (
	"fmt"
	"strings"
)

// CheckError reports the checks that failed.
type CheckError struct {
	Failed []string
	Count  int
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%d preflight errors (%s)", e.Count, strings.Join(e.Failed, ", "))
}

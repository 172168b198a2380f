package assemble

import (
	"errors"
	"strings"
)

// ErrPolicyBlocked indicates the job description tripped a screening
// rule. Raised before any provider call; the whole run stops.
var ErrPolicyBlocked = errors.New("generation blocked by screening policy")

// ContainsClearanceKeyword reports whether the job description
// mentions any of the configured clearance phrases, case-insensitively.
func ContainsClearanceKeyword(jobDescription string, keywords []string) (string, bool) {
	lowered := strings.ToLower(jobDescription)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}

package latex

import (
	"fmt"
	"strings"
)

// Fill substitutes {{KEY}} placeholders in a template. Every
// placeholder present in the template must have a value; leaving one
// unresolved would leak literal braces into the compiled output.
func Fill(template string, values map[string]string) (string, error) {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	if start := strings.Index(out, "{{"); start >= 0 {
		if end := strings.Index(out[start:], "}}"); end >= 0 {
			return "", fmt.Errorf("unresolved placeholder %s", out[start:start+end+2])
		}
	}
	return out, nil
}

package profiles

import "resume-tailor/internal/sections"

func policiesToStrings(m sections.PolicyMap) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for s, a := range m {
		out[string(s)] = string(a)
	}
	return out
}

func policiesFromStrings(m map[string]string) sections.PolicyMap {
	if m == nil {
		return nil
	}
	out := make(sections.PolicyMap, len(m))
	for s, a := range m {
		out[sections.Section(s)] = sections.Action(a)
	}
	return out
}

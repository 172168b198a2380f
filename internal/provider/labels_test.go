package provider

import "testing"

func TestParseLabelPairTwoPartForm(t *testing.T) {
	company, title := ParseLabelPair("Acme Corp|Senior Engineer")
	if company != "Acme Corp" || title != "Senior Engineer" {
		t.Fatalf("got %q, %q", company, title)
	}
}

func TestParseLabelPairTrimsWhitespace(t *testing.T) {
	company, title := ParseLabelPair("  Acme | Engineer \n")
	if company != "Acme" || title != "Engineer" {
		t.Fatalf("got %q, %q", company, title)
	}
}

func TestParseLabelPairProseFallback(t *testing.T) {
	company, title := ParseLabelPair("The company is Acme, the role is Engineer.")
	if company == UnknownCompany || title == UnknownPosition {
		t.Fatalf("fallback parser should extract tokens, got %q, %q", company, title)
	}
}

func TestParseLabelPairSentinels(t *testing.T) {
	company, title := ParseLabelPair("")
	if company != UnknownCompany || title != UnknownPosition {
		t.Fatalf("got %q, %q", company, title)
	}
	company, title = ParseLabelPair("???")
	if company != UnknownCompany || title != UnknownPosition {
		t.Fatalf("got %q, %q", company, title)
	}
}

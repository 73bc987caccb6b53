package extract

import (
	"reflect"
	"testing"
)

func TestEmails(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic extraction and dedup",
			input: "Contact sales@acme.io or Sales@Acme.io for a demo",
			want:  []string{"sales@acme.io"},
		},
		{
			name:  "filters noreply",
			input: "noreply@acme.io sends updates, reach info@acme.io instead",
			want:  []string{"info@acme.io"},
		},
		{
			name:  "no emails",
			input: "call us today",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Emails(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Emails(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhones(t *testing.T) {
	got := Phones("Call +1 (555) 123-4567 or visit us")
	if len(got) != 1 {
		t.Fatalf("expected 1 phone, got %v", got)
	}

	// A short number like a year should not match
	if got := Phones("founded in 2019"); got != nil {
		t.Errorf("expected no phones in %q, got %v", "founded in 2019", got)
	}
}

func TestMoneyAmounts(t *testing.T) {
	got := MoneyAmounts("Acme raised $12 million in Series A, following a €5M seed")
	if len(got) != 2 {
		t.Fatalf("expected 2 amounts, got %v", got)
	}
}

func TestSocialLinks(t *testing.T) {
	html := `<a href="https://twitter.com/acme">Twitter</a>
	<a href="https://www.linkedin.com/company/acme">LinkedIn</a>
	<a href="https://acme.io/about">About</a>`

	got := SocialLinks(html)
	if got["twitter"] == "" {
		t.Error("expected twitter link")
	}
	if got["linkedin"] == "" {
		t.Error("expected linkedin link")
	}
	if _, ok := got["facebook"]; ok {
		t.Error("did not expect facebook link")
	}

	if SocialLinks("no links here") != nil {
		t.Error("expected nil for text without links")
	}
}

func TestTechFingerprints(t *testing.T) {
	html := `<script src="https://js.hs-scripts.com/123.js"></script>
	<script src="https://www.googletagmanager.com/gtm.js"></script>`

	got := TechFingerprints(html)
	want := []string{"HubSpot", "Google Tag Manager"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TechFingerprints = %v, want %v", got, want)
	}
}

func TestCRM(t *testing.T) {
	if crm := CRM(`<script src="https://js.hs-scripts.com/1.js"></script>`); crm != "HubSpot" {
		t.Errorf("expected HubSpot, got %q", crm)
	}
	if crm := CRM("<html>plain site</html>"); crm != "" {
		t.Errorf("expected no CRM, got %q", crm)
	}
}

func TestHasLiveChat(t *testing.T) {
	if !HasLiveChat(`<script src="https://widget.intercom.io/widget/abc"></script>`) {
		t.Error("expected live chat detection for intercom")
	}
	if HasLiveChat("<html></html>") {
		t.Error("did not expect live chat detection")
	}
}

package style_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/style"
)

func TestDefaultPolicy(t *testing.T) {
	policy := style.Default()

	want := map[contact.Severity]contact.Style{
		contact.SeverityError: {
			Color: "#b00020", Background: "rgba(176,0,32,0.06)", Padding: "8px 10px", BorderRadius: "6px",
		},
		contact.SeveritySuccess: {
			Color: "#115e54", Background: "rgba(17,94,84,0.06)", Padding: "8px 10px", BorderRadius: "6px",
		},
		contact.SeverityInfo: {
			Color: "#115e54", Background: "rgba(17,94,84,0.06)", Padding: "8px 10px", BorderRadius: "6px",
		},
	}
	got := map[contact.Severity]contact.Style{}
	for severity := range want {
		got[severity] = policy.StatusStyle(severity)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("styles mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(contact.Style{Background: "transparent"}, policy.ClearedStyle()); diff != "" {
		t.Fatalf("cleared style mismatch (-want +got):\n%s", diff)
	}
}

func TestFromThemeAppliesVariantTokens(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			style.TokenErrorColor: "#ff0000",
			style.TokenRadius:     "2px",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					style.TokenErrorColor:   "#ff7777",
					style.TokenSuccessColor: "#00ffaa",
				},
			},
		},
	}

	policy := style.FromTheme(manifest, "dark")

	wantError := contact.Style{Color: "#ff7777", Background: "rgba(176,0,32,0.06)", Padding: "8px 10px", BorderRadius: "2px"}
	if diff := cmp.Diff(wantError, policy.StatusStyle(contact.SeverityError)); diff != "" {
		t.Fatalf("error style mismatch (-want +got):\n%s", diff)
	}
	if got := policy.StatusStyle(contact.SeverityInfo).Color; got != "#00ffaa" {
		t.Fatalf("info should follow success colour, got %s", got)
	}

	base := style.FromTheme(manifest, "")
	if got := base.StatusStyle(contact.SeverityError).Color; got != "#ff0000" {
		t.Fatalf("base theme colour not applied, got %s", got)
	}
}

func TestMergeKeepsExistingDeclarations(t *testing.T) {
	got := style.Merge("margin-top: 12px; color: blue", style.Default().StatusStyle(contact.SeverityError))
	want := "margin-top: 12px; color: #b00020; background: rgba(176,0,32,0.06); padding: 8px 10px; border-radius: 6px"
	if got != want {
		t.Fatalf("merge mismatch:\nwant %s\ngot  %s", want, got)
	}

	cleared := style.Merge(got, style.Default().ClearedStyle())
	wantCleared := "margin-top: 12px; color: #b00020; background: transparent; padding: 8px 10px; border-radius: 6px"
	if cleared != wantCleared {
		t.Fatalf("cleared merge mismatch:\nwant %s\ngot  %s", wantCleared, cleared)
	}
}

func TestRootBlock(t *testing.T) {
	got := style.RootBlock(style.CSSVars(map[string]string{"brand": "#123456", "accent": "#fff"}))
	want := ":root {\n  --accent: #fff;\n  --brand: #123456;\n}"
	if got != want {
		t.Fatalf("root block mismatch:\nwant %q\ngot  %q", want, got)
	}
}

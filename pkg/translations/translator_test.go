package translations

import (
	"testing"

	"github.com/goliatone/go-adminkit/pkg/links"
	i18n "github.com/goliatone/go-i18n"
)

func TestTranslatorResolvesActionTitles(t *testing.T) {
	base, err := NewCatalogTranslator("en")
	if err != nil {
		t.Fatalf("NewCatalogTranslator: %v", err)
	}

	tests := []struct {
		locale string
		action string
		want   string
	}{
		{locale: "en", action: "enable", want: "enable"},
		{locale: "es", action: "delete", want: "eliminar"},
		{locale: "fr", action: "update", want: "mettre à jour"},
		{locale: "", action: "edit", want: "edit"},
	}

	for _, tc := range tests {
		t.Run(tc.locale+"/"+tc.action, func(t *testing.T) {
			tr, err := NewTranslator(base, tc.locale)
			if err != nil {
				t.Fatalf("NewTranslator: %v", err)
			}
			if got := tr.Translate(links.TitleKey(tc.action)); got != tc.want {
				t.Fatalf("Translate() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestTranslatorMissingKeyReturnsKey(t *testing.T) {
	base, err := NewCatalogTranslator("en")
	if err != nil {
		t.Fatalf("NewCatalogTranslator: %v", err)
	}
	tr, err := NewTranslator(base, "en")
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}

	if got := tr.Translate("core::actions.archive"); got != "core::actions.archive" {
		t.Fatalf("expected key fallback, got %q", got)
	}

	var nilTranslator *Translator
	if got := nilTranslator.Translate("core::actions.edit"); got != "core::actions.edit" {
		t.Fatalf("expected key fallback for nil translator, got %q", got)
	}
}

func TestTranslatorWithLocale(t *testing.T) {
	base, err := NewCatalogTranslator("en")
	if err != nil {
		t.Fatalf("NewCatalogTranslator: %v", err)
	}
	en, err := NewTranslator(base, "en")
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	fr := en.WithLocale(" fr ")

	if fr.Locale() != "fr" || en.Locale() != "en" {
		t.Fatalf("unexpected locales %q %q", fr.Locale(), en.Locale())
	}
	if got := fr.Translate(links.TitleKey("show")); got != "afficher" {
		t.Fatalf("expected french title, got %q", got)
	}
}

func TestRendererUsesCatalogTitles(t *testing.T) {
	base, err := NewCatalogTranslator("en")
	if err != nil {
		t.Fatalf("NewCatalogTranslator: %v", err)
	}
	tr, err := NewTranslator(base, "fr")
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	r := links.NewRenderer(links.Dependencies{Translator: tr})

	got := r.Render(links.Make("edit", "/x", links.Attributes{}, false).WithIcon(false))
	if got != `<a href="/x" class="btn">Modifier</a>` {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestNewTranslatorRequiresTranslator(t *testing.T) {
	if _, err := NewTranslator(nil, "en"); err == nil {
		t.Fatalf("expected error for nil translator")
	}
}

func TestCatalogsCoverLocales(t *testing.T) {
	catalogs := Catalogs()
	for _, locale := range []string{"en", "es", "fr"} {
		catalog, ok := catalogs[locale]
		if !ok || catalog == nil {
			t.Fatalf("missing catalog %s", locale)
		}
		if _, ok := catalog.Messages[links.TitleKey("enable")]; !ok {
			t.Fatalf("catalog %s missing enable title", locale)
		}
	}
	var _ i18n.Translations = catalogs
}

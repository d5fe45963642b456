package di

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-adminkit/internal/templates"
	"github.com/goliatone/go-adminkit/pkg/config"
	"github.com/goliatone/go-adminkit/pkg/links"
	"github.com/goliatone/go-adminkit/pkg/options"
)

func TestNewContainerDefaults(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Config.Localization.DefaultLocale != "en" {
		t.Fatalf("expected default locale en, got %s", c.Config.Localization.DefaultLocale)
	}

	got := c.Renderer("").Render(links.Make("enable", "/users/1/enable", links.Attributes{}, false))
	want := `<a href="/users/1/enable" class="btn btn-xs btn-success"><i class="fa fa-fw fa-power-off"></i> Enable</a>`
	if got != want {
		t.Fatalf("Render() = %q want %q", got, want)
	}

	disabled := c.Renderer("en").Render(links.Make("delete", "/x", links.Attributes{}, true))
	if !strings.Contains(disabled, `class="btn"`) {
		t.Fatalf("expected empty default color for disabled link, got %q", disabled)
	}
}

func TestContainerRoutesAndLocale(t *testing.T) {
	c, err := New(Options{
		Routes: map[string]string{
			"admin.users.edit": "/admin/users/{id}/edit",
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	factory := c.Links("fr")
	link := factory.Route("edit", "admin.users.edit", map[string]string{"id": "9"}, links.Attributes{}, false).WithIcon(false)
	got := factory.HTML(link)
	want := `<a href="/admin/users/9/edit" class="btn btn-xs btn-warning">Modifier</a>`
	if got != want {
		t.Fatalf("HTML() = %q want %q", got, want)
	}
}

func TestContainerSnapshotsOverrideConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.UI.Prefix = "admin"
	cfg.UI.Links.Colors["edit"] = "btn-xs btn-primary"

	c, err := New(Options{
		Config: cfg,
		Snapshots: []options.Snapshot{{
			Scope: options.TenantScope(),
			Data: map[string]any{
				"admin": map[string]any{
					"ui": map[string]any{
						"links": map[string]any{
							"icons": map[string]any{"edit": "fa fa-edit"},
						},
					},
				},
			},
		}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := c.Renderer("en").Render(links.Make("edit", "/x", links.Attributes{}, false))
	want := `<a href="/x" class="btn btn-xs btn-primary"><i class="fa fa-edit"></i> Edit</a>`
	if got != want {
		t.Fatalf("Render() = %q want %q", got, want)
	}
}

func TestContainerTemplates(t *testing.T) {
	cfg := config.Defaults()
	cfg.Templates.Partials = map[string]string{
		"users.row-actions": `{{ icon_link("edit", edit_url)|safe }} {{ icon_link("delete", delete_url, locked)|safe }}`,
	}
	c, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := c.Templates.RenderPartial(context.Background(), templates.PartialRequest{
		Name: "users.row-actions",
		Data: map[string]any{"edit_url": "/users/1/edit", "delete_url": "/users/1", "locked": true},
	})
	if err != nil {
		t.Fatalf("RenderPartial: %v", err)
	}
	if !strings.Contains(got, `href="/users/1/edit"`) {
		t.Fatalf("expected edit link, got %q", got)
	}
	if strings.Contains(got, `href="/users/1"`) || !strings.Contains(got, `disabled="disabled"`) {
		t.Fatalf("expected locked delete link to be disabled, got %q", got)
	}
}

func TestNewContainerRejectsBadRoutes(t *testing.T) {
	if _, err := New(Options{Routes: map[string]string{"broken": "/x/{id"}}); err == nil {
		t.Fatalf("expected route error")
	}
}

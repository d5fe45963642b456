package adminkit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-adminkit/pkg/commands"
	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
	"github.com/goliatone/go-adminkit/pkg/links"
)

func TestModuleConstruction(t *testing.T) {
	module, err := NewModule(ModuleOptions{Logger: &logger.Nop{}})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	if module.Config().Localization.DefaultLocale != "en" {
		t.Fatalf("expected default config")
	}
	if len(module.Partials()) == 0 {
		t.Fatalf("expected default partials")
	}
}

func TestModuleLinksAndPartials(t *testing.T) {
	module, err := NewModule(ModuleOptions{})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	if err := module.RegisterRoute("admin.users.show", "/admin/users/{id}"); err != nil {
		t.Fatalf("RegisterRoute: %v", err)
	}

	factory := module.Links("en")
	link := factory.Route("show", "admin.users.show", map[string]string{"id": "5"}, links.NewAttributes("data-id", "5"), false)
	got := factory.HTML(link)
	want := `<a href="/admin/users/5" class="btn btn-xs btn-info" data-id="5"><i class="fa fa-fw fa-search"></i> Show</a>`
	if got != want {
		t.Fatalf("HTML() = %q want %q", got, want)
	}

	module.RegisterPartials(Partial{
		Name:   "users.show-link",
		Source: `{{ link("show", url)|safe }}`,
		Schema: PartialSchema{Required: []string{"url"}},
	})
	html, err := module.RenderPartial(context.Background(), PartialRequest{
		Name: "users.show-link",
		Data: map[string]any{"url": "/admin/users/5"},
	})
	if err != nil {
		t.Fatalf("RenderPartial: %v", err)
	}
	if !strings.Contains(html, `href="/admin/users/5"`) || !strings.Contains(html, "Show</a>") {
		t.Fatalf("unexpected partial output %q", html)
	}
}

func TestNilModule(t *testing.T) {
	var module *Module
	if module.Renderer("en") == nil || module.Links("en") == nil {
		t.Fatalf("nil module must hand out default renderers")
	}
	if _, err := module.RenderPartial(context.Background(), PartialRequest{Name: "x"}); !errors.Is(err, ErrModuleNotInitialised) {
		t.Fatalf("expected ErrModuleNotInitialised, got %v", err)
	}
	if err := module.RegisterRoute("admin.users.show", "/admin/users/{id}"); !errors.Is(err, ErrModuleNotInitialised) {
		t.Fatalf("expected ErrModuleNotInitialised, got %v", err)
	}
	if module.Commands() != nil {
		t.Fatalf("nil module must not expose commands")
	}
}

func TestModuleRegisterHelpers(t *testing.T) {
	module, err := NewModule(ModuleOptions{})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	module.RegisterHelpers(map[string]any{
		"user_url": func(id any) string { return "/admin/users/" + strings.TrimSpace(fmt.Sprint(id)) },
	})
	module.RegisterPartials(Partial{
		Name:   "users.edit-link",
		Source: `{{ icon_link("edit", user_url(id))|safe }}`,
		Schema: PartialSchema{Required: []string{"id"}},
	})

	got, err := module.RenderPartial(context.Background(), PartialRequest{
		Name: "users.edit-link",
		Data: map[string]any{"id": "7"},
	})
	if err != nil {
		t.Fatalf("RenderPartial: %v", err)
	}
	if !strings.Contains(got, `href="/admin/users/7"`) {
		t.Fatalf("expected helper output in href, got %q", got)
	}
}

func TestModuleCommands(t *testing.T) {
	module, err := NewModule(ModuleOptions{})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	cmds := module.Commands()
	if cmds == nil || len(cmds.Commanders()) != 2 {
		t.Fatalf("expected command registry with two commanders")
	}

	ctx := context.Background()
	if err := cmds.RegisterRoute.Execute(ctx, commands.RouteRegistration{Name: "admin.users.delete", Template: "/admin/users/{id}/delete"}); err != nil {
		t.Fatalf("register route: %v", err)
	}
	if err := cmds.UpsertPartial.Execute(ctx, commands.PartialUpsert{
		Name:     "users.delete-link",
		Source:   `{{ icon_link("delete", url)|safe }}`,
		Required: []string{"url"},
	}); err != nil {
		t.Fatalf("upsert partial: %v", err)
	}

	factory := module.Links("en")
	url := factory.Route("delete", "admin.users.delete", map[string]string{"id": "3"}, links.Attributes{}, false).URL()
	got, err := module.RenderPartial(ctx, PartialRequest{
		Name: "users.delete-link",
		Data: map[string]any{"url": url},
	})
	if err != nil {
		t.Fatalf("RenderPartial: %v", err)
	}
	if !strings.Contains(got, `href="/admin/users/3/delete"`) {
		t.Fatalf("unexpected output %q", got)
	}
}

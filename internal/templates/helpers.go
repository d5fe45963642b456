package templates

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-adminkit/pkg/links"
)

// linkHelperFuncs exposes link rendering to templates:
//
//	{{ link("edit", url)|safe }}
//	{{ icon_link("delete", url, disabled)|safe }}
func (s *Service) linkHelperFuncs() map[string]any {
	return map[string]any{
		"link": func(action, url any, args ...any) string {
			return s.activeRenderer().Render(newHelperLink(action, url, args))
		},
		"icon_link": func(action, url any, args ...any) string {
			return s.activeRenderer().Render(newHelperLink(action, url, args).OnlyIcon())
		},
	}
}

func newHelperLink(action, url any, args []any) *links.Link {
	disabled := false
	if len(args) > 0 {
		disabled = truthy(args[0])
	}
	return links.Make(stringFromTemplateValue(action), stringFromTemplateValue(url), links.Attributes{}, disabled)
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "false", "no", "off":
			return false
		}
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return truthy(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem().Interface())
	default:
		return false
	}
}

func stringFromTemplateValue(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

package templates

import (
	"sync"

	gotemplate "github.com/goliatone/go-template"
)

// helperRegistry serializes helper registration on the go-template renderer.
type helperRegistry struct {
	mu       sync.Mutex
	renderer *gotemplate.Engine
}

func newHelperRegistry(renderer *gotemplate.Engine) *helperRegistry {
	return &helperRegistry{renderer: renderer}
}

// Register adds funcs to the renderer. Nil functions are skipped and a name
// registered twice keeps the last function.
func (r *helperRegistry) Register(funcs map[string]any) {
	if r == nil || len(funcs) == 0 {
		return
	}
	live := make(map[string]any, len(funcs))
	for key, fn := range funcs {
		if key == "" || fn == nil {
			continue
		}
		live[key] = fn
	}
	if len(live) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	gotemplate.WithTemplateFunc(live)(r.renderer)
}

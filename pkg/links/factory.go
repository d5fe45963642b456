package links

// URLResolver expands a named route into a URL. Implementations are total and
// return DefaultURL when the route cannot be resolved.
type URLResolver interface {
	Resolve(name string, params map[string]string) string
}

// Factory creates links bound to a renderer and an optional route table.
type Factory struct {
	renderer *Renderer
	routes   URLResolver
}

// NewFactory returns a factory rendering with r. A nil r uses the default
// renderer.
func NewFactory(r *Renderer, routes URLResolver) *Factory {
	if r == nil {
		r = NewRenderer(Dependencies{})
	}
	return &Factory{renderer: r, routes: routes}
}

// Renderer returns the renderer used by the factory.
func (f *Factory) Renderer() *Renderer {
	return f.renderer
}

// Make creates a link, see Make.
func (f *Factory) Make(action, url string, attrs Attributes, disabled bool) *Link {
	return Make(action, url, attrs, disabled)
}

// Route creates a link whose target is the named route expanded with params.
func (f *Factory) Route(action, route string, params map[string]string, attrs Attributes, disabled bool) *Link {
	url := DefaultURL
	if f.routes != nil {
		url = f.routes.Resolve(route, params)
	}
	return Make(action, url, attrs, disabled)
}

// HTML renders l with the factory renderer.
func (f *Factory) HTML(l *Link) string {
	return f.renderer.Render(l)
}

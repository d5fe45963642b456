package templui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/goliatone/go-adminkit/pkg/links"
)

// Link renders l with r when the component is rendered. The link state is
// captured as a clone so later mutations do not leak into the view.
func Link(r *links.Renderer, l *links.Link) templ.Component {
	snapshot := l.Clone()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := io.WriteString(w, r.Render(snapshot))
		return err
	})
}

// Links renders every link in order separated by a single space.
func Links(r *links.Renderer, items ...*links.Link) templ.Component {
	snapshots := make([]*links.Link, 0, len(items))
	for _, l := range items {
		if l != nil {
			snapshots = append(snapshots, l.Clone())
		}
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i, l := range snapshots {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, r.Render(l)); err != nil {
				return err
			}
		}
		return nil
	})
}

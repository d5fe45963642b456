package links

// Link holds the state of one action link. Links are request scoped and not
// safe for concurrent use; every setter returns the same instance.
type Link struct {
	action      string
	url         string
	attributes  Attributes
	disabled    bool
	size        string
	withTitle   bool
	withIcon    bool
	withTooltip bool
}

// Make creates a link for action pointing at url. When disabled is true the
// data-* entries of attrs are dropped right away.
func Make(action, url string, attrs Attributes, disabled bool) *Link {
	l := &Link{
		action:    action,
		url:       url,
		size:      DefaultSize,
		withTitle: true,
		withIcon:  true,
	}
	return l.SetAttributes(attrs).SetDisabled(disabled)
}

// SetAttributes replaces the extra attributes wholesale.
func (l *Link) SetAttributes(attrs Attributes) *Link {
	l.attributes = attrs.Clone()
	return l
}

// SetAttribute upserts a single extra attribute.
func (l *Link) SetAttribute(key, value string) *Link {
	l.attributes.Set(key, value)
	return l
}

// SetDisabled toggles the disabled state. Disabling strips data-* attributes;
// enabling again later does not bring them back.
func (l *Link) SetDisabled(disabled bool) *Link {
	l.disabled = disabled
	if disabled {
		l.attributes = StripDataAttributes(l.attributes)
	}
	return l
}

// Size sets the size key resolved against the size table.
func (l *Link) Size(size string) *Link {
	l.size = size
	return l
}

// WithTitle shows or hides the title text.
func (l *Link) WithTitle(withTitle bool) *Link {
	l.withTitle = withTitle
	return l
}

// WithIcon shows or hides the icon.
func (l *Link) WithIcon(withIcon bool) *Link {
	l.withIcon = withIcon
	return l
}

// WithTooltip moves the title into a tooltip.
func (l *Link) WithTooltip(withTooltip bool) *Link {
	l.withTooltip = withTooltip
	return l
}

// OnlyIcon renders the icon alone with the title carried by the tooltip.
func (l *Link) OnlyIcon() *Link {
	return l.WithIcon(true).WithTooltip(true)
}

// Clone returns an independent copy of the link.
func (l *Link) Clone() *Link {
	if l == nil {
		return nil
	}
	clone := *l
	clone.attributes = l.attributes.Clone()
	return &clone
}

// Action returns the action identifier.
func (l *Link) Action() string { return l.action }

// URL returns the stored target, falling back to DefaultURL.
func (l *Link) URL() string {
	if l.url == "" {
		return DefaultURL
	}
	return l.url
}

// Disabled reports whether the link is disabled.
func (l *Link) Disabled() bool { return l.disabled }

// Attributes returns a copy of the extra attributes.
func (l *Link) Attributes() Attributes { return l.attributes.Clone() }

// ToHTML renders the link with r.
func (l *Link) ToHTML(r *Renderer) string {
	return r.Render(l)
}

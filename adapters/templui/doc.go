// Package templui exposes rendered admin links as templ components so they can
// be embedded in templ views:
//
//	@templui.Link(renderer, links.Make("edit", url, links.Attributes{}, false))
package templui

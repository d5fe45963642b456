// Package links renders admin action links (enable, delete, edit, ...) into
// Bootstrap-flavored anchor elements.
//
// A Link is a request-scoped builder configured through chained setters and
// rendered by a Renderer, which carries the translation, style and attribute
// serialization collaborators. All lookups are total: an unresolved action or
// size degrades to omitted class fragments, never an error.
package links

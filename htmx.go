package pageroutes

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// navKind classifies how a page request reached the server.
type navKind int

const (
	// full page load: typed URL, reload or a plain link
	navLoad navKind = iota
	// htmx driven link click
	navPush
	// htmx history restore after back/forward missed its cache
	navPop
)

func classify(r *http.Request) navKind {
	switch {
	case htmx.IsHistoryRestoreRequest(r):
		return navPop
	case htmx.IsHTMX(r):
		return navPush
	default:
		return navLoad
	}
}

func isHTMX(r *http.Request) bool {
	return htmx.IsHTMX(r)
}

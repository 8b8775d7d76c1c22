// Package pageroutes maps literal URL paths to page views and keeps a
// browser-style history of the active path.
//
// A [Router] is built once from a fixed route table and resolves paths by
// exact match. [Router.Navigate] pushes a history entry, [Router.OnPopState]
// follows a back/forward event without pushing. The history is injected
// through the [History] interface, so the same Router runs headless with a
// [MemoryHistory] or per visitor with a [SessionHistory].
//
// [Server] exposes the routes over HTTP with htmx: link clicks push the URL,
// history restores pop it, and full page loads render inside a layout.
package pageroutes

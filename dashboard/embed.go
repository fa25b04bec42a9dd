// Package dashboard provides the embedded web UI assets for serverboard.
//
// The page is a shell around the rendered card container. The server inlines
// the latest view on load. A small script applies each view that arrives over
// Server-Sent Events by matching cards on data-id: live cards are re-parented
// in order and only the regions whose markup changed are replaced.
package dashboard

import "embed"

// Assets is an embedded filesystem containing the dashboard web UI.
//
//	assets/
//	  index.html    - page shell with inline CSS and JavaScript
//
//go:embed assets/*
var Assets embed.FS

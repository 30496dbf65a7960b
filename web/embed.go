// Package web embeds the browser client: a landing page, the booking app
// and its script and styles.  The server serves these directly so the
// whole service ships as one binary.
package web

import "embed"

//go:embed home.html index.html app.js styles.css
var FS embed.FS

// Package preview is the thin HTTP harness around the renderer, used by
// `dictmark serve`. It exposes the render operation (POST /render and a
// websocket live preview on /live), serves illustration media and the
// Prometheus metrics endpoint. It deliberately carries none of the
// surrounding application's surface: no entry browsing or storage, no
// profile persistence, no authentication.
package preview

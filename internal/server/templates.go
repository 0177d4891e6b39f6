package server

import "html/template"

// indexTemplate is the preview landing page: the configured mockups with
// their on-disk status, plus rendered design notes.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Quantum mockups</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #1e293b; }
h1 { font-size: 1.4rem; }
ul.pages { list-style: none; padding: 0; }
ul.pages li { padding: 0.4rem 0; border-bottom: 1px solid #e2e8f0; }
ul.pages a { color: #4f46e5; text-decoration: none; }
ul.pages a:hover { text-decoration: underline; }
span.missing { color: #94a3b8; }
span.badge { font-size: 0.7rem; color: #dc2626; margin-left: 0.5rem; }
.notes { margin-top: 2rem; border-top: 2px solid #e2e8f0; padding-top: 1rem; }
.notes pre { background: #f8fafc; padding: 0.75rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>Quantum mockups</h1>
<ul class="pages">
{{range .Pages}}<li>{{if .Present}}<a href="/{{.File}}">{{.Title}}</a>{{else}}<span class="missing">{{.Title}}</span><span class="badge">missing</span>{{end}}</li>
{{end}}</ul>
{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
{{if .LiveReload}}<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/__livereload");
  ws.onmessage = function (ev) { if (ev.data === "reload") location.reload(); };
})();
</script>
{{end}}</body>
</html>
`))

// reloadScript is appended to served mockup pages when live reload is on.
const reloadScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/__livereload");
  ws.onmessage = function (ev) { if (ev.data === "reload") location.reload(); };
})();
</script>`

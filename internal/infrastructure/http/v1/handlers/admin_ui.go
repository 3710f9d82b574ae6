package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminUIHandler serves the minimal HTML shells for the dashboard and
// edit views. The shells only show loading, error-banner and raw-dump
// states; an empty section is rendered as-is, never as an error. Field
// level form rendering and saving are not implemented yet.
type AdminUIHandler struct{}

// NewAdminUIHandler creates the admin UI handler.
func NewAdminUIHandler() *AdminUIHandler {
	return &AdminUIHandler{}
}

// Dashboard serves the page list shell.
// GET /admin
func (h *AdminUIHandler) Dashboard(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = dashboardTmpl.Execute(c.Writer, nil)
}

// Edit serves the editor shell for one page.
// GET /admin/edit/:slug
func (h *AdminUIHandler) Edit(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = editTmpl.Execute(c.Writer, map[string]string{"Slug": c.Param("slug")})
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Admin - Pages</title></head>
<body>
<h1>Pages</h1>
<p id="state">Loading…</p>
<ul id="pages"></ul>
<script>
(async () => {
  const state = document.getElementById('state');
  try {
    const res = await fetch('/api/admin/pages', {
      headers: { Authorization: 'Bearer ' + (localStorage.getItem('token') || '') }
    });
    const body = await res.json();
    if (!res.ok) { state.textContent = 'Error: ' + (body.error || res.status); return; }
    state.remove();
    const ul = document.getElementById('pages');
    for (const p of body.pages) {
      const li = document.createElement('li');
      const a = document.createElement('a');
      a.href = p.editPath;
      a.textContent = p.adminTitle;
      li.appendChild(a);
      ul.appendChild(li);
    }
  } catch (err) {
    state.textContent = 'Error: ' + err;
  }
})();
</script>
</body>
</html>
`))

var editTmpl = template.Must(template.New("edit").Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Admin - Edit {{.Slug}}</title></head>
<body>
<h1 id="title">Edit: {{.Slug}}</h1>
<p id="state">Loading…</p>
<pre id="dump"></pre>
<script>
(async () => {
  const state = document.getElementById('state');
  try {
    const res = await fetch('/api/admin/page-content/{{.Slug}}', {
      headers: { Authorization: 'Bearer ' + (localStorage.getItem('token') || '') }
    });
    const body = await res.json();
    if (!res.ok) { state.textContent = 'Error: ' + (body.error || res.status); return; }
    state.remove();
    document.getElementById('title').textContent = body.pageAdminTitle;
    document.getElementById('dump').textContent = JSON.stringify(body.schema, null, 2);
  } catch (err) {
    state.textContent = 'Error: ' + err;
  }
})();
</script>
</body>
</html>
`))

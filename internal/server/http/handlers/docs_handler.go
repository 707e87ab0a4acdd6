package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>reportly API</title></head>
<body>
<h1>reportly API</h1>
<ul>
<li><code>POST /queue-report/</code>: schedule a PDF report, returns <code>{"uid": "..."}</code></li>
<li><code>GET /reports</code>: list stored report identifiers</li>
<li><code>GET /get-report/{uid}</code>: download a rendered report</li>
</ul>
</body>
</html>
`

// DocsHandler serves the API documentation endpoints.
type DocsHandler struct{}

// NewDocsHandler constructs DocsHandler.
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// Root handles GET / with a redirect to the documentation.
func (h *DocsHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/docs")
}

// Index handles GET /docs.
func (h *DocsHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}

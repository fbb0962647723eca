package api

import (
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airline/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestContext returns a gin context whose engine can render the real templates.
func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)
	r.SetHTMLTemplate(tmpl)
	return c, w
}

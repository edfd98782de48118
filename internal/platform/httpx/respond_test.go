package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptWrapsJSONInCallback(t *testing.T) {
	rec := httptest.NewRecorder()
	Script(rec, "jsonp_cb_1", map[string]string{"status": "success"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/javascript; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `jsonp_cb_1({"status":"success"});`, rec.Body.String())
}

func TestValidCallback(t *testing.T) {
	assert.True(t, ValidCallback("jsonp_cb_1712_42"))
	assert.True(t, ValidCallback("window.handler"))
	assert.False(t, ValidCallback(""))
	assert.False(t, ValidCallback("1abc"))
	assert.False(t, ValidCallback("alert(1)//"))
}

func TestProblemShape(t *testing.T) {
	rec := httptest.NewRecorder()
	Problem(rec, 404, "Not Found", "no such record")

	assert.Equal(t, 404, rec.Code)
	assert.JSONEq(t, `{"title":"Not Found","status":404,"detail":"no such record"}`, rec.Body.String())
}

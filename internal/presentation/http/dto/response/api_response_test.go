package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func errorResponse(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, err)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestError_ConflictsCarryDistinctReasons(t *testing.T) {
	// Both errors are 409s; the reason tag is what lets a terminal UI
	// tell a superseded search from a submission in flight.
	code, resp := errorResponse(t, apperror.ErrSearchSuperseded)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "search_superseded", resp.Reason)

	code, resp = errorResponse(t, apperror.ErrSubmitInProgress)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "submission_in_progress", resp.Reason)
}

func TestError_PlainErrorsOmitReason(t *testing.T) {
	code, resp := errorResponse(t, apperror.ErrSessionNotFound)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Empty(t, resp.Reason)
	assert.False(t, resp.Success)
	assert.Equal(t, "Sale session not found", resp.Message)
}

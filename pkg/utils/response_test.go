package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/cricket-sim/internal/models"
)

func TestSendDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		details string
	}{
		{"validation", models.NewValidationError("wickets", "must be between 0 and 10"), http.StatusBadRequest, ErrCodeValidation, "wickets"},
		{"wrapped validation", fmt.Errorf("project: %w", models.NewValidationError("venue", "unknown")), http.StatusBadRequest, ErrCodeValidation, "venue"},
		{"state", &models.StateError{Op: "start", State: "running"}, http.StatusConflict, ErrCodeInvalidState, "running"},
		{"not found", fmt.Errorf("team %q: %w", "xyz", models.ErrNotFound), http.StatusNotFound, ErrCodeNotFound, ""},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError, ErrCodeInternal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendDomainError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.details, resp.Error.Details)
		})
	}
}

func TestSendSuccessWithMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendSuccessWithMeta(c, []string{"a", "b"}, &Meta{Total: 2, Filter: "franchise"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":["a","b"],"meta":{"total":2,"filter":"franchise"}}`, w.Body.String())
}

func TestAppError(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: missing", NewAppError(ErrCodeNotFound, "missing").Error())
	assert.Equal(t, "VALIDATION_ERROR: bad - runs", NewAppError(ErrCodeValidation, "bad", "runs").Error())
}

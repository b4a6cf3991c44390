package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFailSurfacesBusinessErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not owner", ErrNotOwner, http.StatusForbidden, ErrNotOwner.Error()},
		{"not found", ErrNotFound, http.StatusNotFound, ErrNotFound.Error()},
		{"slot conflict", ErrSlotConflict, http.StatusConflict, ErrSlotConflict.Error()},
		{"wrapped business error", fmt.Errorf("%w: member abc", ErrPlayerNotOnTeam), http.StatusBadRequest, "member abc"},
		{"unknown error stays hidden", errors.New("pq: connection reset"), http.StatusInternalServerError, "something went wrong"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			Fail(c, tc.err, "operation failed")

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
			if tc.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), tc.err.Error())
			}
		})
	}
}

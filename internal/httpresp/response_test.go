package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		pages int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 5, 5},
		{7, 0, 0},
	}

	for _, tc := range cases {
		p := NewPagination(1, tc.limit, tc.total)
		require.Equal(t, tc.pages, p.Pages, "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestListNeverEncodesNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var none []string
	List(c, none, NewPagination(1, 10, 0))

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.JSONEq(t, `[]`, string(raw["data"]))
	require.JSONEq(t, `{"page":1,"limit":10,"total":0,"pages":0}`, string(raw["pagination"]))
	require.JSONEq(t, `true`, string(raw["success"]))
}

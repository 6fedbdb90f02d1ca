package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "expatmart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestPage(t *testing.T) {
	t.Run("full page has next offset", func(t *testing.T) {
		c, rec := newContext()
		require.NoError(t, Page(c, []string{"a", "b"}, 2, 4))

		var body struct {
			Data Paged `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Data.Count)
		require.NotNil(t, body.Data.NextOffset)
		assert.Equal(t, 6, *body.Data.NextOffset)
	})

	t.Run("nil slice is an empty list", func(t *testing.T) {
		c, rec := newContext()
		require.NoError(t, Page[int](c, nil, 20, 0))

		assert.Contains(t, rec.Body.String(), `"items":[]`)
		assert.NotContains(t, rec.Body.String(), "next_offset")
	})
}

func TestError_DropsDetailsOnAuthAndServerErrors(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, http.StatusForbidden, "FORBIDDEN", "nope", map[string]string{"role": "admin"}))
	assert.NotContains(t, rec.Body.String(), "details")

	c, rec = newContext()
	require.NoError(t, Error(c, http.StatusBadRequest, "BAD", "bad", map[string]string{"field": "amount"}))
	assert.Contains(t, rec.Body.String(), `"details":{"field":"amount"}`)
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrValidationFailed, "amount must be positive")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, _ = newContext()
	err := HandleAppError(c, errors.New("connection reset"))
	assert.Error(t, err)
}

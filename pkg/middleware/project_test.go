package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/project-hub/internal/adapter/repository"
	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/usecase/project"
)

func newContext(projectID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/projects/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(projectID)
	return c, rec
}

func newProjectService() *project.ProjectService {
	clock := func() time.Time { return time.Date(2026, time.January, 2, 10, 0, 0, 0, time.UTC) }
	synth := project.NewSynthesizer(project.DefaultSynthesizerConfig(), clock, nil, project.DefaultOverrides())
	return project.NewProjectService(repository.NewSeedCatalogRepository(), synth, nil)
}

func TestLoadProject(t *testing.T) {
	mw := LoadProject(newProjectService())

	t.Run("catalog project", func(t *testing.T) {
		c, _ := newContext("2")
		var loaded *entities.ProjectDetails
		err := mw(func(c echo.Context) error {
			var ok bool
			loaded, ok = ProjectFromContext(c)
			require.True(t, ok)
			return nil
		})(c)
		require.NoError(t, err)
		assert.Equal(t, "Mobile Banking Onboarding", loaded.Name)
	})

	t.Run("unknown id loads a placeholder", func(t *testing.T) {
		c, _ := newContext("404")
		err := mw(func(c echo.Context) error {
			d, ok := ProjectFromContext(c)
			require.True(t, ok)
			assert.Equal(t, "404", d.ID)
			return nil
		})(c)
		require.NoError(t, err)
	})

	t.Run("blank id", func(t *testing.T) {
		c, rec := newContext("  ")
		called := false
		err := mw(func(echo.Context) error {
			called = true
			return nil
		})(c)
		require.NoError(t, err)
		assert.False(t, called)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1001), body["code"])
	})

	t.Run("id is used as sent", func(t *testing.T) {
		c, _ := newContext(" 2 ")
		err := mw(func(c echo.Context) error {
			d, ok := ProjectFromContext(c)
			require.True(t, ok)
			assert.Equal(t, " 2 ", d.ID)
			assert.Equal(t, c.Param("id"), d.ID)
			return nil
		})(c)
		require.NoError(t, err)
	})
}

func TestCurrentUser(t *testing.T) {
	c, _ := newContext("1")

	_, ok := CurrentUserFromContext(c)
	assert.False(t, ok)

	user := entities.NewUser("JasonD", "", "")
	err := CurrentUser(user)(func(c echo.Context) error {
		got, ok := CurrentUserFromContext(c)
		require.True(t, ok)
		assert.Equal(t, "jasond", got.ID)
		return nil
	})(c)
	require.NoError(t, err)
}

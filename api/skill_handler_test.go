package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taranjyot-singh/portfolio-backend/models"
)

func TestCreateSkillCategory(t *testing.T) {
	router, stores := newTestRouter()

	payload := `{"category": "Backend", "skills": ["Go", "Python"]}`

	recorder := doRequest(t, router, http.MethodPost, "/api/skills", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created models.Skill
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Backend", created.Category)
	assert.Equal(t, []string{"Go", "Python"}, created.Skills)
	assert.Len(t, stores.skills.skills, 1)
}

func TestCreateSkillCategoryMissingCategory(t *testing.T) {
	router, _ := newTestRouter()

	recorder := doRequest(t, router, http.MethodPost, "/api/skills", `{"skills": ["Go"]}`)
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestListSkillsSortedByCategory(t *testing.T) {
	router, stores := newTestRouter()

	for _, category := range []string{"Mobile", "Backend", "Frontend"} {
		skill := models.NewSkill(models.SkillCreate{Category: category, Skills: []string{"x"}})
		require.NoError(t, stores.skills.Add(context.Background(), &skill))
	}

	recorder := doRequest(t, router, http.MethodGet, "/api/skills", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var skills []models.Skill
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &skills))
	require.Len(t, skills, 3)
	assert.Equal(t, "Backend", skills[0].Category)
	assert.Equal(t, "Frontend", skills[1].Category)
	assert.Equal(t, "Mobile", skills[2].Category)
}

func TestUpsertSkillCategoryReplacesList(t *testing.T) {
	router, stores := newTestRouter()

	first := doRequest(t, router, http.MethodPut, "/api/skills/Backend", `["Go"]`)
	require.Equal(t, http.StatusOK, first.Code)

	var created models.Skill
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &created))

	second := doRequest(t, router, http.MethodPut, "/api/skills/Backend", `["Go", "Rust"]`)
	require.Equal(t, http.StatusOK, second.Code)

	var updated models.Skill
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, []string{"Go", "Rust"}, updated.Skills)
	assert.Len(t, stores.skills.skills, 1)
}

func TestUpsertSkillCategoryEncodedName(t *testing.T) {
	router, _ := newTestRouter()

	path := "/api/skills/" + url.PathEscape("DevOps & Tools")
	recorder := doRequest(t, router, http.MethodPut, path, `["Docker"]`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var skill models.Skill
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &skill))
	assert.Equal(t, []string{"Docker"}, skill.Skills)
}

func TestUpsertSkillCategoryMalformedBody(t *testing.T) {
	router, _ := newTestRouter()

	recorder := doRequest(t, router, http.MethodPut, "/api/skills/Backend", `{"not": "a list"}`)
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

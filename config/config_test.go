package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090"}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(c, "MISSING", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BROKEN": "abc"}

	assert.Equal(t, 30, GetInt(c, "TIMEOUT", 180))
	assert.Equal(t, 180, GetInt(c, "BROKEN", 180))
	assert.Equal(t, 180, GetInt(c, "MISSING", 180))
}

func TestRequire(t *testing.T) {
	c := map[string]string{"MONGO_URL": "mongodb://localhost:27017", "EMPTY": ""}

	val, err := Require(c, "MONGO_URL")
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", val)

	_, err = Require(c, "DB_NAME")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")

	_, err = Require(c, "EMPTY")
	require.Error(t, err)
}

func TestNewReadsProcessEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "value")

	c := New()
	assert.Equal(t, "value", c["CONFIG_TEST_KEY"])
}

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acalderon/encuestas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAskCommand(t *testing.T) {
	cmd := newAskCommand()

	assert.Equal(t, "ask [question]", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestNewAskCommand_RunE_configError(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newAskCommand()
	cmd.SetArgs([]string{"¿Cuál es el ánimo?"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not be read")
}

func TestNewAskCommand_RunE_missingSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	setConfigFile(t, cfgPath)

	cmd := newAskCommand()
	cmd.SetArgs([]string{"¿Cuál es el ánimo?"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sheets.ReadSnapshot()")
}

func TestNewAskCommand_RunE_answersFromSnapshot(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1beta/models":
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
				"models": []map[string]string{{"name": "models/gemini-1.5-pro"}},
			}))
		case r.Method == http.MethodPost && r.URL.Path == "/v1beta/models/gemini-1.5-pro:generateContent":
			assert.Equal(t, "test-api-key", r.Header.Get("x-goog-api-key"))
			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
				"text": "El ánimo general es positivo.",
			}))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer mockServer.Close()

	tmpDir := t.TempDir()
	testutil.WriteSnapshotFixture(t, tmpDir, `[["Fecha", "Ánimo"], ["2023-10-26", "Contento"]]`)
	cfgPath := testutil.SetupTestConfig(t, tmpDir, testutil.WithSetting("gemini", map[string]any{
		"base_url": mockServer.URL,
	}))
	setConfigFile(t, cfgPath)
	t.Setenv("GOOGLE_API_KEY", "test-api-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")

	cmd := newAskCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"¿Cuál es el ánimo general?"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "El ánimo general es positivo.\n", out.String())
}

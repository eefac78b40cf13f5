package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"voicecal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "parse", "下週一上午9點面試新員工", "--reference", "2024-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "下週一")
	assert.Contains(t, out, "上午9點")
	assert.Contains(t, out, "面試")
	assert.Contains(t, out, "2024-05-06")
}

func TestParseCmd_BadReference(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "parse", "明天", "--reference", "tomorrow")
	assert.Error(t, err)
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	input := filepath.Join(dir, "texts.txt")
	require.NoError(t, os.WriteFile(input, []byte("# smoke\n明天下午3點開會\n\n找時間聊聊\n"), 0o644))

	out, err := execute(t, "batch", "--input", input, "--format", "json", "--reference", "2024-05-01", "--workers", "2")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "明天下午3點開會", results[0]["text"])
	assert.Equal(t, "2024-05-02", results[0]["resolved_date"])
	assert.Equal(t, "15:00", results[0]["resolved_time"])
	assert.Equal(t, "找時間聊聊", results[1]["text"])
	assert.NotContains(t, results[1], "date_marker")
}

func TestBatchCmd_Validation(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "batch")
	assert.Error(t, err, "--input is required")

	_, err = execute(t, "batch", "--input", "x.txt", "--format", "xml")
	assert.ErrorContains(t, err, "unknown --format")
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("VOICECAL_WEBHOOK_SECRET", "s3cret")

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, defaultConfigPath)

	_, err = execute(t, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "s3cret")

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "******", shown.Webhook.Secret)
	assert.Equal(t, config.Default().Workflow.WebhookURL, shown.Workflow.WebhookURL)
	assert.Equal(t, config.Default().Harness.Delay, shown.Harness.Delay)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "voicecal dev\n", out)
}

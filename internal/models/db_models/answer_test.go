package db_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValueJSON(t *testing.T) {
	data, err := json.Marshal(TextValue("Slack"))
	require.NoError(t, err)
	assert.Equal(t, `"Slack"`, string(data))

	data, err = json.Marshal(MultiValue([]string{"Slack", "Email"}))
	require.NoError(t, err)
	assert.Equal(t, `["Slack","Email"]`, string(data))

	var single AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`"Email"`), &single))
	assert.False(t, single.IsList())
	assert.Equal(t, "Email", single.Single())

	var multi AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &multi))
	assert.True(t, multi.IsList())
	assert.Equal(t, []string{"a", "b"}, multi.List())

	var bad AnswerValue
	assert.Error(t, json.Unmarshal([]byte(`{"nested":"object"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

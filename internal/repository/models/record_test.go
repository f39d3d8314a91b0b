package models

import (
	"testing"

	"medmcq/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentJSON_ValueScan(t *testing.T) {
	in := ContentJSON{
		ClinicalScenario: "scenario",
		Question:         "question",
		Options:          domain.Options{A: "a", C: "c"},
		CorrectAnswer:    "C",
		Explanation:      "why",
	}

	v, err := in.Value()
	require.NoError(t, err)
	s, ok := v.(string)
	require.True(t, ok)
	assert.Contains(t, s, `"clinical_scenario":"scenario"`)

	var fromString ContentJSON
	require.NoError(t, fromString.Scan(s))
	assert.Equal(t, in, fromString)

	var fromBytes ContentJSON
	require.NoError(t, fromBytes.Scan([]byte(s)))
	assert.Equal(t, in, fromBytes)
}

func TestContentJSON_ScanEmptyValues(t *testing.T) {
	for _, v := range []interface{}{nil, "", []byte("null")} {
		c := ContentJSON{Question: "stale"}
		require.NoError(t, c.Scan(v))
		assert.Equal(t, ContentJSON{}, c)
	}
}

func TestContentJSON_ScanErrors(t *testing.T) {
	var c ContentJSON
	assert.Error(t, c.Scan(42))
	assert.Error(t, c.Scan("{not json"))
}

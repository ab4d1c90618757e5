package checks

import (
	"strings"
	"testing"

	"ua-capabilities/core/classifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `Pattern,Parent,Browser,Device_Type
DefaultProperties,,Default Browser,
*,DefaultProperties,,
Mozilla/5.0 (iPhone*,DefaultProperties,Safari,Mobile Phone
Mozilla/5.0 (iPhone*Version/17*,Mozilla/5.0 (iPhone*,,
*bot*,DefaultProperties,Bot,
`

func newTestEngine(t *testing.T) *classifier.Engine {
	t.Helper()
	entries, props, err := classifier.Load(classifier.NewCSVReader(strings.NewReader(testDataset), ','), classifier.LoadOptions{})
	require.NoError(t, err)
	eng, err := classifier.NewEngine(entries, props, classifier.Options{})
	require.NoError(t, err)
	return eng
}

func TestCheckDataset(t *testing.T) {
	report, err := CheckDataset(newTestEngine(t))
	require.NoError(t, err)

	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, 5, report.Entries)
	assert.Equal(t, 2, report.Properties)
	assert.Equal(t, 1, report.Roots)
	assert.Equal(t, 3, report.MaxDepth)
	assert.True(t, report.DefaultPattern)
	assert.GreaterOrEqual(t, report.Buckets, 1)
}

func TestCheckDataset_NilEngine(t *testing.T) {
	report, err := CheckDataset(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

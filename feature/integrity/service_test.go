package integrity

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ua-capabilities/core/classifier"
	"ua-capabilities/core/storage"
	"ua-capabilities/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDataset = `Pattern,Parent,Browser
DefaultProperties,,Default Browser
*,DefaultProperties,
Mozilla/5.0 (iPhone*,DefaultProperties,Safari
`

func newTestEngine(t *testing.T) *classifier.Engine {
	t.Helper()
	entries, props, err := classifier.Load(classifier.NewCSVReader(strings.NewReader(testDataset), ','), classifier.LoadOptions{})
	require.NoError(t, err)
	eng, err := classifier.NewEngine(entries, props, classifier.Options{})
	require.NoError(t, err)
	return eng
}

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "browscap.csv")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0o600))
	return path
}

func TestService_CheckAll(t *testing.T) {
	svc := NewService(newTestEngine(t), classifier.FileSource{Path: writeDataset(t)}, zap.NewNop())

	report := svc.CheckAll(context.Background())
	assert.Equal(t, "ok", report.Status)
	require.NotNil(t, report.Dataset)
	assert.Equal(t, 3, report.Dataset.Entries)
	require.NotNil(t, report.Source)
	assert.Equal(t, "file", report.Source.Kind)
}

func TestService_CheckAll_SourceGone(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "datasets").Return(false, nil)
	src := storage.ObjectSource{Client: client, Bucket: "datasets", Object: "browscap.csv"}

	svc := NewService(newTestEngine(t), src, zap.NewNop())
	report := svc.CheckAll(context.Background())

	assert.Equal(t, "error", report.Status)
	assert.NotNil(t, report.Dataset)
	assert.Equal(t, "error", report.Source.Status)
}

func TestService_CheckAll_NoEngine(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())
	report := svc.CheckAll(context.Background())

	assert.Equal(t, "error", report.Status)
	assert.Nil(t, report.Dataset)
	assert.Nil(t, report.Source)
}

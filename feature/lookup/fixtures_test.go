package lookup

import (
	"strings"
	"testing"

	"ua-capabilities/core/cache"
	"ua-capabilities/core/classifier"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDataset = `Pattern,Parent,Browser,Device_Type,isMobileDevice
DefaultProperties,,Default Browser,,false
*,DefaultProperties,,,
Mozilla/5.0 (iPhone*,DefaultProperties,Safari,Mobile Phone,true
Mozilla/5.0 (iPad*,DefaultProperties,Safari,Tablet,true
curl/*,DefaultProperties,curl,Desktop,
`

const uaIPhone = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"

func newTestEngine(t *testing.T) *classifier.Engine {
	t.Helper()
	entries, props, err := classifier.Load(classifier.NewCSVReader(strings.NewReader(testDataset), ','), classifier.LoadOptions{})
	require.NoError(t, err)
	eng, err := classifier.NewEngine(entries, props, classifier.Options{})
	require.NoError(t, err)
	return eng
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(newTestEngine(t), cache.Config{TTLSeconds: 60, Size: 100}, zap.NewNop())
}

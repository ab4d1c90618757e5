package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDataset = `"Pattern","Parent","Browser","Version","Platform","Device_Type","isMobileDevice","Comment"
"DefaultProperties","","Default Browser","0.0","","","false",""
"*","DefaultProperties","","","","","",""
"Mozilla/5.0 (iPhone*","DefaultProperties","Safari","","iOS","Mobile Phone","true","iPhone"
"Mozilla/5.0 (iPhone*Version/17.0*","Mozilla/5.0 (iPhone*","","17.0","","","",""
"Mozilla/5.0 (iPad*","DefaultProperties","Safari","","iOS","Tablet","true",""
"Mozilla/5.0 (Windows NT 10.0*) *Chrome/120.*","DefaultProperties","Chrome","120.0","Win10","Desktop","false",""
"Mozilla/5.0 (*Linux*Android*) *Chrome/*","DefaultProperties","Chrome","","Android","Mobile Phone","true",""
"Googlebot/2.?","DefaultProperties","Googlebot","2.1","","Bot","false","crawler, search"
`

const (
	uaIPhone17 = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaIPhone16 = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	uaIPad     = "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaWindows  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaAndroid  = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
)

// loadCSV parses an inline dataset.
func loadCSV(t testing.TB, data string) ([]Entry, []string) {
	t.Helper()
	entries, props, err := Load(NewCSVReader(strings.NewReader(data), 0), LoadOptions{})
	require.NoError(t, err)
	return entries, props
}

// newTestEngine builds an engine from an inline dataset.
func newTestEngine(t testing.TB, data string) *Engine {
	t.Helper()
	entries, props := loadCSV(t, data)
	eng, err := NewEngine(entries, props, Options{})
	require.NoError(t, err)
	return eng
}

package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultDeviceTypeProperty is the dataset column the mobile/tablet flags
// are derived from.
const DefaultDeviceTypeProperty = "Device_Type"

var (
	tabletDeviceTypes = []string{"Tablet"}
	mobileDeviceTypes = []string{"Mobile Phone", "Mobile Device", "Tablet", "Ebook Reader"}
)

// Options configures engine construction.
type Options struct {
	LoadOptions
	// DeviceTypeProperty overrides DefaultDeviceTypeProperty.
	DeviceTypeProperty string
	// Logger receives build-phase progress. Lookups never log.
	Logger *zap.Logger
}

// Stats summarizes a built engine.
type Stats struct {
	Source      string        `json:"source"`
	Entries     int           `json:"entries"`
	Properties  int           `json:"properties"`
	Index       IndexStats    `json:"index"`
	Inheritance ResolverStats `json:"inheritance"`
	BuildTime   time.Duration `json:"build_time_ns"`
}

// Engine answers lookups against an immutable, fully validated index.
type Engine struct {
	index      *Index
	resolver   *Resolver
	properties []string
	deviceCol  int
	stats      Stats
}

// Initialize reads src and builds an engine. Every step must succeed; a
// partially built engine is never returned.
func Initialize(ctx context.Context, src Source, opts Options) (*Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	rows, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	entries, properties, err := Load(rows, opts.LoadOptions)
	closeErr := rows.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close dataset source: %w", closeErr)
	}

	log.Info("Dataset loaded",
		zap.String("source", src.Name()),
		zap.Int("entries", len(entries)),
		zap.Int("properties", len(properties)),
		zap.Duration("elapsed", time.Since(start)))

	opts.Logger = log
	eng, err := NewEngine(entries, properties, opts)
	if err != nil {
		return nil, err
	}
	eng.stats.Source = src.Name()
	eng.stats.BuildTime = time.Since(start)
	return eng, nil
}

// NewEngine compiles, indexes and validates already loaded entries.
func NewEngine(entries []Entry, properties []string, opts Options) (*Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	compiled := make([]CompiledPattern, len(entries))
	for i, entry := range entries {
		cp, err := Compile(entry, i)
		if err != nil {
			return nil, err
		}
		compiled[i] = cp
	}

	index, err := BuildIndex(compiled)
	if err != nil {
		return nil, err
	}

	resolver := NewResolver(entries, properties)
	inheritance, err := resolver.Validate()
	if err != nil {
		return nil, err
	}

	deviceProp := opts.DeviceTypeProperty
	if deviceProp == "" {
		deviceProp = DefaultDeviceTypeProperty
	}
	deviceCol := -1
	for i, name := range properties {
		if strings.EqualFold(name, deviceProp) {
			deviceCol = i
			break
		}
	}

	eng := &Engine{
		index:      index,
		resolver:   resolver,
		properties: properties,
		deviceCol:  deviceCol,
		stats: Stats{
			Entries:     len(entries),
			Properties:  len(properties),
			Index:       index.Stats(),
			Inheritance: inheritance,
			BuildTime:   time.Since(start),
		},
	}

	if deviceCol < 0 {
		log.Warn("Device type property not found, mobile and tablet flags will be false",
			zap.String("property", deviceProp))
	}
	log.Info("Pattern index built",
		zap.Int("patterns", eng.stats.Index.Patterns),
		zap.Int("buckets", eng.stats.Index.Buckets),
		zap.Int("largest_bucket", eng.stats.Index.LargestBucket),
		zap.Int("catch_all", eng.stats.Index.CatchAll),
		zap.Int("gram_indexed", eng.stats.Index.GramIndexed),
		zap.Int("roots", inheritance.Roots),
		zap.Int("max_depth", inheritance.MaxDepth),
		zap.Duration("elapsed", time.Since(start)))

	return eng, nil
}

// Lookup classifies userAgent. It only fails for blank input; anything else
// resolves, at worst to the default "*" entry.
func (e *Engine) Lookup(userAgent string) (Capabilities, error) {
	if strings.TrimSpace(userAgent) == "" {
		return Capabilities{}, fmt.Errorf("%w: empty user agent", ErrInvalidInput)
	}

	slot, ok := e.index.Query(userAgent)
	if !ok {
		slot = e.index.DefaultEntry()
	}

	caps, err := e.resolver.Resolve(slot)
	if err != nil {
		return Capabilities{}, err
	}

	if e.deviceCol >= 0 {
		deviceType := caps.Properties[e.deviceCol].Value
		caps.IsTablet = oneOf(deviceType, tabletDeviceTypes)
		caps.IsMobile = oneOf(deviceType, mobileDeviceTypes)
	}
	return caps, nil
}

// Properties returns the property schema in header order.
func (e *Engine) Properties() []string {
	out := make([]string, len(e.properties))
	copy(out, e.properties)
	return out
}

// Stats returns build statistics.
func (e *Engine) Stats() Stats {
	return e.stats
}

func oneOf(value string, set []string) bool {
	for _, s := range set {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

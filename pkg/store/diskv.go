package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// Keys written by the widget.
const (
	KeyMoodData               = "moodData"
	KeyUserActivity           = "userActivity"
	KeyCookies                = "cookies"
	KeyNotificationPermission = "notificationPermission"
)

// KV is the persistent key-value adapter. Values are JSON encoded. Failures
// are contained here: callers get a bool, the reason goes to the log.
type KV struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

// Option configures a KV.
type Option func(*KV)

// WithLogger sets the logger used to report contained failures.
func WithLogger(l *zap.Logger) Option {
	return func(kv *KV) {
		if l != nil {
			kv.log = l
		}
	}
}

// Load opens the key-value store rooted at the configured base path.
func Load(cfg Config, opts ...Option) (*KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}

	kv := &KV{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(kv)
	}
	return kv, nil
}

func (kv *KV) BasePath() string {
	return kv.basePath
}

// Save serializes value under key. It never panics or returns an error;
// false means the value was not persisted.
func (kv *KV) Save(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		kv.log.Warn("store: save failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := kv.d.Write(key, data); err != nil {
		kv.log.Warn("store: save failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Load decodes the value under key into out. It returns false when the key
// is absent or the payload does not parse; both mean "no prior value".
func (kv *KV) Load(key string, out any) bool {
	if !kv.d.Has(key) {
		return false
	}
	data, err := kv.d.Read(key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			kv.log.Warn("store: load failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		kv.log.Debug("store: discarding unreadable value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Has reports whether key holds a value.
func (kv *KV) Has(key string) bool {
	return kv.d.Has(key)
}

// Erase removes key. Erasing an absent key succeeds.
func (kv *KV) Erase(key string) bool {
	if !kv.d.Has(key) {
		return true
	}
	if err := kv.d.Erase(key); err != nil {
		kv.log.Warn("store: erase failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Keys lists stored keys in lexical order.
func (kv *KV) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range kv.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Keys are flat file names in the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: sanitizeKey(s),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

func sanitizeKey(s string) string {
	return strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(s)
}

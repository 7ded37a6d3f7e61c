package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	maxAssetBytes = 20 << 20
	storagePrefix = "s3://"
)

// AssetSource fetches the raw bytes of a poster or watermark by reference.
type AssetSource interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// ObjectReader is the part of the object store used for assets.
type ObjectReader interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// HTTPSource fetches assets by URL.
type HTTPSource struct {
	client *http.Client
}

func NewHTTPSource(client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
}

// StorageSource fetches assets from the object store; refs are "s3://key".
type StorageSource struct {
	store ObjectReader
}

func NewStorageSource(store ObjectReader) *StorageSource {
	return &StorageSource{store: store}
}

func (s *StorageSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	key := strings.TrimPrefix(ref, storagePrefix)
	if key == "" {
		return nil, errors.New("empty object key")
	}
	return s.store.GetObject(ctx, key)
}

// SchemeSource sends "s3://" refs to the object store and everything else over HTTP.
type SchemeSource struct {
	HTTP    AssetSource
	Storage AssetSource // May be nil when no object store is configured
}

func (s *SchemeSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, storagePrefix) {
		if s.Storage == nil {
			return nil, errors.New("object storage is not configured")
		}
		return s.Storage.Fetch(ctx, ref)
	}
	return s.HTTP.Fetch(ctx, ref)
}

// CachedSource keeps fetched assets in memory for ttlSeconds.
type CachedSource struct {
	next       AssetSource
	cache      *freecache.Cache
	ttlSeconds int
}

// NewCachedSource wraps next with a cache of cacheSize bytes. Assets larger than
// 1/1024 of the cache size are not cached.
func NewCachedSource(next AssetSource, cacheSize, ttlSeconds int) *CachedSource {
	return &CachedSource{
		next:       next,
		cache:      freecache.NewCache(cacheSize),
		ttlSeconds: ttlSeconds,
	}
}

func (s *CachedSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if data, err := s.cache.Get([]byte(ref)); err == nil {
		log.Tracef("asset %s found in cache", ref)
		return data, nil
	}
	data, err := s.next.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set([]byte(ref), data, s.ttlSeconds); err != nil {
		log.Debugf("asset %s not cached: %s", ref, err)
	}
	return data, nil
}

type asset struct {
	name string
	ref  string
	data []byte
	kind string // fpdf image type
}

// loadAssets fetches every asset in order, waiting for each. All failures are
// collected so the abort message names every asset that could not be loaded.
// requireAssets names every asset that has no ref configured.
func requireAssets(assets ...*asset) error {
	var err error
	for _, a := range assets {
		if strings.TrimSpace(a.ref) == "" {
			err = multierr.Append(err, fmt.Errorf("%s %w", a.name, ErrAssetNotConfigured))
		}
	}
	return err
}

func loadAssets(ctx context.Context, src AssetSource, assets []*asset) error {
	var err error
	for _, a := range assets {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return multierr.Append(err, ctxErr)
		}
		data, fetchErr := src.Fetch(ctx, a.ref)
		if fetchErr != nil {
			err = multierr.Append(err, fmt.Errorf("could not load %s from %s: %w", a.name, a.ref, fetchErr))
			continue
		}
		kind, typeErr := imageType(data)
		if typeErr != nil {
			err = multierr.Append(err, fmt.Errorf("could not load %s from %s: %w", a.name, a.ref, typeErr))
			continue
		}
		a.data, a.kind = data, kind
	}
	return err
}

func imageType(data []byte) (string, error) {
	switch ct := http.DetectContentType(data); ct {
	case "image/png":
		return "PNG", nil
	case "image/jpeg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported image type %s", ct)
	}
}

package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"page-server/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
)

// ErrAssetNotFound is returned by Assets when the requested file does not exist.
var ErrAssetNotFound = errors.New("asset not found")

// Assets is a source of public files. Names are slash separated and relative.
// Send writes the named file as the response, or returns ErrAssetNotFound
// without touching the response.
type Assets interface {
	Send(c *fiber.Ctx, name string) error
}

// DirAssets serves assets from a local directory.
type DirAssets struct {
	root string
}

// NewDirAssets creates an asset source rooted at dir.
func NewDirAssets(dir string) *DirAssets {
	return &DirAssets{root: dir}
}

// Send serves the file through fiber, which handles content type, Range and
// conditional requests.
func (a *DirAssets) Send(c *fiber.Ctx, name string) error {
	file := filepath.Join(a.root, filepath.FromSlash(name))
	info, err := os.Stat(file)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return ErrAssetNotFound
	}
	if err != nil {
		return err
	}
	return c.SendFile(file)
}

// StorageAssets serves assets from an object storage bucket.
type StorageAssets struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageAssets creates an asset source reading objects under prefix in bucket.
func NewStorageAssets(client storage.Client, bucket, prefix string) *StorageAssets {
	return &StorageAssets{client: client, bucket: bucket, prefix: prefix}
}

// Send streams the object. The body is not buffered; fasthttp closes the
// object once the response is written.
func (a *StorageAssets) Send(c *fiber.Ctx, name string) error {
	ctx := c.UserContext()
	key := path.Join(a.prefix, name)

	// GetObject is lazy, so existence is checked up front.
	info, err := a.client.StatObject(ctx, a.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	if !info.LastModified.IsZero() {
		if notModified(c, info.LastModified) {
			return c.SendStatus(fiber.StatusNotModified)
		}
		c.Set(fiber.HeaderLastModified, info.LastModified.UTC().Format(http.TimeFormat))
	}

	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get object %s: %w", key, err)
	}

	switch {
	case path.Ext(name) != "":
		c.Type(path.Ext(name))
	case info.ContentType != "":
		c.Set(fiber.HeaderContentType, info.ContentType)
	default:
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	}
	return c.SendStream(obj, int(info.Size))
}

// Check verifies that the bucket is reachable.
func (a *StorageAssets) Check(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", a.bucket)
	}
	return nil
}

// notModified reports whether If-Modified-Since covers modTime. HTTP dates
// carry whole seconds only.
func notModified(c *fiber.Ctx, modTime time.Time) bool {
	since, err := http.ParseTime(c.Get(fiber.HeaderIfModifiedSince))
	if err != nil {
		return false
	}
	return !modTime.Truncate(time.Second).After(since)
}

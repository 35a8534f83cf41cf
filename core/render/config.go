package render

// Config holds configuration for the page renderer.
type Config struct {
	// Dir is the rendering root. It holds the pages/ and public/ directories.
	Dir string `mapstructure:"dir" default:"./app"`
	// Assets selects the source of public assets (dir, storage).
	Assets string `mapstructure:"assets" default:"dir"`
	// AssetPrefix is the object key prefix of public assets in the storage bucket.
	AssetPrefix string `mapstructure:"asset_prefix" default:"public"`
}

const (
	AssetsDir     = "dir"
	AssetsStorage = "storage"
)

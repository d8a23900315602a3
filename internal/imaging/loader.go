package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache provides thread-safe caching of decoded images keyed by file path.
//
// Every image is normalized to *image.RGBA when it is first loaded, so the
// sampling and region functions in this package see a single pixel layout no
// matter which decoder produced the image. The format name reported by the
// decoder and the alpha/depth properties of the original pixel model are
// kept alongside the pixels for LoadImageInfo.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
// A long-running server that inspects many screenshots should evict them once
// an audit is finished.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/screenshot.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sample, err := imaging.SampleColor(img, 10, 10)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*cachedImage
}

type cachedImage struct {
	pixels   *image.RGBA
	format   string
	hasAlpha bool
	depth    string
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*cachedImage),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Parameters:
//   - path: File path to the image. PNG, JPEG, GIF, BMP, TIFF and WebP are
//     supported.
//
// Returns:
//   - *image.RGBA: The decoded pixels. Bounds keep the origin the decoder
//     reported, which is (0,0) for every supported format.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
func (c *ImageCache) Load(path string) (*image.RGBA, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.pixels, nil
}

func (c *ImageCache) load(path string) (*cachedImage, error) {
	c.mu.RLock()
	if entry, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	hasAlpha, depth := pixelModel(src)
	entry := &cachedImage{
		pixels:   clone.AsRGBA(src),
		format:   format,
		hasAlpha: hasAlpha,
		depth:    depth,
	}

	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// pixelModel reports whether the decoded image has any translucent pixel
// and its bit depth per channel.
func pixelModel(img image.Image) (hasAlpha bool, depth string) {
	depth = "8-bit"
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		depth = "16-bit"
	}
	if o, ok := img.(interface{ Opaque() bool }); ok {
		hasAlpha = !o.Opaque()
	}
	return hasAlpha, depth
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*cachedImage)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the decoder: "png", "jpeg",
	// "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether any pixel is less than fully opaque.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image into the cache and returns its metadata.
//
// Unlike a purely extension-based check, the format comes from the decoder
// that accepted the file contents, so a PNG saved with a ".jpg" name is
// still reported as "png".
//
// # Color Depth Detection
//
// Color depth is determined by the decoded image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := entry.pixels.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        entry.format,
		ColorDepth:    entry.depth,
		HasAlpha:      entry.hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

package texture

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/logger"
)

// Upload creates a repeating, mipmapped GL texture from img.
func Upload(img *image.RGBA) (uint32, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("upload texture: empty image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

// Cache uploads each texture file once. Failed loads are remembered so a bad
// path is reported a single time rather than every frame.
type Cache struct {
	ids    map[string]uint32
	failed map[string]error
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{
		ids:    make(map[string]uint32),
		failed: make(map[string]error),
	}
}

// Get returns the texture for path, loading it on first use.
func (c *Cache) Get(path string) (uint32, error) {
	if id, ok := c.ids[path]; ok {
		return id, nil
	}
	if err, ok := c.failed[path]; ok {
		return 0, err
	}

	img, err := LoadFile(path)
	if err == nil {
		var id uint32
		if id, err = Upload(img); err == nil {
			c.ids[path] = id
			logger.Debug("texture loaded",
				zap.String("path", path),
				zap.Int("width", img.Bounds().Dx()),
				zap.Int("height", img.Bounds().Dy()),
			)
			return id, nil
		}
	}

	c.failed[path] = err
	logger.Warn("texture unavailable", zap.String("path", path), zap.Error(err))
	return 0, err
}

// Destroy releases every cached texture.
func (c *Cache) Destroy() {
	for path, id := range c.ids {
		gl.DeleteTextures(1, &id)
		delete(c.ids, path)
	}
	clear(c.failed)
}

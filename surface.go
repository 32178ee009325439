package wlframe

import (
	"deedles.dev/wlframe/geom"
	"deedles.dev/wlframe/internal/fimg"
	"deedles.dev/wlframe/internal/shm"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/image/draw"
)

// Surface is the surface that the chrome is drawn onto, along with
// the buffers that back it.
type Surface interface {
	// Buffer returns a writable buffer of the given size. reused is
	// true if the buffer still holds whatever was last drawn into it.
	Buffer(size geom.Point[int]) (buf draw.Image, reused bool, err error)

	// Damage marks part of the buffer as changed.
	Damage(r geom.Rect[int])

	// DamageAll marks the whole surface as changed. It is used for
	// surfaces that do not support partial damage.
	DamageAll()

	// Commit attaches the buffer and applies pending damage.
	Commit() error

	// Unmap removes the buffer from the surface, hiding the chrome.
	Unmap() error
}

// MemSurface is a Surface backed by a single in-memory buffer in
// ARGB8888 format. It keeps a record of damage for inspection.
type MemSurface struct {
	img *fimg.BGRA

	pending    []geom.Rect[int]
	pendingAll bool

	damage    []geom.Rect[int]
	damageAll bool
	commits   int
	mapped    bool
}

func (s *MemSurface) Buffer(size geom.Point[int]) (draw.Image, bool, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, false, errors.Errorf("invalid buffer size %v", size)
	}

	if (s.img != nil) && (s.img.Rect.Size() == size.ImagePoint()) {
		return s.img, true, nil
	}

	s.img = fimg.NewBGRA(geom.Sized(size).ImageRect())
	return s.img, false, nil
}

func (s *MemSurface) Damage(r geom.Rect[int]) {
	s.pending = append(s.pending, r)
}

func (s *MemSurface) DamageAll() {
	s.pendingAll = true
}

func (s *MemSurface) Commit() error {
	if s.img == nil {
		return errors.New("commit without a buffer")
	}

	s.damage, s.pending = s.pending, nil
	s.damageAll, s.pendingAll = s.pendingAll, false
	s.commits++
	s.mapped = true
	return nil
}

func (s *MemSurface) Unmap() error {
	s.mapped = false
	s.commits++
	return nil
}

// Format returns the wl_shm format that the buffer would be attached
// with.
func (s *MemSurface) Format() shm.Format {
	if s.img == nil {
		return shm.FormatARGB8888
	}
	return s.img.Format()
}

// Image returns the buffer, or nil if none has been requested yet.
func (s *MemSurface) Image() *fimg.BGRA {
	return s.img
}

// LastDamage returns the damage applied by the latest commit and
// whether it covered the whole surface.
func (s *MemSurface) LastDamage() (rects []geom.Rect[int], all bool) {
	return slices.Clone(s.damage), s.damageAll
}

// Commits returns the number of commits and unmaps so far.
func (s *MemSurface) Commits() int {
	return s.commits
}

// Mapped reports whether a buffer is currently attached.
func (s *MemSurface) Mapped() bool {
	return s.mapped
}

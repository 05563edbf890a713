// Package collection holds the loaded pictures and a circular cursor over them.
package collection

import (
	"errors"
	"fmt"
	"sync"

	"photoviewer/internal/picture"
)

// beforeFirst is the cursor value before any navigation has happened.
const beforeFirst = -1

var (
	// ErrEmptyCollection is returned when navigation or lookup is attempted
	// while no pictures are loaded.
	ErrEmptyCollection = errors.New("no pictures have been loaded")
	// ErrIndexOutOfRange is returned for a lookup outside the loaded pictures.
	ErrIndexOutOfRange = errors.New("picture index out of range")
)

// Loader builds the picture and preview for a single path.
type Loader interface {
	Load(path string) (*picture.Picture, *picture.Preview)
}

// PictureCollection is an ordered set of pictures, a parallel set of
// previews built from the same paths, and a cursor into them.
//
// Load replaces the whole content and resets the cursor to before the first
// picture, so the next call to Next returns the first newly loaded picture.
//
// All methods are safe for concurrent use; the slideshow advances the cursor
// from its own goroutine while the UI navigates.
type PictureCollection struct {
	mu       sync.RWMutex
	loader   Loader
	pictures []*picture.Picture
	previews []*picture.Preview
	index    int
}

// New creates an empty collection that builds pictures with loader.
func New(loader Loader) *PictureCollection {
	return &PictureCollection{
		loader: loader,
		index:  beforeFirst,
	}
}

// Load replaces the collection's content with one picture and one preview per
// path, in the given order, and resets the cursor. Files are decoded before
// the lock is taken, so navigation is not blocked while decoding.
func (c *PictureCollection) Load(paths []string) {
	pictures := make([]*picture.Picture, 0, len(paths))
	previews := make([]*picture.Preview, 0, len(paths))
	for _, p := range paths {
		pic, preview := c.loader.Load(p)
		pictures = append(pictures, pic)
		previews = append(previews, preview)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pictures = pictures
	c.previews = previews
	c.index = beforeFirst
}

// Clear removes all pictures and resets the cursor.
func (c *PictureCollection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pictures = nil
	c.previews = nil
	c.index = beforeFirst
}

// Next advances the cursor with wraparound and returns the picture under it.
func (c *PictureCollection) Next() (*picture.Picture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.pictures)
	if n == 0 {
		return nil, ErrEmptyCollection
	}
	c.index = (c.index + 1) % n
	return c.pictures[c.index], nil
}

// Previous moves the cursor back with wraparound and returns the picture
// under it. The sentinel takes part in the arithmetic, so from the initial
// position it lands on the second-to-last picture (the last one when only
// one is loaded).
func (c *PictureCollection) Previous() (*picture.Picture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.pictures)
	if n == 0 {
		return nil, ErrEmptyCollection
	}
	c.index = (c.index - 1 + n) % n
	return c.pictures[c.index], nil
}

// PictureByIndex returns the picture at i without moving the cursor.
func (c *PictureCollection) PictureByIndex(i int) (*picture.Picture, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkIndex(i); err != nil {
		return nil, err
	}
	return c.pictures[i], nil
}

// MoveTo places the cursor on i and returns the picture there, so that
// further navigation continues from it.
func (c *PictureCollection) MoveTo(i int) (*picture.Picture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(i); err != nil {
		return nil, err
	}
	c.index = i
	return c.pictures[i], nil
}

// checkIndex must be called with the lock held.
func (c *PictureCollection) checkIndex(i int) error {
	n := len(c.pictures)
	if n == 0 {
		return ErrEmptyCollection
	}
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return nil
}

// Previews returns a copy of the previews in load order. It is empty, not
// nil, when nothing is loaded.
func (c *PictureCollection) Previews() []*picture.Preview {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*picture.Preview, len(c.previews))
	copy(out, c.previews)
	return out
}

// Len returns the number of loaded pictures.
func (c *PictureCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pictures)
}

// Index returns the cursor position, or -1 before the first navigation.
func (c *PictureCollection) Index() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

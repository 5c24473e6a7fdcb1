package collisions

import "github.com/solarlune/resolv"

const (
	// TagTarget marks objects that can be hit by the pointer.
	TagTarget = "target"
	// TagPointer marks the single probe object used for hit tests.
	TagPointer = "pointer"

	cellSize = 8
)

// HitSpace resolves a pointer position to the id of the target under it.
type HitSpace struct {
	width, height float64
	space         *resolv.Space
	pointer       *resolv.Object
	targets       map[*resolv.Object]int
}

func NewHitSpace(width, height int) *HitSpace {
	space := resolv.NewSpace(width, height, cellSize, cellSize)
	pointer := resolv.NewObject(0, 0, 1, 1, TagPointer)
	space.Add(pointer)
	return &HitSpace{
		width:   float64(width),
		height:  float64(height),
		space:   space,
		pointer: pointer,
		targets: make(map[*resolv.Object]int),
	}
}

// Add registers a rectangular target. Later targets win when they overlap.
func (h *HitSpace) Add(id int, x, y, w, ht float64) {
	obj := resolv.NewObject(x, y, w, ht, TagTarget)
	h.space.Add(obj)
	h.targets[obj] = id
}

// Remove drops every target registered with id.
func (h *HitSpace) Remove(id int) {
	for obj, targetID := range h.targets {
		if targetID == id {
			h.space.Remove(obj)
			delete(h.targets, obj)
		}
	}
}

// Clear drops every target.
func (h *HitSpace) Clear() {
	for obj := range h.targets {
		h.space.Remove(obj)
	}
	h.targets = make(map[*resolv.Object]int)
}

// Len returns the number of registered targets.
func (h *HitSpace) Len() int {
	return len(h.targets)
}

// At returns the id of the target containing (x, y).
func (h *HitSpace) At(x, y float64) (int, bool) {
	if x < 0 || y < 0 || x >= h.width || y >= h.height {
		return 0, false
	}

	h.pointer.Position.X = x
	h.pointer.Position.Y = y
	h.pointer.Update()

	collision := h.pointer.Check(0, 0, TagTarget)
	if collision == nil {
		return 0, false
	}

	// the broadphase only narrows down to cells
	var hit *resolv.Object
	for _, obj := range collision.Objects {
		if _, ok := h.targets[obj]; !ok || !contains(obj, x, y) {
			continue
		}
		if hit == nil || h.newer(obj, hit) {
			hit = obj
		}
	}
	if hit == nil {
		return 0, false
	}
	return h.targets[hit], true
}

func (h *HitSpace) newer(a, b *resolv.Object) bool {
	for _, obj := range h.space.Objects() {
		if obj == a {
			return false
		}
		if obj == b {
			return true
		}
	}
	return false
}

func contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.Position.X && x < obj.Position.X+obj.Size.X &&
		y >= obj.Position.Y && y < obj.Position.Y+obj.Size.Y
}

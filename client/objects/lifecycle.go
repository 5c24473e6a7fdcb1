package objects

import "github.com/hajimehoshi/ebiten/v2"

// Lifecycle is driven by the tree helpers: Init when an object joins a
// tree, Update and Draw once per frame, Destroy when it leaves.
type Lifecycle interface {
	Init() error
	Destroy() error
	// Update advances one tick of animation.
	Update() error
	Draw(screen *ebiten.Image)
}

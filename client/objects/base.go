package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// BaseObject implements the tree plumbing of a GameObject. Concrete objects
// embed it and override the lifecycle methods they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childIndex
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings inside a SortedZIndexObject.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildIndex(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.List()
}

func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object %s has no parent", o.id)
	}
	return o.parent.RemoveChild(o.id)
}

// childIndex keeps children in insertion order with lookup by id.
type childIndex struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildIndex() *childIndex {
	return &childIndex{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (c *childIndex) Add(id string, obj GameObject) {
	c.idxIDObjects[id] = obj
	c.ordered = append(c.ordered, obj)
}

func (c *childIndex) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *childIndex) Remove(id string) {
	obj, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, o := range c.ordered {
		if o == obj {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}

func (c *childIndex) List() []GameObject {
	return c.ordered
}

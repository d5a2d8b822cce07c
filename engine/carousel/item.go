package carousel

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/game_object"
)

const placeholder = "—"

// Metadata is the display passthrough for one item.
type Metadata struct {
	ID          string
	Label       string
	Role        string
	Description string
}

// DisplayLabel returns the upper-cased label, or a dash when empty.
func (m Metadata) DisplayLabel() string {
	return strings.ToUpper(common.Coalesce(m.Label, placeholder))
}

// DisplayRole returns the upper-cased role, or a dash when empty.
func (m Metadata) DisplayRole() string {
	return strings.ToUpper(common.Coalesce(m.Role, placeholder))
}

// DisplayDescription returns the description, or a dash when empty.
func (m Metadata) DisplayDescription() string {
	return common.Coalesce(m.Description, placeholder)
}

// Item is one carousel entry: its scene node plus the behavioral state the orchestrators and
// the spin controller mutate.
type Item struct {
	Index     int
	Node      game_object.GameObject
	Meta      Metadata
	BaseScale float32

	Slot         Slot
	Frozen       bool
	SpinVelocity float32
	SpinTarget   float32
	Exiting      bool
}

// NewItem wraps a scene node in its initial state: parked off to the right, invisible and frozen.
//
// Parameters:
//   - index: stable position in the item list
//   - node: the scene node to drive
//   - meta: display metadata
//
// Returns:
//   - *Item: the new item
func NewItem(index int, node game_object.GameObject, meta Metadata) *Item {
	node.SetVisible(false)
	return &Item{
		Index:     index,
		Node:      node,
		Meta:      meta,
		BaseScale: 1,
		Slot:      SlotOffRight,
		Frozen:    true,
	}
}

func (it *Item) snapTransform(pos common.Vec3, scale float32) {
	it.Node.SetPosition(pos[0], pos[1], pos[2])
	it.Node.SetScale(scale)
}

func (it *Item) position() common.Vec3 {
	x, y, z := it.Node.Position()
	return common.Vec3{x, y, z}
}

func (it *Item) opacities() common.Vec3 {
	p, s := it.Node.Opacities()
	return common.Vec3{p, s}
}

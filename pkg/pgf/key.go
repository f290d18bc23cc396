package pgf

import "slices"

// Group identifies a family of mutually exclusive options.
// At most one key of a given group survives on a node, except for
// [GroupCustom].
type Group string

// GroupCustom is the group of free-form keys. It never conflicts with
// anything, including other custom keys.
const GroupCustom Group = ""

// Key is a single option attached to a node. String returns the text written
// into the node's options clause, without the trailing comma.
type Key interface {
	Group() Group
	String() string
}

// PictureKey is a key accepted by [Picture].
type PictureKey interface {
	Key
	pictureKey()
}

// AxisKey is a key accepted by [Axis].
type AxisKey interface {
	Key
	axisKey()
}

// PlotKey is a key accepted by [Plot2D].
type PlotKey interface {
	Key
	plotKey()
}

// Custom is a free-form key written verbatim and unescaped. It is accepted by
// every node type and never evicts or is evicted by another key.
type Custom string

func (Custom) Group() Group     { return GroupCustom }
func (c Custom) String() string { return string(c) }
func (Custom) pictureKey()      {}
func (Custom) axisKey()         {}
func (Custom) plotKey()         {}

// Keys is an ordered list of keys with last-write-wins conflict resolution
// per [Group]. The zero value is an empty list ready to use.
type Keys[K Key] struct {
	list []K
}

// Add removes every key of k's group and appends k. Custom keys are always
// appended. Add never fails.
//
// Add always builds a fresh backing array, so nodes copied before the call
// keep their own key list.
func (ks *Keys[K]) Add(k K) {
	next := make([]K, 0, len(ks.list)+1)
	group := k.Group()
	for _, existing := range ks.list {
		if group != GroupCustom && existing.Group() == group {
			continue
		}
		next = append(next, existing)
	}
	ks.list = append(next, k)
}

// List returns a copy of the keys in their current order.
func (ks *Keys[K]) List() []K {
	return slices.Clone(ks.list)
}

// Len returns the number of keys.
func (ks *Keys[K]) Len() int {
	return len(ks.list)
}

// Get returns the key of the given group, if present. For [GroupCustom] it
// returns the most recently added custom key.
func (ks *Keys[K]) Get(g Group) (K, bool) {
	for i := len(ks.list) - 1; i >= 0; i-- {
		if ks.list[i].Group() == g {
			return ks.list[i], true
		}
	}
	var zero K
	return zero, false
}

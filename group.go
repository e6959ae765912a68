package canvasutils

// Group is an ordered set of entities. Insertion order is the update and draw
// order. An entity may belong to any number of groups at once.
//
// The zero value is an empty, unnamed group ready to use.
type Group struct {
	Name string

	// members is replaced rather than edited in place on removal, so the
	// header captured by Update/Draw stays stable while members kill
	// themselves mid-frame.
	members []Entity
	index   map[*Sprite]struct{}
	store   EventStore
}

// NewGroup creates a named group holding the given entities.
func NewGroup(name string, entities ...Entity) *Group {
	g := &Group{Name: name}
	g.Add(entities...)
	return g
}

// Add appends each entity not already in the group and records the group on
// the entity's sprite. Entities already present keep their position. nil
// entities are ignored.
func (g *Group) Add(entities ...Entity) {
	for _, e := range entities {
		s := baseOf(e)
		if s == nil {
			continue
		}
		if _, ok := g.index[s]; ok {
			continue
		}
		if g.index == nil {
			g.index = make(map[*Sprite]struct{})
		}
		g.index[s] = struct{}{}
		g.members = append(g.members, e)
		s.addGroup(g)
		g.emit(EventAdded, s)
	}
	if globalDebug {
		debugCheckGroupSize(g.Name, len(g.members))
	}
}

// Remove takes each given entity out of the group and drops the group from
// the entity's back-references. Entities that are not members are ignored,
// and calling Remove with no arguments does nothing.
func (g *Group) Remove(entities ...Entity) {
	for _, e := range entities {
		s := baseOf(e)
		if s == nil {
			continue
		}
		if _, ok := g.index[s]; !ok {
			continue
		}
		delete(g.index, s)
		g.removeMember(s)
		s.removeGroup(g)
		g.emit(EventRemoved, s)
	}
}

// Sprites returns a copy of the members in insertion order.
func (g *Group) Sprites() []Entity {
	out := make([]Entity, len(g.members))
	copy(out, g.members)
	return out
}

// Has reports whether e is a member.
func (g *Group) Has(e Entity) bool {
	s := baseOf(e)
	if s == nil {
		return false
	}
	_, ok := g.index[s]
	return ok
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// Empty drops every member at once.
//
// Unlike Remove, Empty does not touch the members' back-references: each
// former member still lists this group (and reports Alive) until it is killed
// or removed through Remove elsewhere. Use Remove(g.Sprites()...) for a clean
// detach.
func (g *Group) Empty() {
	if len(g.members) == 0 {
		return
	}
	n := len(g.members)
	g.members = nil
	g.index = nil
	g.emit(EventCleared, nil)
	if globalDebug {
		debugLogStaleEmpty(g.Name, n)
	}
}

// Update calls Update on each member in insertion order. A member removed by
// an earlier member during this call is skipped; members added during this
// call are first updated on the next call.
func (g *Group) Update(params Params) {
	members := g.members
	for _, e := range members {
		if _, ok := g.index[e.Base()]; !ok {
			continue
		}
		e.Update(params)
	}
}

// Draw calls Draw on each member in insertion order.
func (g *Group) Draw(surface Surface) {
	members := g.members
	for _, e := range members {
		if _, ok := g.index[e.Base()]; !ok {
			continue
		}
		e.Draw(surface)
	}
}

// SetEventStore sets the optional sink for membership events.
func (g *Group) SetEventStore(store EventStore) {
	g.store = store
}

func (g *Group) attach(e Entity) {
	g.Add(e)
}

// removeMember drops s from members, building a fresh slice.
func (g *Group) removeMember(s *Sprite) {
	for i, e := range g.members {
		if e.Base() == s {
			next := make([]Entity, 0, len(g.members)-1)
			next = append(next, g.members[:i]...)
			g.members = append(next, g.members[i+1:]...)
			return
		}
	}
}

func (g *Group) emit(typ EventType, s *Sprite) {
	if g.store == nil {
		return
	}
	g.store.EmitEvent(newMembershipEvent(typ, g.Name, s))
}

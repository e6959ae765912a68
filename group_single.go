package canvasutils

// GroupSingle holds at most one entity, such as the player or the current
// cursor. The held entity may belong to other containers as well.
//
// The zero value is empty and ready to use.
type GroupSingle struct {
	Name string

	sprite Entity
	store  EventStore
}

// NewGroupSingle creates a named single-entity container, holding e when it is
// non-nil.
func NewGroupSingle(name string, e Entity) *GroupSingle {
	g := &GroupSingle{Name: name}
	if e != nil {
		g.Add(e)
	}
	return g
}

// Add makes e the held entity and records the container on e's sprite.
//
// A previously held entity is replaced but not detached: it keeps this
// container in its back-references, so it still reports Alive even though
// Has now returns false for it. Call Remove first for a clean swap. The
// event store still sees the replacement as EventRemoved for the old sprite
// followed by EventAdded for the new one.
func (g *GroupSingle) Add(e Entity) {
	s := baseOf(e)
	if s == nil {
		return
	}
	prev := baseOf(g.sprite)
	g.sprite = e
	s.addGroup(g)
	if prev == s {
		return
	}
	if prev != nil {
		g.emit(EventRemoved, prev)
	}
	g.emit(EventAdded, s)
	if globalDebug && prev != nil {
		debugLogStaleOverwrite(g.Name, prev, s)
	}
}

// Remove detaches the held entity. With no arguments it removes whatever is
// held; with arguments it removes the held entity only if it is one of them.
// Removing from an empty container does nothing.
func (g *GroupSingle) Remove(entities ...Entity) {
	s := baseOf(g.sprite)
	if s == nil {
		return
	}
	if len(entities) > 0 && !containsSprite(entities, s) {
		return
	}
	g.sprite = nil
	s.removeGroup(g)
	g.emit(EventRemoved, s)
}

// Sprite returns the held entity, or nil.
func (g *GroupSingle) Sprite() Entity {
	return g.sprite
}

// Has reports whether e is the held entity.
func (g *GroupSingle) Has(e Entity) bool {
	s := baseOf(e)
	return s != nil && s == baseOf(g.sprite)
}

// Update calls Update on the held entity, if any.
func (g *GroupSingle) Update(params Params) {
	if g.sprite != nil {
		g.sprite.Update(params)
	}
}

// Draw calls Draw on the held entity, if any.
func (g *GroupSingle) Draw(surface Surface) {
	if g.sprite != nil {
		g.sprite.Draw(surface)
	}
}

// SetEventStore sets the optional sink for membership events.
func (g *GroupSingle) SetEventStore(store EventStore) {
	g.store = store
}

func (g *GroupSingle) attach(e Entity) {
	g.Add(e)
}

func (g *GroupSingle) emit(typ EventType, s *Sprite) {
	if g.store == nil {
		return
	}
	g.store.EmitEvent(newMembershipEvent(typ, g.Name, s))
}

func containsSprite(entities []Entity, s *Sprite) bool {
	for _, e := range entities {
		if baseOf(e) == s {
			return true
		}
	}
	return false
}

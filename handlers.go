package radial

// observer is one registered callback.
type observer[T any] struct {
	id uint32
	fn func(T)
}

// observers is an ordered callback list. Callbacks fire synchronously in
// registration order.
type observers[T any] struct {
	list   []observer[T]
	nextID uint32
}

func (o *observers[T]) add(fn func(T)) CallbackHandle {
	o.nextID++
	id := o.nextID
	o.list = append(o.list, observer[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { o.remove(id) }}
}

// remove drops the entry from the slice to avoid nil iteration waste.
func (o *observers[T]) remove(id uint32) {
	s := o.list
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = observer[T]{}
			o.list = s[:len(s)-1]
			return
		}
	}
}

// emit calls every callback with v. The list is snapshotted so a callback
// may remove itself.
func (o *observers[T]) emit(v T) {
	if len(o.list) == 0 {
		return
	}
	snapshot := make([]observer[T], len(o.list))
	copy(snapshot, o.list)
	for _, h := range snapshot {
		h.fn(v)
	}
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Safe to call more
// than once and on the zero handle.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

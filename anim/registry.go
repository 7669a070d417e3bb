package anim

// registry is an insertion-ordered name -> Animation mapping. Registering
// over an existing name stops the replaced Animation before letting go of
// it and keeps the name's slot in the order.
type registry struct {
	byName map[string]*Animation
	order  []string
}

func newRegistry() *registry {
	return &registry{byName: make(map[string]*Animation)}
}

func (r *registry) get(name string) (*Animation, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// put registers a under name and returns the replaced Animation, if any.
func (r *registry) put(name string, a *Animation) *Animation {
	prev, ok := r.byName[name]
	if ok {
		prev.Stop()
	} else {
		r.order = append(r.order, name)
	}
	r.byName[name] = a
	return prev
}

// names returns the registered names in first-insertion order.
func (r *registry) names() []string {
	return append([]string(nil), r.order...)
}

func (r *registry) len() int { return len(r.byName) }

// clear stops every Animation and empties the registry.
func (r *registry) clear() {
	for _, a := range r.byName {
		a.Stop()
	}
	r.byName = make(map[string]*Animation)
	r.order = nil
}

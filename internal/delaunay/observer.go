package delaunay

// Observer receives construction progress from Triangulate. Calls are made
// synchronously and in order on the caller's goroutine; implementations must
// not block or call back into the triangulator.
type Observer interface {
	// Reset is called once at the start of every run. Anything displayed for
	// a previous run should be discarded.
	Reset()
	// VertexAccepted is called each time an input vertex becomes part of the
	// triangulation.
	VertexAccepted(v Vertex)
}

// ObserverFuncs adapts plain functions to the Observer interface. Nil
// fields are skipped.
type ObserverFuncs struct {
	OnReset          func()
	OnVertexAccepted func(Vertex)
}

// Reset calls OnReset if set.
func (f ObserverFuncs) Reset() {
	if f.OnReset != nil {
		f.OnReset()
	}
}

// VertexAccepted calls OnVertexAccepted if set.
func (f ObserverFuncs) VertexAccepted(v Vertex) {
	if f.OnVertexAccepted != nil {
		f.OnVertexAccepted(v)
	}
}

// Observers fans notifications out to every non-nil observer in order.
func Observers(observers ...Observer) Observer {
	list := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	return list
}

type multiObserver []Observer

func (m multiObserver) Reset() {
	for _, o := range m {
		o.Reset()
	}
}

func (m multiObserver) VertexAccepted(v Vertex) {
	for _, o := range m {
		o.VertexAccepted(v)
	}
}

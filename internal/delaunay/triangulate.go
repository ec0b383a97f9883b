package delaunay

import (
	"context"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/roomweave/internal/telemetry"
)

// ghost is the index of the vertex at infinity that closes the hull.
const ghost = -1

// face is a triangle over vertex indices. Real faces are counter-clockwise.
// A ghost face {u, v, ghost} sits outside the hull edge v->u.
type face [3]int

func (f face) isGhost() bool {
	return f[2] == ghost
}

// Triangulation is the result of one Triangulate run. It is immutable.
type Triangulation struct {
	vertices  []Vertex
	triangles []Triangle
}

// Triangles returns the triangles, wound counter-clockwise.
func (t *Triangulation) Triangles() []Triangle {
	out := make([]Triangle, len(t.triangles))
	copy(out, t.triangles)
	return out
}

// Vertices returns the input vertices that were incorporated, in the order
// they were accepted. Duplicates appear once.
func (t *Triangulation) Vertices() []Vertex {
	out := make([]Vertex, len(t.vertices))
	copy(out, t.vertices)
	return out
}

// Len returns the number of triangles.
func (t *Triangulation) Len() int {
	return len(t.triangles)
}

// Edges returns each triangle side once, in first-seen order.
func (t *Triangulation) Edges() []Edge {
	seen := mapset.New[Edge]()
	edges := make([]Edge, 0, len(t.triangles)*2)
	for _, tri := range t.triangles {
		for _, e := range tri.Edges() {
			if seen.Has(e) {
				continue
			}
			seen.Put(e)
			edges = append(edges, e)
		}
	}
	return edges
}

var (
	triangulations = telemetry.Counter("delaunay", "delaunay.runs", "Number of triangulation runs")
	trianglesBuilt = telemetry.Counter("delaunay", "delaunay.triangles", "Triangles produced across all runs")
)

// Triangulate computes the Delaunay triangulation of vertices.
//
// Fewer than three distinct vertices, or vertices that are all collinear,
// give an empty result without error. Repeated coordinates are triangulated
// once. A vertex with a NaN or infinite coordinate aborts the run with a
// *GeometryError before any notification is sent.
//
// obs may be nil. Otherwise it sees one Reset followed by one VertexAccepted
// per vertex that ends up in the triangulation.
func Triangulate(ctx context.Context, vertices []Vertex, obs Observer) (*Triangulation, error) {
	tracer := telemetry.Tracer("delaunay")
	ctx, span := tracer.Start(ctx, "delaunay.triangulate")
	defer span.End()

	startTime := time.Now()

	for i, v := range vertices {
		if !v.IsFinite() {
			err := &GeometryError{Index: i, Vertex: v}
			span.RecordError(err)
			span.SetStatus(codes.Error, "non-finite vertex")
			return nil, err
		}
	}

	if obs == nil {
		obs = ObserverFuncs{}
	}
	obs.Reset()

	b := &builder{
		points: unique(vertices),
		obs:    obs,
	}
	b.build()

	result := &Triangulation{
		vertices:  b.accepted,
		triangles: b.triangles(),
	}

	triangulations.Add(ctx, 1)
	trianglesBuilt.Add(ctx, int64(len(result.triangles)))

	span.SetAttributes(
		attribute.Int("delaunay.input_vertices", len(vertices)),
		attribute.Int("delaunay.unique_vertices", len(b.points)),
		attribute.Int("delaunay.accepted_vertices", len(result.vertices)),
		attribute.Int("delaunay.triangles", len(result.triangles)),
		attribute.Int64("delaunay.duration_us", time.Since(startTime).Microseconds()),
	)
	return result, nil
}

// unique drops repeated vertices, keeping the first occurrence.
func unique(vertices []Vertex) []Vertex {
	seen := mapset.New[Vertex]()
	out := make([]Vertex, 0, len(vertices))
	for _, v := range vertices {
		if seen.Has(v) {
			continue
		}
		seen.Put(v)
		out = append(out, v)
	}
	return out
}

// builder holds the working state of one Bowyer-Watson run.
type builder struct {
	points   []Vertex
	accepted []Vertex
	faces    []face
	obs      Observer
}

func (b *builder) build() {
	n := len(b.points)
	if n < 3 {
		return
	}

	// Seed with the first triangle that is not flat.
	third := -1
	for i := 2; i < n; i++ {
		if orient(b.points[0], b.points[1], b.points[i]) != 0 {
			third = i
			break
		}
	}
	if third < 0 {
		return
	}

	p, q, r := 0, 1, third
	if orient(b.points[p], b.points[q], b.points[r]) < 0 {
		q, r = r, q
	}
	b.faces = []face{
		{p, q, r},
		{q, p, ghost},
		{r, q, ghost},
		{p, r, ghost},
	}
	b.accept(0)
	b.accept(1)
	b.accept(third)

	for i := 2; i < n; i++ {
		if i == third {
			continue
		}
		b.insert(i)
	}
}

// insert adds point i: every face in conflict with it is removed and the
// cavity is fanned out from the new point.
func (b *builder) insert(i int) {
	kept := make([]face, 0, len(b.faces)+4)
	var bad []face
	for _, f := range b.faces {
		if b.conflicts(f, i) {
			bad = append(bad, f)
		} else {
			kept = append(kept, f)
		}
	}
	if len(bad) == 0 {
		return
	}

	edges := mapset.New[[2]int]()
	for _, f := range bad {
		for k := 0; k < 3; k++ {
			edges.Put([2]int{f[k], f[(k+1)%3]})
		}
	}
	for _, f := range bad {
		for k := 0; k < 3; k++ {
			u, v := f[k], f[(k+1)%3]
			if edges.Has([2]int{v, u}) {
				continue
			}
			kept = append(kept, fan(u, v, i))
		}
	}

	b.faces = kept
	b.accept(i)
}

// fan builds the face joining cavity edge u->v to point p, keeping the
// ghost vertex in last position.
func fan(u, v, p int) face {
	if u == ghost {
		return face{v, p, ghost}
	}
	if v == ghost {
		return face{p, u, ghost}
	}
	return face{u, v, p}
}

// conflicts reports whether point i lies inside the circumcircle of f. For
// a ghost face that is the open half-plane beyond its hull edge plus the
// open edge itself.
func (b *builder) conflicts(f face, i int) bool {
	q := b.points[i]
	if f.isGhost() {
		u, v := b.points[f[0]], b.points[f[1]]
		switch orient(u, v, q) {
		case 1:
			return true
		case -1:
			return false
		}
		return between(u, v, q)
	}
	return inCircle(b.points[f[0]], b.points[f[1]], b.points[f[2]], q) > 0
}

func (b *builder) accept(i int) {
	v := b.points[i]
	b.accepted = append(b.accepted, v)
	b.obs.VertexAccepted(v)
}

func (b *builder) triangles() []Triangle {
	out := make([]Triangle, 0, len(b.faces))
	for _, f := range b.faces {
		if f.isGhost() {
			continue
		}
		out = append(out, Triangle{A: b.points[f[0]], B: b.points[f[1]], C: b.points[f[2]]})
	}
	return out
}

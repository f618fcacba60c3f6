package system

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"github.com/yechan-k/rollball/internal/domain/entity"
	"github.com/yechan-k/rollball/internal/infrastructure/config"
)

// SurfaceResolver aggregates surface queries across the world's colliders.
//
// Aggregation policy: collect every colliding surface and sort deepest-first;
// the responder resolves contacts sequentially and re-queries between them.
// One entry point for terrain and obstacles keeps the corner and wedge cases
// on a single code path.
type SurfaceResolver struct {
	world     *entity.World
	tolerance float64
	workers   int
}

// NewSurfaceResolver creates a resolver over the world's static geometry.
func NewSurfaceResolver(world *entity.World, cfg *config.PhysicsConfig) *SurfaceResolver {
	workers := cfg.Resolver.Workers
	if workers < 1 {
		workers = 1
	}
	return &SurfaceResolver{
		world:     world,
		tolerance: cfg.Contact.Tolerance,
		workers:   workers,
	}
}

// Contacts returns every surface within contact range of the circle at
// center, sorted by descending penetration depth. Ties break by kind
// (obstacle before terrain) and then by surface id, so the ordering is
// stable regardless of how the queries ran.
func (r *SurfaceResolver) Contacts(center mgl64.Vec2, radius float64) []entity.SurfaceContact {
	// Fixed result slots: slot i belongs to obstacle i, the last slot to
	// the terrain. Parallel execution cannot perturb ordering.
	slots := make([]*entity.SurfaceContact, len(r.world.Obstacles)+1)

	query := func(i int) {
		o := &r.world.Obstacles[i]
		if c, ok := o.SurfaceInfo(center, radius, r.tolerance); ok {
			slots[i] = &c
		}
	}

	if r.workers > 1 && len(r.world.Obstacles) > 1 {
		// Queries are read-only and side-effect-free, so they may fan out.
		var g errgroup.Group
		g.SetLimit(r.workers)
		for i := range r.world.Obstacles {
			i := i
			g.Go(func() error {
				query(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range r.world.Obstacles {
			query(i)
		}
	}

	if r.world.Terrain != nil {
		if c, ok := r.world.Terrain.SurfaceInfo(center, radius, r.tolerance); ok {
			slots[len(slots)-1] = &c
		}
	}

	var contacts []entity.SurfaceContact
	for _, s := range slots {
		if s != nil {
			contacts = append(contacts, *s)
		}
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		a, b := contacts[i], contacts[j]
		if a.Depth != b.Depth {
			return a.Depth > b.Depth
		}
		if a.Kind != b.Kind {
			return a.Kind == entity.KindObstacle
		}
		return a.SurfaceID < b.SurfaceID
	})
	return contacts
}

// Deepest returns the single deepest contact at the given position.
func (r *SurfaceResolver) Deepest(center mgl64.Vec2, radius float64) (entity.SurfaceContact, bool) {
	contacts := r.Contacts(center, radius)
	if len(contacts) == 0 {
		return entity.SurfaceContact{}, false
	}
	return contacts[0], true
}

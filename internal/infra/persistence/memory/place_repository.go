package memory

import (
	"context"
	"sort"
	"strings"

	"mapic/internal/domain/entity"
	"mapic/internal/domain/repository"

	"github.com/google/uuid"
)

type placeRepository struct {
	s *Store
}

func (r *placeRepository) All(_ context.Context) ([]*entity.Place, error) {
	return r.filter(func(*entity.Place) bool { return true }), nil
}

func (r *placeRepository) ByCategory(_ context.Context, category entity.PlaceCategory) ([]*entity.Place, error) {
	return r.filter(func(p *entity.Place) bool { return p.Category == category }), nil
}

func (r *placeRepository) SearchByText(_ context.Context, query string, category *entity.PlaceCategory) ([]*entity.Place, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	return r.filter(func(p *entity.Place) bool {
		if category != nil && p.Category != *category {
			return false
		}

		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Address), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
	}), nil
}

func (r *placeRepository) CountByCategory(_ context.Context) (map[entity.PlaceCategory]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[entity.PlaceCategory]int64)
	for _, p := range r.s.places {
		counts[p.Category]++
	}

	return counts, nil
}

func (r *placeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Place, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.places[id]
	if !ok {
		return nil, repository.ErrPlaceNotFound
	}

	return copyOf(p), nil
}

func (r *placeRepository) Create(_ context.Context, place *entity.Place) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.insert(&place.ID)
	r.s.places[place.ID] = copyOf(place)

	return nil
}

// filter orders by name then insertion, like the SQL store.
func (r *placeRepository) filter(keep func(*entity.Place) bool) []*entity.Place {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Place, 0, len(r.s.places))
	for _, p := range r.s.places {
		if keep(p) {
			out = append(out, copyOf(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return r.s.before(out[i].ID, out[j].ID)
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Package mock provides in-memory stores for tests. Every method bumps a
// call counter so tests can assert that gated requests never touch the store.
package mock

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/store"
)

type MemberStore struct {
	Members []models.Member
	Err     error // when set, every call fails with it
	Calls   int
}

func (s *MemberStore) List(ctx context.Context) ([]models.Member, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}

	// Creation time descending, like the Mongo store.
	out := make([]models.Member, len(s.Members))
	copy(out, s.Members)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemberStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	s.Calls++
	if s.Err != nil {
		return models.Member{}, s.Err
	}

	for _, m := range s.Members {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Member{}, store.ErrNotFound
}

func (s *MemberStore) FindByEmail(ctx context.Context, email string) (models.Member, error) {
	s.Calls++
	if s.Err != nil {
		return models.Member{}, s.Err
	}

	for _, m := range s.Members {
		if m.Email == email {
			return m, nil
		}
	}
	return models.Member{}, store.ErrNotFound
}

func (s *MemberStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Member, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}

	seen := make(map[primitive.ObjectID]bool)
	var out []models.Member
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		for _, m := range s.Members {
			if m.ID == id {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (s *MemberStore) Insert(ctx context.Context, member models.Member) (models.Member, error) {
	s.Calls++
	if s.Err != nil {
		return models.Member{}, s.Err
	}

	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	s.Members = append(s.Members, member)
	return member, nil
}

func (s *MemberStore) Update(ctx context.Context, member models.Member) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}

	for i, m := range s.Members {
		if m.ID == member.ID {
			s.Members[i] = member
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *MemberStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}

	for i, m := range s.Members {
		if m.ID == id {
			s.Members = append(s.Members[:i], s.Members[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type ProjectStore struct {
	Projects []models.Project
	Err      error
	Calls    int
}

func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}

	// Creation time descending, like the Mongo store.
	out := make([]models.Project, len(s.Projects))
	copy(out, s.Projects)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *ProjectStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	s.Calls++
	if s.Err != nil {
		return models.Project{}, s.Err
	}

	for _, p := range s.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, store.ErrNotFound
}

func (s *ProjectStore) Insert(ctx context.Context, project models.Project) (models.Project, error) {
	s.Calls++
	if s.Err != nil {
		return models.Project{}, s.Err
	}

	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	s.Projects = append(s.Projects, project)
	return project, nil
}

func (s *ProjectStore) Update(ctx context.Context, project models.Project) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}

	for i, p := range s.Projects {
		if p.ID == project.ID {
			s.Projects[i] = project
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *ProjectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}

	for i, p := range s.Projects {
		if p.ID == id {
			s.Projects = append(s.Projects[:i], s.Projects[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

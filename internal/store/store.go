// Package store is the entity persistence layer for members and projects.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/crewdeck-dev/crewdeck/internal/models"
)

// ErrNotFound is returned when an id or filter matches no document.
var ErrNotFound = errors.New("document not found")

type MemberStore interface {
	// List returns all members ordered by creation time descending.
	List(ctx context.Context) ([]models.Member, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Member, error)
	FindByEmail(ctx context.Context, email string) (models.Member, error)
	// FindByIDs returns the members whose ids appear in ids. Ids that do not
	// resolve are silently omitted from the result.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Member, error)
	Insert(ctx context.Context, member models.Member) (models.Member, error)
	// Update replaces the stored document for member.ID wholesale.
	Update(ctx context.Context, member models.Member) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProjectStore interface {
	// List returns all projects ordered by creation time descending.
	List(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Project, error)
	Insert(ctx context.Context, project models.Project) (models.Project, error)
	// Update replaces the stored document for project.ID wholesale.
	Update(ctx context.Context, project models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

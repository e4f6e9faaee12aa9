package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a person managed through the admin tool. The credential hash is
// never serialized; members are provisioned with a one-time credential that
// must be rotated before first use.
type Member struct {
	ID                    primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name                  string               `bson:"name" json:"name"`
	Email                 string               `bson:"email" json:"email"`
	Role                  string               `bson:"role" json:"role"`
	GithubUsername        string               `bson:"githubUsername,omitempty" json:"githubUsername,omitempty"`
	AssignedProjects      []primitive.ObjectID `bson:"assignedProjects" json:"assignedProjects"`
	Status                string               `bson:"status" json:"status"`
	PasswordHash          string               `bson:"password" json:"-"`
	PasswordResetRequired bool                 `bson:"passwordResetRequired" json:"passwordResetRequired"`
	AvatarURL             string               `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt             time.Time            `bson:"createdAt" json:"createdAt"`
}

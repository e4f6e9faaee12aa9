package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project references its team by Member id. Ids are validated against the
// members collection at write time; deleting a Member does not cascade, so a
// stored id may no longer resolve.
type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ProjectName string               `bson:"projectName" json:"projectName"`
	Description string               `bson:"description" json:"description"`
	GithubRepo  string               `bson:"githubRepo" json:"githubRepo"`
	TeamMembers []primitive.ObjectID `bson:"teamMembers" json:"teamMembers"`
	Status      string               `bson:"status" json:"status"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

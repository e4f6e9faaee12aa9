package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/store"
	"github.com/crewdeck-dev/crewdeck/internal/types"
)

type ProjectService struct {
	projects store.ProjectStore
	members  store.MemberStore
}

func NewProjectService(projects store.ProjectStore, members store.MemberStore) *ProjectService {
	return &ProjectService{projects: projects, members: members}
}

type CreateProjectInput struct {
	ProjectName string   `json:"projectName"`
	Description string   `json:"description"`
	GithubRepo  string   `json:"githubRepo"`
	TeamMembers []string `json:"teamMembers"`
	Status      string   `json:"status"`
}

// UpdateProjectInput: description and teamMembers update whenever present in
// the payload (an explicit empty value is a valid overwrite); the remaining
// fields update only when non-empty.
type UpdateProjectInput struct {
	ProjectName string    `json:"projectName"`
	Description *string   `json:"description"`
	GithubRepo  string    `json:"githubRepo"`
	TeamMembers *[]string `json:"teamMembers"`
	Status      string    `json:"status"`
}

// MemberSummary is the wire shape team member ids resolve to on every
// project read path.
type MemberSummary struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	GithubUsername string             `json:"githubUsername,omitempty"`
}

// ProjectView is a project with its team resolved to summaries.
type ProjectView struct {
	ID          primitive.ObjectID `json:"id"`
	ProjectName string             `json:"projectName"`
	Description string             `json:"description"`
	GithubRepo  string             `json:"githubRepo"`
	TeamMembers []MemberSummary    `json:"teamMembers"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func (s *ProjectService) List(ctx context.Context) ([]ProjectView, error) {
	projects, err := s.projects.List(ctx)

	if err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))

	for _, project := range projects {
		view, err := s.resolve(ctx, project)

		if err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *ProjectService) Get(ctx context.Context, id primitive.ObjectID) (ProjectView, error) {
	project, err := s.projects.FindByID(ctx, id)

	if errors.Is(err, store.ErrNotFound) {
		return ProjectView{}, notFound("Project not found")
	}

	if err != nil {
		return ProjectView{}, err
	}

	return s.resolve(ctx, project)
}

func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (ProjectView, error) {
	if in.ProjectName == "" || in.GithubRepo == "" {
		return ProjectView{}, badRequest("Project name and GitHub repository are required")
	}

	team, err := parseObjectIDs(in.TeamMembers)

	if err != nil {
		return ProjectView{}, badRequest("Invalid team member id")
	}

	if err := s.verifyTeam(ctx, team); err != nil {
		return ProjectView{}, err
	}

	now := time.Now().UTC()

	project := models.Project{
		ProjectName: in.ProjectName,
		Description: in.Description,
		GithubRepo:  in.GithubRepo,
		TeamMembers: team,
		Status:      defaultString(in.Status, types.StatusActive),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	project, err = s.projects.Insert(ctx, project)

	if err != nil {
		return ProjectView{}, fmt.Errorf("insert project: %w", err)
	}

	return s.resolve(ctx, project)
}

func (s *ProjectService) Update(ctx context.Context, id primitive.ObjectID, in UpdateProjectInput) (ProjectView, error) {
	project, err := s.projects.FindByID(ctx, id)

	if errors.Is(err, store.ErrNotFound) {
		return ProjectView{}, notFound("Project not found")
	}

	if err != nil {
		return ProjectView{}, fmt.Errorf("fetch project: %w", err)
	}

	if in.TeamMembers != nil {
		team, err := parseObjectIDs(*in.TeamMembers)

		if err != nil {
			return ProjectView{}, badRequest("Invalid team member id")
		}

		if err := s.verifyTeam(ctx, team); err != nil {
			return ProjectView{}, err
		}

		project.TeamMembers = team
	}

	if in.ProjectName != "" {
		project.ProjectName = in.ProjectName
	}

	if in.Description != nil {
		project.Description = *in.Description
	}

	if in.GithubRepo != "" {
		project.GithubRepo = in.GithubRepo
	}

	if in.Status != "" {
		project.Status = in.Status
	}

	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ProjectView{}, notFound("Project not found")
		}
		return ProjectView{}, fmt.Errorf("update project: %w", err)
	}

	return s.resolve(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.projects.Delete(ctx, id)

	if errors.Is(err, store.ErrNotFound) {
		return notFound("Project not found")
	}

	return err
}

// verifyTeam checks every id resolves to an existing member. The signal is a
// count mismatch, not a per-id diagnosis, and the check is not atomic with
// the subsequent write.
func (s *ProjectService) verifyTeam(ctx context.Context, team []primitive.ObjectID) error {
	if len(team) == 0 {
		return nil
	}

	found, err := s.members.FindByIDs(ctx, team)

	if err != nil {
		return fmt.Errorf("verify team members: %w", err)
	}

	if len(found) != len(team) {
		return badRequest("One or more team members not found")
	}

	return nil
}

// resolve maps stored team ids to member summaries, silently dropping ids
// that no longer exist.
func (s *ProjectService) resolve(ctx context.Context, project models.Project) (ProjectView, error) {
	team := make([]MemberSummary, 0, len(project.TeamMembers))

	if len(project.TeamMembers) > 0 {
		members, err := s.members.FindByIDs(ctx, project.TeamMembers)

		if err != nil {
			return ProjectView{}, fmt.Errorf("resolve team members: %w", err)
		}

		for _, member := range members {
			team = append(team, MemberSummary{
				ID:             member.ID,
				Name:           member.Name,
				Email:          member.Email,
				GithubUsername: member.GithubUsername,
			})
		}
	}

	return ProjectView{
		ID:          project.ID,
		ProjectName: project.ProjectName,
		Description: project.Description,
		GithubRepo:  project.GithubRepo,
		TeamMembers: team,
		Status:      project.Status,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}, nil
}

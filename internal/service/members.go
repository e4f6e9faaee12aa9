package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/store"
	"github.com/crewdeck-dev/crewdeck/internal/types"
)

type MemberService struct {
	members store.MemberStore
}

func NewMemberService(members store.MemberStore) *MemberService {
	return &MemberService{members: members}
}

type CreateMemberInput struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Role             string   `json:"role"`
	GithubUsername   string   `json:"githubUsername"`
	AssignedProjects []string `json:"assignedProjects"`
	Status           string   `json:"status"`
}

// UpdateMemberInput distinguishes "absent" from "empty" only for the fields
// the original tool did: githubUsername and assignedProjects update whenever
// present in the payload, while the scalar fields update only when non-empty.
type UpdateMemberInput struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	GithubUsername   *string   `json:"githubUsername"`
	AssignedProjects *[]string `json:"assignedProjects"`
	Status           string    `json:"status"`
}

func (s *MemberService) List(ctx context.Context) ([]models.Member, error) {
	members, err := s.members.List(ctx)

	if err != nil {
		return nil, err
	}

	if members == nil {
		members = []models.Member{}
	}

	return members, nil
}

func (s *MemberService) Get(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	member, err := s.members.FindByID(ctx, id)

	if errors.Is(err, store.ErrNotFound) {
		return models.Member{}, notFound("Member not found")
	}

	return member, err
}

func (s *MemberService) Create(ctx context.Context, in CreateMemberInput) (models.Member, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)

	if name == "" || email == "" {
		return models.Member{}, badRequest("Name and email are required")
	}

	_, err := s.members.FindByEmail(ctx, email)

	if err == nil {
		return models.Member{}, conflict("Member with this email already exists")
	}

	if !errors.Is(err, store.ErrNotFound) {
		return models.Member{}, fmt.Errorf("check existing email: %w", err)
	}

	assigned, err := parseObjectIDs(in.AssignedProjects)

	if err != nil {
		return models.Member{}, badRequest("Invalid project id")
	}

	// Provision a random one-time credential. Only its hash is stored and the
	// plaintext is never returned, so the account is unusable until an admin
	// rotates it out of band.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)

	if err != nil {
		return models.Member{}, fmt.Errorf("hash credential: %w", err)
	}

	member := models.Member{
		Name:                  name,
		Email:                 email,
		Role:                  defaultString(in.Role, types.RoleContributor),
		GithubUsername:        in.GithubUsername,
		AssignedProjects:      assigned,
		Status:                defaultString(in.Status, types.StatusActive),
		PasswordHash:          string(hash),
		PasswordResetRequired: true,
		CreatedAt:             time.Now().UTC(),
	}

	return s.members.Insert(ctx, member)
}

func (s *MemberService) Update(ctx context.Context, id primitive.ObjectID, in UpdateMemberInput) (models.Member, error) {
	member, err := s.members.FindByID(ctx, id)

	if errors.Is(err, store.ErrNotFound) {
		return models.Member{}, notFound("Member not found")
	}

	if err != nil {
		return models.Member{}, fmt.Errorf("fetch member: %w", err)
	}

	if email := normalizeEmail(in.Email); email != "" && email != member.Email {
		_, err := s.members.FindByEmail(ctx, email)

		if err == nil {
			return models.Member{}, conflict("Member with this email already exists")
		}

		if !errors.Is(err, store.ErrNotFound) {
			return models.Member{}, fmt.Errorf("check existing email: %w", err)
		}

		member.Email = email
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		member.Name = name
	}

	if in.Role != "" {
		member.Role = in.Role
	}

	if in.Status != "" {
		member.Status = in.Status
	}

	if in.GithubUsername != nil {
		member.GithubUsername = *in.GithubUsername
	}

	if in.AssignedProjects != nil {
		assigned, err := parseObjectIDs(*in.AssignedProjects)

		if err != nil {
			return models.Member{}, badRequest("Invalid project id")
		}

		member.AssignedProjects = assigned
	}

	if err := s.members.Update(ctx, member); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Member{}, notFound("Member not found")
		}
		return models.Member{}, fmt.Errorf("update member: %w", err)
	}

	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, id primitive.ObjectID) error {
	// Projects keep whatever ids they reference; resolution drops ids that no
	// longer exist.
	err := s.members.Delete(ctx, id)

	if errors.Is(err, store.ErrNotFound) {
		return notFound("Member not found")
	}

	return err
}

// SetAvatar records the uploaded avatar's object URL on the member.
func (s *MemberService) SetAvatar(ctx context.Context, id primitive.ObjectID, url string) (models.Member, error) {
	member, err := s.members.FindByID(ctx, id)

	if errors.Is(err, store.ErrNotFound) {
		return models.Member{}, notFound("Member not found")
	}

	if err != nil {
		return models.Member{}, fmt.Errorf("fetch member: %w", err)
	}

	member.AvatarURL = url

	if err := s.members.Update(ctx, member); err != nil {
		return models.Member{}, fmt.Errorf("update member: %w", err)
	}

	return member, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseObjectIDs(raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))

	for _, value := range raw {
		id, err := primitive.ObjectIDFromHex(value)

		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

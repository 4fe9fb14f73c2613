package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasmonteiro/vitrine/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(pRepo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo}
}

type ListProjectsInput struct {
	OwnerID uuid.UUID
	Page    int
	Limit   int
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Page <= 0 {
		input.Page = 1
	}
	offset := (input.Page - 1) * input.Limit

	projects, err := uc.projectRepo.ListByOwner(ctx, input.OwnerID, input.Limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: projects}, nil
}

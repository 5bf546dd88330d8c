package dto

import (
	"skillforge/internal/usecase"

	"github.com/google/uuid"
)

type CandidateListResponse struct {
	RoleID     uuid.UUID           `json:"role_id"`
	Count      int                 `json:"count"`
	Candidates []usecase.Candidate `json:"candidates"`
}

func NewCandidateListResponse(roleID uuid.UUID, cs []usecase.Candidate) CandidateListResponse {
	if cs == nil {
		cs = []usecase.Candidate{}
	}
	return CandidateListResponse{RoleID: roleID, Count: len(cs), Candidates: cs}
}

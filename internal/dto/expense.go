package dto

type CreateGroupRequestDTO struct {
	TotalAmount uint64 `json:"total_amount" example:"100"`
	NumMembers  uint64 `json:"num_members" example:"4"`
	Deadline    uint64 `json:"deadline" example:"1767225600"`
	PenaltyRate uint64 `json:"penalty_rate" example:"500"`
	Description string `json:"description,omitempty" validate:"max=256" example:"Cabin weekend"`
}

type ContributeRequestDTO struct {
	Payment *PaymentDTO `json:"payment" validate:"required"`
}

type ContributionResponseDTO struct {
	GroupID uint64 `json:"group_id" example:"1"`
	Member  string `json:"member" example:"bob"`
	Amount  uint64 `json:"amount" example:"25"`
}

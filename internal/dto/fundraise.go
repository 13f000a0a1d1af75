package dto

type CreateCampaignRequestDTO struct {
	Goal          uint64 `json:"goal" example:"100"`
	NumMilestones uint64 `json:"num_milestones" example:"3"`
	Deadline      uint64 `json:"deadline" example:"1767225600"`
	Title         string `json:"title,omitempty" validate:"max=128" example:"Robotics club"`
	Description   string `json:"description,omitempty" validate:"max=512" example:"Parts for the spring build"`
}

type DonateRequestDTO struct {
	Payment *PaymentDTO `json:"payment" validate:"required"`
}

type DonationResponseDTO struct {
	CampaignID uint64 `json:"campaign_id" example:"1"`
	Donor      string `json:"donor" example:"dave"`
	Amount     uint64 `json:"amount" example:"40"`
}

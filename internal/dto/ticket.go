package dto

type CreateEventRequestDTO struct {
	Name         string `json:"name" validate:"required,max=128" example:"Spring Gala"`
	Price        uint64 `json:"price" example:"30"`
	MaxTickets   uint64 `json:"max_tickets" example:"200"`
	Transferable bool   `json:"transferable" example:"false"`
	StartTime    uint64 `json:"start_time" example:"1767225600"`
	EndTime      uint64 `json:"end_time" example:"1767236400"`
	Description  string `json:"description,omitempty" validate:"max=512" example:"Formal dress"`
}

type BuyTicketRequestDTO struct {
	Payment *PaymentDTO `json:"payment" validate:"required"`
}

type TicketResponseDTO struct {
	AssetID      uint64 `json:"asset_id" example:"12"`
	Code         string `json:"code" example:"125"`
	EventID      uint64 `json:"event_id" example:"1"`
	Owner        string `json:"owner" example:"erin"`
	TicketNumber uint64 `json:"ticket_number" example:"0"`
	Used         bool   `json:"used" example:"false"`
	PurchaseTime uint64 `json:"purchase_time" example:"1767000000"`
}

type VerifyTicketResponseDTO struct {
	Owner string `json:"owner" example:"erin"`
	Valid bool   `json:"valid" example:"true"`
}

type TransferAssetRequestDTO struct {
	Receiver string `json:"receiver" validate:"required,max=64" example:"frank"`
	Amount   uint64 `json:"amount" example:"1"`
}

type HoldingResponseDTO struct {
	AssetID uint64 `json:"asset_id" example:"12"`
	Holder  string `json:"holder" example:"erin"`
	Amount  uint64 `json:"amount" example:"1"`
	Frozen  bool   `json:"frozen" example:"true"`
}

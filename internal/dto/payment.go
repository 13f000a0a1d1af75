package dto

import "time"

// PaymentDTO is the inbound transfer attached to a funds-in call.
type PaymentDTO struct {
	Receiver string `json:"receiver" validate:"required,max=64" example:"APP-PAYMENT"`
	Amount   uint64 `json:"amount" example:"100"`
}

type DepositRequestDTO struct {
	Payment *PaymentDTO `json:"payment" validate:"required"`
}

type BalanceResponseDTO struct {
	Address string `json:"address" example:"alice"`
	Balance uint64 `json:"balance" example:"100"`
}

type TransferRequestDTO struct {
	Recipient string `json:"recipient" validate:"required,max=64" example:"bob"`
	Amount    uint64 `json:"amount" example:"25"`
	Note      string `json:"note,omitempty" validate:"max=256" example:"pizza"`
}

type WithdrawRequestDTO struct {
	Amount uint64 `json:"amount" example:"40"`
}

type VerifyCampusRequestDTO struct {
	User   string `json:"user" validate:"required,max=64" example:"alice"`
	Campus string `json:"campus" validate:"required,max=64" example:"north"`
}

type VerifiedResponseDTO struct {
	Address  string `json:"address" example:"alice"`
	Verified bool   `json:"verified" example:"true"`
}

type PayoutResponseDTO struct {
	ID        string     `json:"id" example:"7f0c2b1e-9a55-4c3e-8d7e-1b2f3a4c5d6e"`
	App       string     `json:"app" example:"APP-EXPENSE"`
	Amount    uint64     `json:"amount" example:"100"`
	Kind      string     `json:"kind" example:"SETTLEMENT"`
	Reference string     `json:"reference,omitempty" example:"group:1"`
	Status    string     `json:"status" example:"SENT"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-09T16:09:57Z"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

type IDResponseDTO struct {
	ID uint64 `json:"id" example:"1"`
}

type AmountResponseDTO struct {
	Amount uint64 `json:"amount" example:"33"`
}

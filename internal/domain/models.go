package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address identifies an account, a user or a program's custodial account.
type Address string

// MaxAddressLen keeps composite record keys inside the records.key column.
const MaxAddressLen = 64

const (
	PaymentApp   Address = "APP-PAYMENT"
	ExpenseApp   Address = "APP-EXPENSE"
	FundraiseApp Address = "APP-FUNDRAISE"
	TicketingApp Address = "APP-TICKETING"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	Amount uint64 `json:"amount"`
}

type CampusRecord struct {
	Campus   string `json:"campus"`
	Verified bool   `json:"verified"`
}

type PaymentStats struct {
	TotalVolume       uint64 `json:"total_volume"`
	TotalTransactions uint64 `json:"total_transactions"`
	ActiveUsers       uint64 `json:"active_users"`
	Custody           uint64 `json:"custody"`
}

type Group struct {
	ID               uint64  `json:"id"`
	Creator          Address `json:"creator"`
	TotalAmount      uint64  `json:"total_amount"`
	NumMembers       uint64  `json:"num_members"`
	TotalContributed uint64  `json:"total_contributed"`
	Settled          bool    `json:"settled"`
	Deadline         uint64  `json:"deadline"`
	PenaltyRate      uint64  `json:"penalty_rate"`
}

type Contribution struct {
	Amount uint64 `json:"amount"`
}

type ExpenseStats struct {
	TotalGroups uint64 `json:"total_groups"`
	TotalSplit  uint64 `json:"total_split"`
	Custody     uint64 `json:"custody"`
}

type Campaign struct {
	ID                 uint64  `json:"id"`
	Creator            Address `json:"creator"`
	Goal               uint64  `json:"goal"`
	Raised             uint64  `json:"raised"`
	NumMilestones      uint64  `json:"num_milestones"`
	MilestonesReleased uint64  `json:"milestones_released"`
	Deadline           uint64  `json:"deadline"`
	Active             bool    `json:"active"`
	FullyFunded        bool    `json:"fully_funded"`
}

type Donation struct {
	Amount uint64 `json:"amount"`
}

type FundraiseStats struct {
	TotalCampaigns uint64 `json:"total_campaigns"`
	TotalRaised    uint64 `json:"total_raised"`
	Custody        uint64 `json:"custody"`
}

type Event struct {
	ID           uint64  `json:"id"`
	Organizer    Address `json:"organizer"`
	Price        uint64  `json:"price"`
	MaxTickets   uint64  `json:"max_tickets"`
	Sold         uint64  `json:"sold"`
	Withdrawn    uint64  `json:"withdrawn"`
	Transferable bool    `json:"transferable"`
	StartTime    uint64  `json:"start_time"`
	EndTime      uint64  `json:"end_time"`
}

type Ticket struct {
	AssetID      uint64  `json:"asset_id"`
	EventID      uint64  `json:"event_id"`
	Owner        Address `json:"owner"`
	TicketNumber uint64  `json:"ticket_number"`
	Used         bool    `json:"used"`
	PurchaseTime uint64  `json:"purchase_time"`
}

type TicketStats struct {
	TotalEvents      uint64 `json:"total_events"`
	TotalTicketsSold uint64 `json:"total_tickets_sold"`
	Custody          uint64 `json:"custody"`
}

type PayoutKind string

const (
	PayoutWithdrawal PayoutKind = "WITHDRAWAL"
	PayoutSettlement PayoutKind = "SETTLEMENT"
	PayoutMilestone  PayoutKind = "MILESTONE"
	PayoutRefund     PayoutKind = "REFUND"
	PayoutSales      PayoutKind = "SALES"
)

const (
	PayoutStatusPending = "PENDING"
	PayoutStatusSent    = "SENT"
	PayoutStatusFailed  = "FAILED"
)

// Payout is an outbound value transfer from a program's custody, recorded
// inside the bundle that caused it and delivered after commit.
type Payout struct {
	ID        uuid.UUID  `db:"id"         json:"id"`
	App       Address    `db:"app"        json:"app"`
	Receiver  Address    `db:"receiver"   json:"receiver"`
	Amount    uint64     `db:"amount"     json:"amount"`
	Kind      PayoutKind `db:"kind"       json:"kind"`
	Reference string     `db:"reference"  json:"reference"`
	Status    string     `db:"status"     json:"status"`
	Attempts  int        `db:"attempts"   json:"attempts"`
	LastError string     `db:"last_error" json:"last_error,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	SentAt    *time.Time `db:"sent_at"    json:"sent_at,omitempty"`
}

package fundraiseservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/campuspay/internal/domain"
	"github.com/GlebRadaev/campuspay/internal/store"
	"github.com/GlebRadaev/campuspay/internal/substrate"
	"go.uber.org/zap"
)

const maxMilestones = 10

type Substrate interface {
	Execute(ctx context.Context, req substrate.Request, op substrate.Op) error
	View(ctx context.Context, fn func(ctx context.Context) error) error
	Custody(ctx context.Context, app domain.Address) (uint64, error)
}

var (
	ErrGoalNotPositive       = domain.NewError(domain.ErrInvalid, "goal must be positive")
	ErrTooFewMilestones      = domain.NewError(domain.ErrInvalid, "at least 1 milestone")
	ErrTooManyMilestones     = domain.NewError(domain.ErrInvalid, "max 10 milestones")
	ErrDeadlineInPast        = domain.NewError(domain.ErrTemporal, "deadline must be in future")
	ErrCampaignNotFound      = domain.NewError(domain.ErrNotFound, "campaign not found")
	ErrCampaignInactive      = domain.NewError(domain.ErrConflict, "campaign not active")
	ErrPaymentRequired       = domain.NewError(domain.ErrInvalid, "payment required")
	ErrPaymentReceiver       = domain.NewError(domain.ErrInvalid, "payment must be to app")
	ErrAmountNotPositive     = domain.NewError(domain.ErrInvalid, "amount must be positive")
	ErrOnlyCreator           = domain.NewError(domain.ErrForbidden, "only creator")
	ErrNotFullyFunded        = domain.NewError(domain.ErrConflict, "not fully funded yet")
	ErrAllMilestonesReleased = domain.NewError(domain.ErrConflict, "all milestones released")
	ErrDeadlineNotPassed     = domain.NewError(domain.ErrTemporal, "deadline not passed")
	ErrCampaignFunded        = domain.NewError(domain.ErrConflict, "campaign was funded, no refund")
	ErrNoDonation            = domain.NewError(domain.ErrNotFound, "no donation found")
	ErrNothingToRefund       = domain.NewError(domain.ErrConflict, "nothing to refund")
)

type state struct {
	NextCampaignID uint64 `json:"next_campaign_id"`
	TotalCampaigns uint64 `json:"total_campaigns"`
	TotalRaised    uint64 `json:"total_raised"`
}

type CreateCampaignParams struct {
	Goal          uint64
	NumMilestones uint64
	Deadline      uint64
	Title         string
	Description   string
}

type Service struct {
	app domain.Address
	sub Substrate

	campaigns store.Map[domain.Campaign]
	donations store.Map[domain.Donation]
	state     store.Map[state]
}

func New(sub Substrate, records store.Store) *Service {
	return &Service{
		app:       domain.FundraiseApp,
		sub:       sub,
		campaigns: store.NewMap[domain.Campaign](records, "fundraise/campaign"),
		donations: store.NewMap[domain.Donation](records, "fundraise/donation"),
		state:     store.NewMap[state](records, "fundraise/state"),
	}
}

func (s *Service) App() domain.Address {
	return s.app
}

func (s *Service) CreateCampaign(ctx context.Context, sender domain.Address, params CreateCampaignParams) (uint64, error) {
	var id uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		switch {
		case params.Goal == 0:
			return ErrGoalNotPositive
		case params.NumMilestones < 1:
			return ErrTooFewMilestones
		case params.NumMilestones > maxMilestones:
			return ErrTooManyMilestones
		case params.Deadline <= call.Now:
			return ErrDeadlineInPast
		}

		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		id = st.NextCampaignID
		campaign := domain.Campaign{
			ID:            id,
			Creator:       call.Sender,
			Goal:          params.Goal,
			NumMilestones: params.NumMilestones,
			Deadline:      params.Deadline,
			Active:        true,
		}
		if err := s.campaigns.Put(ctx, store.IDKey(id), campaign); err != nil {
			return err
		}
		st.NextCampaignID++
		st.TotalCampaigns++
		return s.state.Put(ctx, store.RootKey, st)
	})
	if err != nil {
		zap.L().Info("create campaign rejected", zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("campaign created",
		zap.Uint64("campaign_id", id),
		zap.String("creator", string(sender)),
		zap.Uint64("goal", params.Goal),
		zap.String("title", params.Title),
		zap.String("description", params.Description),
	)
	return id, nil
}

func (s *Service) Donate(ctx context.Context, sender domain.Address, campaignID uint64, payment *substrate.Payment) error {
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender, Payment: payment}, func(ctx context.Context, call *substrate.Call) error {
		campaign, err := s.campaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if !campaign.Active {
			return ErrCampaignInactive
		}
		p := call.Payment
		if p == nil {
			return ErrPaymentRequired
		}
		if p.Receiver != call.App {
			return ErrPaymentReceiver
		}
		if p.Amount == 0 {
			return ErrAmountNotPositive
		}

		key := store.PairKey(campaignID, call.Sender)
		d, err := s.donations.GetOr(ctx, key, domain.Donation{})
		if err != nil {
			return err
		}
		if d.Amount, err = domain.Add(d.Amount, p.Amount); err != nil {
			return err
		}
		if campaign.Raised, err = domain.Add(campaign.Raised, p.Amount); err != nil {
			return err
		}
		if campaign.Raised >= campaign.Goal {
			campaign.FullyFunded = true
		}
		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		if st.TotalRaised, err = domain.Add(st.TotalRaised, p.Amount); err != nil {
			return err
		}

		if err := s.donations.Put(ctx, key, d); err != nil {
			return err
		}
		if err := s.campaigns.Put(ctx, store.IDKey(campaignID), campaign); err != nil {
			return err
		}
		return s.state.Put(ctx, store.RootKey, st)
	})
	if err != nil {
		zap.L().Info("donation rejected", zap.Uint64("campaign_id", campaignID), zap.String("sender", string(sender)), zap.Error(err))
		return err
	}
	zap.L().Info("donation accepted", zap.Uint64("campaign_id", campaignID), zap.String("sender", string(sender)))
	return nil
}

// ReleaseMilestone records the release, then pays goal/num_milestones to the
// creator. The final release deactivates the campaign.
func (s *Service) ReleaseMilestone(ctx context.Context, sender domain.Address, campaignID uint64) (uint64, error) {
	var amount uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		campaign, err := s.campaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if call.Sender != campaign.Creator {
			return ErrOnlyCreator
		}
		if !campaign.FullyFunded {
			return ErrNotFullyFunded
		}
		if campaign.MilestonesReleased >= campaign.NumMilestones {
			return ErrAllMilestonesReleased
		}

		amount = campaign.Goal / campaign.NumMilestones
		campaign.MilestonesReleased++
		if campaign.MilestonesReleased == campaign.NumMilestones {
			campaign.Active = false
		}
		if err := s.campaigns.Put(ctx, store.IDKey(campaignID), campaign); err != nil {
			return err
		}
		ref := fmt.Sprintf("campaign:%d/milestone:%d", campaignID, campaign.MilestonesReleased)
		return call.Pay(ctx, campaign.Creator, amount, domain.PayoutMilestone, ref)
	})
	if err != nil {
		zap.L().Info("milestone release rejected", zap.Uint64("campaign_id", campaignID), zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("milestone released", zap.Uint64("campaign_id", campaignID), zap.Uint64("amount", amount))
	return amount, nil
}

// ClaimRefund zeroes the donation record, then refunds it. The record is kept
// so a replay fails with ErrNothingToRefund.
func (s *Service) ClaimRefund(ctx context.Context, sender domain.Address, campaignID uint64) (uint64, error) {
	var refund uint64
	err := s.sub.Execute(ctx, substrate.Request{App: s.app, Sender: sender}, func(ctx context.Context, call *substrate.Call) error {
		campaign, err := s.campaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if call.Now <= campaign.Deadline {
			return ErrDeadlineNotPassed
		}
		if campaign.FullyFunded {
			return ErrCampaignFunded
		}

		key := store.PairKey(campaignID, call.Sender)
		d, ok, err := s.donations.Maybe(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoDonation
		}
		if d.Amount == 0 {
			return ErrNothingToRefund
		}

		refund = d.Amount
		if err := s.donations.Put(ctx, key, domain.Donation{}); err != nil {
			return err
		}
		return call.Pay(ctx, call.Sender, refund, domain.PayoutRefund, fmt.Sprintf("campaign:%d", campaignID))
	})
	if err != nil {
		zap.L().Info("refund rejected", zap.Uint64("campaign_id", campaignID), zap.String("sender", string(sender)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("refund issued", zap.Uint64("campaign_id", campaignID), zap.String("donor", string(sender)), zap.Uint64("amount", refund))
	return refund, nil
}

func (s *Service) GetCampaign(ctx context.Context, campaignID uint64) (domain.Campaign, error) {
	campaign, err := s.campaign(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	return campaign, nil
}

func (s *Service) GetDonation(ctx context.Context, campaignID uint64, donor domain.Address) (uint64, error) {
	d, err := s.donations.GetOr(ctx, store.PairKey(campaignID, donor), domain.Donation{})
	if err != nil {
		zap.L().Error("failed to get donation", zap.Error(err))
		return 0, err
	}
	return d.Amount, nil
}

func (s *Service) GetStats(ctx context.Context) (domain.FundraiseStats, error) {
	var stats domain.FundraiseStats
	err := s.sub.View(ctx, func(ctx context.Context) error {
		st, err := s.state.GetOr(ctx, store.RootKey, state{})
		if err != nil {
			return err
		}
		custody, err := s.sub.Custody(ctx, s.app)
		if err != nil {
			return err
		}
		stats = domain.FundraiseStats{TotalCampaigns: st.TotalCampaigns, TotalRaised: st.TotalRaised, Custody: custody}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to get fundraise stats", zap.Error(err))
		return domain.FundraiseStats{}, err
	}
	return stats, nil
}

func (s *Service) campaign(ctx context.Context, id uint64) (domain.Campaign, error) {
	campaign, ok, err := s.campaigns.Maybe(ctx, store.IDKey(id))
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return domain.Campaign{}, err
	}
	if !ok {
		return domain.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}

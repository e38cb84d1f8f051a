package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

type campaignReconcileStore interface {
	List(ctx context.Context, status entities.CampaignStatus, limit, offset int) ([]*entities.Campaign, int, error)
	SetRaised(ctx context.Context, id uuid.UUID, raised, observed int64) error
}

type donationSumStore interface {
	SumCompletedByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error)
}

// CampaignReconcileJob recomputes each campaign's raised total from the
// sum of its completed donations. The increments at verification time
// are already atomic; this job repairs drift from manual data fixes or
// refunds applied outside the normal path.
type CampaignReconcileJob struct {
	campaigns campaignReconcileStore
	donations donationSumStore
	interval  time.Duration
	stop      chan struct{}
}

func NewCampaignReconcileJob(campaigns campaignReconcileStore, donations donationSumStore) *CampaignReconcileJob {
	return &CampaignReconcileJob{
		campaigns: campaigns,
		donations: donations,
		interval:  15 * time.Minute,
		stop:      make(chan struct{}),
	}
}

func (j *CampaignReconcileJob) Start(ctx context.Context) {
	log.Println("🕐 Starting campaign reconciliation job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Campaign reconciliation job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Campaign reconciliation job stopped")
			return
		case <-ticker.C:
			j.reconcile(ctx)
		}
	}
}

func (j *CampaignReconcileJob) Stop() {
	close(j.stop)
}

func (j *CampaignReconcileJob) reconcile(ctx context.Context) {
	campaigns, _, err := j.campaigns.List(ctx, "", 0, 0)
	if err != nil {
		log.Printf("❌ Error listing campaigns for reconciliation: %v", err)
		return
	}

	var repaired int
	for _, c := range campaigns {
		sum, err := j.donations.SumCompletedByCampaign(ctx, c.ID)
		if err != nil {
			log.Printf("❌ Error summing donations for campaign %s: %v", c.ID, err)
			continue
		}
		if sum == c.Raised {
			continue
		}

		log.Printf("🔄 Campaign %s raised drifted: stored=%d computed=%d", c.ID, c.Raised, sum)
		if err := j.campaigns.SetRaised(ctx, c.ID, sum, c.Raised); err != nil {
			log.Printf("❌ Error repairing campaign %s: %v", c.ID, err)
			continue
		}
		repaired++
	}

	if repaired > 0 {
		log.Printf("✅ Reconciled %d campaigns", repaired)
	}
}

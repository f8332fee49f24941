package services

import (
	"context"
	"log"
	"time"

	"libshelf/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// OverduePeriod is how long a loan may stay open before it counts as overdue
const OverduePeriod = 14 * 24 * time.Hour

// OverdueService logs overdue loans once a day. Observational only, it never
// mutates loan rows.
type OverdueService struct {
	loanRepo repositories.LoanRepository
	cron     *cron.Cron
}

// NewOverdueService creates a new overdue service
func NewOverdueService(loanRepo repositories.LoanRepository) *OverdueService {
	return &OverdueService{
		loanRepo: loanRepo,
		cron:     cron.New(),
	}
}

// Start schedules the daily sweep (08:30)
func (s *OverdueService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.Sweep); err != nil {
		log.Printf("❌ Failed to schedule overdue sweep: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 Overdue sweep scheduled (daily 08:30)")
}

// Stop stops the scheduler
func (s *OverdueService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Overdue sweep stopped")
}

// Sweep logs every loan open longer than OverduePeriod
func (s *OverdueService) Sweep() {
	cutoff := time.Now().Add(-OverduePeriod)

	loans, err := s.loanRepo.ListOverdueSince(context.Background(), cutoff)
	if err != nil {
		log.Printf("❌ Overdue sweep query error: %v", err)
		return
	}

	for _, loan := range loans {
		days := int(time.Since(loan.BorrowDate).Hours() / 24)
		log.Printf("⏰ Overdue loan %s: %q held by user %d for %d days",
			loan.Reference, loan.BookTitle, loan.UserID, days)
	}

	if len(loans) > 0 {
		log.Printf("⏰ Overdue sweep found %d open loans past %d days",
			len(loans), int(OverduePeriod.Hours()/24))
	}
}

package worker

import (
	"context"
	"log"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

// OverdueAdvancer periodically sweeps overdue interactive tasks,
// closing them and advancing the follow-up cycle for their leads.
type OverdueAdvancer struct {
	advance      *usecase.AdvanceOverdueUseCase
	tickInterval time.Duration
}

func NewOverdueAdvancer(advance *usecase.AdvanceOverdueUseCase) *OverdueAdvancer {
	return &OverdueAdvancer{
		advance:      advance,
		tickInterval: 12 * time.Hour,
	}
}

func (w *OverdueAdvancer) Start(ctx context.Context) {
	log.Println("🕒 Overdue Advancer started (12h interval)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Overdue Advancer stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *OverdueAdvancer) run(ctx context.Context) {
	advanced, err := w.advance.Execute(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Overdue sweep failed: %v", err)
		return
	}
	if advanced > 0 {
		log.Printf("✅ %d overdue task(s) advanced", advanced)
	}
}

package worker

import (
	"context"
	"log"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

// DigestScheduler emails the day's agenda every morning.
type DigestScheduler struct {
	digest *usecase.SendDigestUseCase
	sendAt int // hour of day, local time
}

func NewDigestScheduler(digest *usecase.SendDigestUseCase) *DigestScheduler {
	return &DigestScheduler{
		digest: digest,
		sendAt: 6,
	}
}

func (w *DigestScheduler) Start(ctx context.Context) {
	log.Printf("🕒 Digest Scheduler started (daily at %02d:00)", w.sendAt)

	for {
		timer := time.NewTimer(time.Until(w.nextRun(time.Now())))

		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("⚠️ Digest Scheduler stopped")
			return
		case <-timer.C:
			w.run(ctx)
		}
	}
}

// nextRun returns the next sendAt o'clock strictly after now.
func (w *DigestScheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), w.sendAt, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (w *DigestScheduler) run(ctx context.Context) {
	sent, err := w.digest.Execute(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Digest send failed: %v", err)
		return
	}
	if sent > 0 {
		log.Printf("✅ Agenda digest sent (%d task(s))", sent)
	}
}

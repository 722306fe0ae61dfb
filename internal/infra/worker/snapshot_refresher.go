package worker

import (
	"context"
	"log"
	"time"
)

// Refresher é o LeadStore visto pelo worker.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type SnapshotRefresher struct {
	store        Refresher
	tickInterval time.Duration
}

func NewSnapshotRefresher(store Refresher, interval time.Duration) *SnapshotRefresher {
	return &SnapshotRefresher{
		store:        store,
		tickInterval: interval,
	}
}

// Start sincroniza uma vez na hora e depois a cada tick, até o ctx acabar.
func (w *SnapshotRefresher) Start(ctx context.Context) {
	if w.tickInterval <= 0 {
		log.Println("⚠️ Snapshot Refresher: intervalo zerado, refresh periódico desligado")
		return
	}
	log.Printf("🕒 Snapshot Refresher iniciado (intervalo %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Snapshot Refresher encerrado")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *SnapshotRefresher) refresh(ctx context.Context) {
	if err := w.store.Refresh(ctx); err != nil {
		log.Printf("❌ Snapshot mantido, falha ao sincronizar: %v", err)
	}
}

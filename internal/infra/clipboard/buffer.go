package clipboard

import (
	"sync"
	"time"
)

// Buffer guarda o último texto copiado para a UI buscar (GET /draft/clipboard).
type Buffer struct {
	mu       sync.RWMutex
	text     string
	copiedAt time.Time
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Copy(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.copiedAt = time.Now()
	return nil
}

// Paste devolve o conteúdo e quando foi copiado; zero time se vazio.
func (b *Buffer) Paste() (string, time.Time) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text, b.copiedAt
}

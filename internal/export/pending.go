package export

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type pendingFile struct {
	sessionID string
	download  *Download
	expires   time.Time
}

// Pending holds finished exports until the browser fetches them. Each
// token can be taken once, and only by the session that created it.
type Pending struct {
	mu    sync.Mutex
	ttl   time.Duration
	files map[string]pendingFile
	now   func() time.Time
}

// NewPending keeps files for ttl
func NewPending(ttl time.Duration) *Pending {
	return &Pending{
		ttl:   ttl,
		files: make(map[string]pendingFile),
		now:   time.Now,
	}
}

// Put stores dl and returns the token that retrieves it
func (p *Pending) Put(sessionID string, dl *Download) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.evictLocked()
	token := uuid.New().String()
	p.files[token] = pendingFile{sessionID: sessionID, download: dl, expires: p.now().Add(p.ttl)}
	return token
}

// Take removes and returns the file for token
func (p *Pending) Take(sessionID, token string) (*Download, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.evictLocked()
	f, ok := p.files[token]
	if !ok || f.sessionID != sessionID {
		return nil, false
	}
	delete(p.files, token)
	return f.download, true
}

func (p *Pending) evictLocked() {
	now := p.now()
	for token, f := range p.files {
		if now.After(f.expires) {
			delete(p.files, token)
		}
	}
}

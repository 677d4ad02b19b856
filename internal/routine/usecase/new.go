package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"daily-routine-bot/internal/model"
	"daily-routine-bot/internal/routine/repository"
	"daily-routine-bot/pkg/dateparse"
	pkgLog "daily-routine-bot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	resolver *dateparse.Resolver

	// sessions holds one conversation per owner, created lazily and evicted
	// after sessionTTL of inactivity so abandoned wizards don't pile up.
	sessions *expirable.LRU[int64, *model.Conversation]
	mu       sync.Mutex
}

// New creates a new routine UseCase instance. sessionLimit caps the number of
// concurrently tracked conversations; sessionTTL evicts idle ones.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	resolver *dateparse.Resolver,
	sessionLimit int,
	sessionTTL time.Duration,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		resolver: resolver,
		sessions: expirable.NewLRU[int64, *model.Conversation](sessionLimit, nil, sessionTTL),
	}
}

// session returns the owner's conversation, creating it on first contact.
func (uc *implUseCase) session(ownerID int64) *model.Conversation {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if c, ok := uc.sessions.Get(ownerID); ok {
		return c
	}
	c := model.NewConversation()
	uc.sessions.Add(ownerID, c)
	return c
}

package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// VisitorLimiter hands out a token-bucket limiter per client address.
type VisitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	rps      rate.Limit
	burst    int
}

func NewVisitorLimiter(rps rate.Limit, burst int) *VisitorLimiter {
	return &VisitorLimiter{
		visitors: make(map[string]*clientLimiter),
		rps:      rps,
		burst:    burst,
	}
}

// Visitor returns the limiter for the given address, creating one on
// first sight.
func (v *VisitorLimiter) Visitor(addr string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	c, exists := v.visitors[addr]
	if !exists {
		limiter := rate.NewLimiter(v.rps, v.burst)
		v.visitors[addr] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

// StartCleanupLoop evicts addresses not seen for five minutes.
func (v *VisitorLimiter) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		v.mu.Lock()
		for addr, c := range v.visitors {
			if time.Since(c.lastSeen) > 5*time.Minute {
				delete(v.visitors, addr)
			}
		}
		v.mu.Unlock()
	}
}

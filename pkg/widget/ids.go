package widget

import (
	"strconv"
	"sync"

	"github.com/oklog/ulid/v2"
)

// IDAllocator hands out widget ids. Ids must be unique for the lifetime of
// the manager and must not contain dots, which separate the widget id from
// the edge in anchor declarations.
type IDAllocator interface {
	NextID() string
}

// SequentialIDs allocates "widget1", "widget2", ...
type SequentialIDs struct {
	mu   sync.Mutex
	next uint64
}

func (s *SequentialIDs) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return "widget" + strconv.FormatUint(s.next, 10)
}

// ULIDs allocates sortable, globally unique ids such as
// "widget-01HZX3J8K9QF7B2W6Y0C4M5N1R".
type ULIDs struct{}

func (ULIDs) NextID() string {
	return "widget-" + ulid.Make().String()
}

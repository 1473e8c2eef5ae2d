package task

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/nkorobkov/one-click-routine/internal/clock"
	"github.com/nkorobkov/one-click-routine/internal/storage"
)

const (
	tasksKey   = "tasks"
	dateLayout = "2006-01-02"
	msPerDay   = 24 * 60 * 60 * 1000

	DefaultUndoWindow = 5 * time.Second
)

// Store owns the authoritative ordered task list. Every mutation persists the
// full list; a failed write is logged and the store keeps operating in memory
// for the rest of the session.
type Store struct {
	mu         sync.Mutex
	clk        clock.Clock
	kv         storage.KV
	logger     *log.Logger
	undoWindow time.Duration

	tasks       []Task
	currentDate string
	pending     *pendingUndo
	subs        []chan struct{}
}

// pendingUndo is the single outstanding undo window. Completing a second
// task finalizes the first; there is never more than one alive.
type pendingUndo struct {
	taskID string
	prev   int64
	timer  *time.Timer
}

type StoreOptions struct {
	Clock      clock.Clock
	KV         storage.KV
	Logger     *log.Logger
	UndoWindow time.Duration
}

func NewStore(opts StoreOptions) *Store {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.UndoWindow <= 0 {
		opts.UndoWindow = DefaultUndoWindow
	}
	s := &Store{
		clk:        opts.Clock,
		kv:         opts.KV,
		logger:     opts.Logger,
		undoWindow: opts.UndoWindow,
	}
	s.currentDate = s.clk.Now().Format(dateLayout)
	s.load()
	return s
}

func (s *Store) load() {
	if s.kv == nil {
		return
	}
	b, ok, err := s.kv.Get(tasksKey)
	if err != nil {
		s.logger.Printf("task store: load failed, starting in-memory: %v", err)
		return
	}
	if !ok {
		return
	}
	tasks, err := decodeRecords(b, s.clk.Now())
	if err != nil {
		s.logger.Printf("task store: persisted state unreadable, starting in-memory: %v", err)
		return
	}
	s.tasks = tasks
}

func (s *Store) persistLocked() {
	if s.kv == nil {
		return
	}
	b, err := json.Marshal(s.tasks)
	if err != nil {
		s.logger.Printf("task store: marshal failed: %v", err)
		return
	}
	if err := s.kv.Set(tasksKey, b); err != nil {
		s.logger.Printf("task store: save failed, operating in-memory: %v", err)
	}
}

// Subscribe returns a channel that receives a signal after every visible
// change, including day rollovers. The signal is coalescing: a slow reader
// sees at least one notification, not one per mutation.
func (s *Store) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// Unsubscribe removes a channel handed out by Subscribe.
func (s *Store) Unsubscribe(ch <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.subs {
		if c == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// List returns a copy of the tasks in display order.
func (s *Store) List() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

func (s *Store) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new task. Input is validated at the API boundary; the store
// accepts it as-is.
func (s *Store) Add(name string, intervalDays int, offset *int) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := New(name, intervalDays, offset, s.clk.Now())
	s.tasks = append(s.tasks, t)
	s.persistLocked()
	s.notifyLocked()
	return t
}

// Delete removes the task by id. Unknown ids are a no-op, not an error.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.finalizePendingLocked(id)
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persistLocked()
	s.notifyLocked()
	return true
}

// MoveUp swaps the task with its predecessor. A no-op on the first element.
func (s *Store) MoveUp(id string) bool {
	return s.swap(id, -1)
}

// MoveDown swaps the task with its successor. A no-op on the last element.
func (s *Store) MoveDown(id string) bool {
	return s.swap(id, +1)
}

func (s *Store) swap(id string, dir int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	j := i + dir
	if j < 0 || j >= len(s.tasks) {
		return false
	}
	s.tasks[i], s.tasks[j] = s.tasks[j], s.tasks[i]
	s.persistLocked()
	s.notifyLocked()
	return true
}

// Complete stamps LastCompleted with now and opens an undo window. A window
// already open for another task is finalized first, never left dangling.
func (s *Store) Complete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.finalizePendingLocked("")
	prev := s.tasks[i].LastCompleted
	s.tasks[i].LastCompleted = s.clk.Now().UnixMilli()
	s.pending = &pendingUndo{
		taskID: id,
		prev:   prev,
		timer:  time.AfterFunc(s.undoWindow, func() { s.expireUndo(id) }),
	}
	s.persistLocked()
	s.notifyLocked()
	return true
}

// Undo reverts a completion whose window is still open.
func (s *Store) Undo(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil || s.pending.taskID != id {
		return false
	}
	s.pending.timer.Stop()
	prev := s.pending.prev
	s.pending = nil
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.tasks[i].LastCompleted = prev
	s.persistLocked()
	s.notifyLocked()
	return true
}

func (s *Store) expireUndo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalizePendingLocked(id)
}

// finalizePendingLocked drops the pending undo, making the completion
// irrevocable. With a non-empty id only a window for that task is finalized.
func (s *Store) finalizePendingLocked(id string) {
	if s.pending == nil {
		return
	}
	if id != "" && s.pending.taskID != id {
		return
	}
	s.pending.timer.Stop()
	s.pending = nil
}

// Adjust nudges the due date by deltaDays. In the first cycle CreatedAt and
// LastCompleted move together so their equality, the first-cycle marker,
// survives; afterwards only LastCompleted moves.
func (s *Store) Adjust(id string, deltaDays int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.finalizePendingLocked(id)
	delta := int64(deltaDays) * msPerDay
	if s.tasks[i].FirstCycle() {
		s.tasks[i].CreatedAt += delta
	}
	s.tasks[i].LastCompleted += delta
	s.persistLocked()
	s.notifyLocked()
	return true
}

// Update overwrites the display fields only; timestamps are untouched.
func (s *Store) Update(id, name string, intervalDays int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Name = name
	s.tasks[i].IntervalDays = intervalDays
	s.persistLocked()
	s.notifyLocked()
	return true
}

// CheckDayChange compares the stored day marker with now's calendar day and
// signals subscribers on rollover so stale days-remaining values get
// recomputed. Driven by a periodic tick; there is no push notification for
// wall-clock day boundaries.
func (s *Store) CheckDayChange(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := now.Format(dateLayout)
	if d == s.currentDate {
		return false
	}
	s.currentDate = d
	s.notifyLocked()
	return true
}

// Watch polls for day rollover until ctx is done. Run it in its own
// goroutine; the poll interval bounds worst-case staleness.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckDayChange(s.clk.Now())
		}
	}
}

// Export returns the share-link payload for the current list, empty when
// there is nothing to share.
func (s *Store) Export() string {
	return Encode(s.List())
}

// Import merges a share-link payload: existing ids are never overwritten,
// genuinely new ids are appended. Malformed input fails without touching
// anything.
func (s *Store) Import(encoded string) (added int, err error) {
	incoming, err := Decode(encoded)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range incoming {
		if s.indexLocked(t.ID) >= 0 {
			continue
		}
		s.tasks = append(s.tasks, t)
		added++
	}
	if added > 0 {
		s.persistLocked()
		s.notifyLocked()
	}
	return added, nil
}

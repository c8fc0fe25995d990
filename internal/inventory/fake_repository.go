package inventory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/repository"
)

// FakeLedger is a stateful in-memory implementation of repository.Ledger for tests.
// Every statement is atomic under one mutex; a transaction keeps undo steps and
// replays them on rollback, so uncommitted work never survives.
type FakeLedger struct {
	mu       sync.Mutex
	spots    map[string]*domain.Spot
	bookings map[string]*domain.Booking
	seq      int64            // orders bookings that share a timestamp
	seqs     map[string]int64 // booking id -> insertion order

	failures map[string]error
	delay    time.Duration

	slots  chan struct{} // nil when transactions are unlimited
	openTx int
}

// NewFakeLedger creates an empty FakeLedger
func NewFakeLedger() *FakeLedger {
	return &FakeLedger{
		spots:    make(map[string]*domain.Spot),
		bookings: make(map[string]*domain.Booking),
		seqs:     make(map[string]int64),
		failures: make(map[string]error),
	}
}

// Fake operation names accepted by FailOn
const (
	FakeOpGetSpot        = "GetSpot"
	FakeOpListActive     = "ListActiveSpots"
	FakeOpListBookings   = "ListBookingsForPrincipal"
	FakeOpGetBooking     = "GetBookingOwnedBy"
	FakeOpCreateSpot     = "CreateSpot"
	FakeOpUpdateDetails  = "UpdateSpotDetails"
	FakeOpUpdateCapacity = "UpdateCapacity"
	FakeOpSetStatus      = "SetStatus"
	FakeOpBeginTx        = "BeginTx"
	FakeOpDecrement      = "ConditionalDecrementAvailability"
	FakeOpIncrement      = "IncrementAvailability"
	FakeOpInsertBooking  = "InsertBooking"
	FakeOpDeleteBooking  = "DeleteBookingOwnedBy"
	FakeOpCommit         = "Commit"
)

// FailOn makes every call to op return err until cleared with a nil err
func (f *FakeLedger) FailOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failures, op)
		return
	}
	f.failures[op] = err
}

// SetDelay makes every call wait d or until its context ends
func (f *FakeLedger) SetDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

// SetMaxOpenTx caps concurrent transactions at n, the way a connection pool
// would. BeginTx blocks for a free slot until its context ends.
func (f *FakeLedger) SetMaxOpenTx(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots = make(chan struct{}, n)
}

// OpenTx returns the number of transactions begun and not yet finished
func (f *FakeLedger) OpenTx() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.openTx
}

// SeedSpot stores a copy of spot directly, bypassing validation
func (f *FakeLedger) SeedSpot(spot domain.Spot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spots[spot.ID] = &spot
}

// Spot returns a copy of the stored spot or nil
func (f *FakeLedger) Spot(id string) *domain.Spot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.spots[id]
	if !ok {
		return nil
	}
	c := *s
	return &c
}

// BookingCount returns the number of live bookings on a spot
func (f *FakeLedger) BookingCount(spotID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.bookings {
		if b.SpotID == spotID {
			n++
		}
	}
	return n
}

// enter waits out the configured delay and reports injected failures.
// It returns with f.mu held when err is nil.
func (f *FakeLedger) enter(ctx context.Context, op string) error {
	f.mu.Lock()
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	if err := f.failures[op]; err != nil {
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *FakeLedger) GetSpot(ctx context.Context, spotID string) (*domain.Spot, error) {
	if err := f.enter(ctx, FakeOpGetSpot); err != nil {
		return nil, err
	}
	defer f.mu.Unlock()

	s, ok := f.spots[spotID]
	if !ok {
		return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
	}
	c := *s
	return &c, nil
}

func (f *FakeLedger) ListActiveSpots(ctx context.Context) ([]domain.Spot, error) {
	if err := f.enter(ctx, FakeOpListActive); err != nil {
		return nil, err
	}
	defer f.mu.Unlock()

	spots := make([]domain.Spot, 0, len(f.spots))
	for _, s := range f.spots {
		if s.IsActive() {
			spots = append(spots, *s)
		}
	}
	sort.Slice(spots, func(i, j int) bool {
		if spots[i].Name != spots[j].Name {
			return spots[i].Name < spots[j].Name
		}
		return spots[i].ID < spots[j].ID
	})
	return spots, nil
}

func (f *FakeLedger) ListBookingsForPrincipal(ctx context.Context, principalID string) ([]domain.Booking, error) {
	if err := f.enter(ctx, FakeOpListBookings); err != nil {
		return nil, err
	}
	defer f.mu.Unlock()

	type ordered struct {
		b   domain.Booking
		seq int64
	}
	var list []ordered
	for _, b := range f.bookings {
		if b.PrincipalID != principalID {
			continue
		}
		c := *b
		if s, ok := f.spots[b.SpotID]; ok {
			c.SpotName = s.Name
		}
		list = append(list, ordered{b: c, seq: f.bookingSeq(b.ID)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].seq > list[j].seq })

	bookings := make([]domain.Booking, 0, len(list))
	for _, o := range list {
		bookings = append(bookings, o.b)
	}
	return bookings, nil
}

func (f *FakeLedger) CreateSpot(ctx context.Context, spot *domain.Spot) error {
	if err := f.enter(ctx, FakeOpCreateSpot); err != nil {
		return err
	}
	defer f.mu.Unlock()

	if _, exists := f.spots[spot.ID]; exists {
		return fmt.Errorf("%w: spot id already exists", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	spot.CreatedAt, spot.UpdatedAt = now, now
	c := *spot
	f.spots[spot.ID] = &c
	return nil
}

func (f *FakeLedger) UpdateSpotDetails(ctx context.Context, spotID string, details domain.SpotDetails) (*domain.Spot, error) {
	if err := f.enter(ctx, FakeOpUpdateDetails); err != nil {
		return nil, err
	}
	defer f.mu.Unlock()

	s, ok := f.spots[spotID]
	if !ok {
		return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
	}
	s.Name, s.Latitude, s.Longitude = details.Name, details.Latitude, details.Longitude
	s.UpdatedAt = time.Now().UTC()
	c := *s
	return &c, nil
}

func (f *FakeLedger) UpdateCapacity(ctx context.Context, spotID string, newCapacity int) (*domain.Spot, error) {
	if err := f.enter(ctx, FakeOpUpdateCapacity); err != nil {
		return nil, err
	}
	defer f.mu.Unlock()

	s, ok := f.spots[spotID]
	if !ok {
		return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
	}
	outstanding := s.Outstanding()
	if newCapacity < outstanding {
		return nil, fmt.Errorf("%w: "+ErrMsgCapacityBelowOutFmt, domain.ErrInvalidInput, newCapacity, outstanding)
	}
	s.TotalCapacity = newCapacity
	s.AvailableCount = newCapacity - outstanding
	s.UpdatedAt = time.Now().UTC()
	c := *s
	return &c, nil
}

func (f *FakeLedger) SetStatus(ctx context.Context, spotID string, status domain.SpotStatus) (*domain.Spot, error) {
	if err := f.enter(ctx, FakeOpSetStatus); err != nil {
		return nil, err
	}
	defer f.mu.Unlock()

	s, ok := f.spots[spotID]
	if !ok {
		return nil, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	c := *s
	return &c, nil
}

func (f *FakeLedger) GetBookingOwnedBy(ctx context.Context, bookingID, principalID string) (*domain.Booking, error) {
	if err := f.enter(ctx, FakeOpGetBooking); err != nil {
		return nil, err
	}
	defer f.mu.Unlock()

	b, ok := f.bookings[bookingID]
	if !ok || b.PrincipalID != principalID {
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, bookingID)
	}
	c := *b
	if s, ok := f.spots[b.SpotID]; ok {
		c.SpotName = s.Name
	}
	return &c, nil
}

func (f *FakeLedger) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	f.mu.Lock()
	slots := f.slots
	f.mu.Unlock()

	if slots != nil {
		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := f.enter(ctx, FakeOpBeginTx); err != nil {
		if slots != nil {
			<-slots
		}
		return nil, err
	}
	defer f.mu.Unlock()
	f.openTx++
	return &fakeTx{ledger: f, slots: slots}, nil
}

func (f *FakeLedger) bookingSeq(id string) int64 {
	return f.seqs[id]
}

// fakeTx applies statements immediately and records how to undo them
type fakeTx struct {
	ledger *FakeLedger
	slots  chan struct{}
	undo   []func()
	done   bool
}

// finish releases the transaction's slot. Called with ledger.mu held.
func (t *fakeTx) finish() {
	t.done = true
	t.undo = nil
	t.ledger.openTx--
	if t.slots != nil {
		<-t.slots
	}
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.done {
		return fmt.Errorf("%s", domain.ErrMsgTxClosed)
	}
	if err := t.ledger.enter(ctx, FakeOpCommit); err != nil {
		return err
	}
	defer t.ledger.mu.Unlock()
	t.finish()
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.done {
		return fmt.Errorf("%s", domain.ErrMsgTxClosed)
	}
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.finish()
	return nil
}

func (t *fakeTx) ConditionalDecrementAvailability(ctx context.Context, spotID string, expectedMinimum int) (int, error) {
	f := t.ledger
	if err := f.enter(ctx, FakeOpDecrement); err != nil {
		return 0, err
	}
	defer f.mu.Unlock()

	s, ok := f.spots[spotID]
	if !ok || !s.IsActive() {
		return 0, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
	}
	if s.AvailableCount < expectedMinimum || s.AvailableCount <= 0 {
		return 0, fmt.Errorf("%w: spot %s", domain.ErrCapacityExhausted, spotID)
	}
	s.AvailableCount--
	t.undo = append(t.undo, func() { s.AvailableCount++ })
	return s.AvailableCount, nil
}

func (t *fakeTx) IncrementAvailability(ctx context.Context, spotID string) (int, error) {
	f := t.ledger
	if err := f.enter(ctx, FakeOpIncrement); err != nil {
		return 0, err
	}
	defer f.mu.Unlock()

	s, ok := f.spots[spotID]
	if !ok {
		return 0, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
	}
	if s.AvailableCount < s.TotalCapacity {
		s.AvailableCount++
		t.undo = append(t.undo, func() { s.AvailableCount-- })
	}
	return s.AvailableCount, nil
}

func (t *fakeTx) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	f := t.ledger
	if err := f.enter(ctx, FakeOpInsertBooking); err != nil {
		return err
	}
	defer f.mu.Unlock()

	if _, exists := f.bookings[booking.ID]; exists {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}
	booking.CreatedAt = time.Now().UTC()
	c := *booking
	f.bookings[booking.ID] = &c
	f.seq++
	f.seqs[booking.ID] = f.seq
	t.undo = append(t.undo, func() {
		delete(f.bookings, c.ID)
		delete(f.seqs, c.ID)
	})
	return nil
}

func (t *fakeTx) DeleteBookingOwnedBy(ctx context.Context, bookingID, principalID string) (*domain.Booking, error) {
	f := t.ledger
	if err := f.enter(ctx, FakeOpDeleteBooking); err != nil {
		return nil, err
	}
	defer f.mu.Unlock()

	b, ok := f.bookings[bookingID]
	if !ok || b.PrincipalID != principalID {
		return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, bookingID)
	}
	seq := f.seqs[bookingID]
	delete(f.bookings, bookingID)
	delete(f.seqs, bookingID)
	t.undo = append(t.undo, func() {
		f.bookings[b.ID] = b
		f.seqs[b.ID] = seq
	})
	c := *b
	return &c, nil
}

var (
	_ repository.Ledger   = (*FakeLedger)(nil)
	_ repository.LedgerTx = (*fakeTx)(nil)
)

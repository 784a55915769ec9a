package cartstore

import (
	"log/slog"
	"sync"

	"github.com/craftlane/storefront-service/internal/domain"
)

// PlaceholderImageURL is used for cart lines whose product has no image.
const PlaceholderImageURL = "/static/img/product-placeholder.png"

// Persister writes and reads the full cart snapshot (all merchant
// partitions). Save is called synchronously on every mutation before the new
// state becomes observable.
type Persister interface {
	Save(lines []domain.CartLine) error
	Load() ([]domain.CartLine, error)
}

// Store holds the cart lines for every merchant partition in insertion
// order. All mutations persist the whole cart first and notify subscribers
// after the new state is committed.
type Store struct {
	mu          sync.Mutex
	persister   Persister
	shippingFee domain.Money
	lines       []domain.CartLine
	subs        map[int]chan []domain.CartLine
	nextSubID   int
}

// New loads the persisted snapshot through the persister. A read failure or
// corrupt payload starts an empty cart instead of failing.
func New(persister Persister, shippingFee domain.Money) *Store {
	s := &Store{
		persister:   persister,
		shippingFee: shippingFee,
		subs:        make(map[int]chan []domain.CartLine),
	}
	if persister != nil {
		lines, err := persister.Load()
		if err != nil {
			slog.Warn("cart snapshot unreadable, starting with an empty cart", "error", err)
			lines = nil
		}
		s.lines = lines
	}
	return s
}

// AddItem adds the product to the merchant's partition. If a line for the
// same (merchant, product) already exists its quantity is incremented;
// otherwise a new line is appended. The caller supplies the unit price it
// resolved for the product, so whatever promotion applied at add-time is
// captured in the snapshot. A product without an id is silently ignored.
func (s *Store) AddItem(product *domain.Product, merchantID, merchantLabel string, quantity int, unitPrice domain.Money) error {
	if product == nil || product.ID == "" {
		return nil
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneLines()
	key := domain.LineKey{MerchantID: merchantID, ProductID: product.ID}
	if idx := indexOf(next, key); idx >= 0 {
		next[idx].Quantity += quantity
	} else {
		imageURL := product.ImageURL
		if imageURL == "" {
			imageURL = PlaceholderImageURL
		}
		next = append(next, domain.CartLine{
			ProductID:     product.ID,
			Name:          product.Name,
			UnitPrice:     unitPrice,
			ImageURL:      imageURL,
			Description:   product.Description,
			Quantity:      quantity,
			MerchantID:    merchantID,
			MerchantLabel: merchantLabel,
		})
	}
	return s.commit(next)
}

// UpdateQuantity replaces the quantity of an existing line. Non-positive
// quantities are rejected as a no-op; removal goes through RemoveItem only.
func (s *Store) UpdateQuantity(productID, merchantID string, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey{MerchantID: merchantID, ProductID: productID}
	idx := indexOf(s.lines, key)
	if idx < 0 {
		return nil
	}
	next := s.cloneLines()
	next[idx].Quantity = quantity
	return s.commit(next)
}

// RemoveItem deletes the matching line, preserving the order of the rest.
func (s *Store) RemoveItem(productID, merchantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey{MerchantID: merchantID, ProductID: productID}
	idx := indexOf(s.lines, key)
	if idx < 0 {
		return nil
	}
	next := s.cloneLines()
	next = append(next[:idx], next[idx+1:]...)
	return s.commit(next)
}

// Clear empties the whole cart across all merchant partitions. There is no
// per-merchant clear; checkout clears everything.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(nil)
}

// LinesFor returns the merchant's lines in insertion order.
func (s *Store) LinesFor(merchantID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lines []domain.CartLine
	for _, l := range s.lines {
		if l.MerchantID == merchantID {
			lines = append(lines, l)
		}
	}
	return lines
}

func (s *Store) Subtotal(merchantID string) domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal domain.Money
	for _, l := range s.lines {
		if l.MerchantID == merchantID {
			subtotal += l.LineTotal()
		}
	}
	return subtotal
}

// ShippingFee is a flat per-merchant fee; the source never computed it from
// weight or distance and neither does this service.
func (s *Store) ShippingFee(merchantID string) domain.Money {
	return s.shippingFee
}

func (s *Store) Total(merchantID string) domain.Money {
	return s.Subtotal(merchantID) + s.ShippingFee(merchantID)
}

func (s *Store) ItemCount(merchantID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		if l.MerchantID == merchantID {
			count += l.Quantity
		}
	}
	return count
}

func (s *Store) Contains(productID, merchantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.lines, domain.LineKey{MerchantID: merchantID, ProductID: productID}) >= 0
}

// Subscribe registers a listener that receives the full line list after
// every mutation. A slow subscriber has its oldest pending snapshot replaced
// rather than blocking mutations. The returned func cancels the
// subscription.
func (s *Store) Subscribe() (<-chan []domain.CartLine, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan []domain.CartLine, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// commit persists the candidate state and only then makes it observable.
// On a persistence failure the in-memory cart is left untouched.
func (s *Store) commit(next []domain.CartLine) error {
	if s.persister != nil {
		if err := s.persister.Save(next); err != nil {
			return err
		}
	}
	s.lines = next
	s.notifyLocked()
	return nil
}

func (s *Store) notifyLocked() {
	snapshot := s.cloneLines()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func (s *Store) cloneLines() []domain.CartLine {
	if len(s.lines) == 0 {
		return nil
	}
	cp := make([]domain.CartLine, len(s.lines))
	copy(cp, s.lines)
	return cp
}

func indexOf(lines []domain.CartLine, key domain.LineKey) int {
	for i := range lines {
		if lines[i].Key() == key {
			return i
		}
	}
	return -1
}

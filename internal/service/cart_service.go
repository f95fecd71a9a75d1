package service

import (
	"sync"

	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/models"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/repository"

	"github.com/google/uuid"
)

// UpdateOutcome reports how an update resolved, so the handler can
// pick the right message.
type UpdateOutcome int

const (
	OutcomeUpdated UpdateOutcome = iota
	OutcomeRemoved
)

// CartLineView is a cart line denormalized with catalog fields for
// the wire format.
type CartLineView struct {
	ID        string       `json:"id"`
	ProductID uint         `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Image     string       `json:"image"`
}

// CartService implements the cart operations. Check-then-mutate
// sequences run under a per-owner lock, so concurrent adds for the
// same owner merge instead of racing into the unique index.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository

	mu     sync.Mutex
	owners map[string]*sync.Mutex
}

// NewCartService creates a cart service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		owners:   make(map[string]*sync.Mutex),
	}
}

func (s *CartService) ownerLock(ownerKey string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.owners[ownerKey]
	if !ok {
		lock = &sync.Mutex{}
		s.owners[ownerKey] = lock
	}
	return lock
}

// List returns the owner's cart lines joined with catalog data, in
// insertion order. An owner who never added anything gets an empty
// list, same as one whose cart was cleared.
func (s *CartService) List(owner models.CartOwner) ([]CartLineView, error) {
	lines, err := s.carts.ListByOwner(owner.Key())
	if err != nil {
		return nil, err
	}
	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		view := CartLineView{
			ID:        line.LineID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		product, err := s.products.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			view.Name = product.Name
			view.Price = product.Price
			view.Image = product.Image
		}
		views = append(views, view)
	}
	return views, nil
}

// Add puts a product in the owner's cart. Adding a product already in
// the cart increases the existing line's quantity instead of creating
// a second line. Returns the number of distinct lines after the add.
func (s *CartService) Add(owner models.CartOwner, productID uint, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, ErrProductNotFound
	}

	lock := s.ownerLock(owner.Key())
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.carts.GetByProduct(owner.Key(), productID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		if err := s.carts.UpdateQuantity(owner.Key(), existing.LineID, existing.Quantity+quantity); err != nil {
			return 0, err
		}
	} else {
		line := &models.CartLine{
			LineID:    uuid.NewString(),
			OwnerKey:  owner.Key(),
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.carts.Create(line); err != nil {
			return 0, err
		}
	}
	return s.carts.CountByOwner(owner.Key())
}

// UpdateQuantity sets a line's quantity. Zero removes the line; the
// outcome tells the caller which happened. Negative quantities are
// rejected before any lookup.
func (s *CartService) UpdateQuantity(owner models.CartOwner, lineID string, quantity int) (UpdateOutcome, int64, error) {
	if quantity < 0 {
		return OutcomeUpdated, 0, ErrInvalidQuantity
	}

	lock := s.ownerLock(owner.Key())
	lock.Lock()
	defer lock.Unlock()

	hasCart, err := s.carts.HasCart(owner.Key())
	if err != nil {
		return OutcomeUpdated, 0, err
	}
	if !hasCart {
		return OutcomeUpdated, 0, ErrCartNotFound
	}
	line, err := s.carts.GetByLineID(owner.Key(), lineID)
	if err != nil {
		return OutcomeUpdated, 0, err
	}
	if line == nil {
		return OutcomeUpdated, 0, ErrLineNotFound
	}

	if quantity == 0 {
		if err := s.carts.DeleteLine(owner.Key(), lineID); err != nil {
			return OutcomeRemoved, 0, err
		}
		count, err := s.carts.CountByOwner(owner.Key())
		return OutcomeRemoved, count, err
	}

	if err := s.carts.UpdateQuantity(owner.Key(), lineID, quantity); err != nil {
		return OutcomeUpdated, 0, err
	}
	count, err := s.carts.CountByOwner(owner.Key())
	return OutcomeUpdated, count, err
}

// Remove deletes a line from the owner's cart. A missing cart and a
// missing line are distinct failures. Returns the remaining line count.
func (s *CartService) Remove(owner models.CartOwner, lineID string) (int64, error) {
	lock := s.ownerLock(owner.Key())
	lock.Lock()
	defer lock.Unlock()

	hasCart, err := s.carts.HasCart(owner.Key())
	if err != nil {
		return 0, err
	}
	if !hasCart {
		return 0, ErrCartNotFound
	}
	line, err := s.carts.GetByLineID(owner.Key(), lineID)
	if err != nil {
		return 0, err
	}
	if line == nil {
		return 0, ErrLineNotFound
	}
	if err := s.carts.DeleteLine(owner.Key(), lineID); err != nil {
		return 0, err
	}
	return s.carts.CountByOwner(owner.Key())
}

// Clear empties the owner's cart. Clearing an absent or already empty
// cart succeeds.
func (s *CartService) Clear(owner models.CartOwner) error {
	lock := s.ownerLock(owner.Key())
	lock.Lock()
	defer lock.Unlock()

	return s.carts.ClearByOwner(owner.Key())
}

// Package apptest provee dobles en memoria de los puertos de persistencia
// para probar los casos de uso sin PostgreSQL. El store serializa las
// unidades de trabajo con un mutex (el equivalente del bloqueo de fila) y el
// TxRunner falso restaura un snapshot ante error, imitando el Rollback.
package apptest

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
	"github.com/tu-usuario/panaderia-api/internal/domain/repository"
)

// Store estado compartido de los repositorios falsos.
type Store struct {
	mu        sync.Mutex
	Products  map[string]*entity.Product
	Sales     []*entity.Sale
	Movements []*entity.StockMovement

	// Inyección de fallos para probar la atomicidad.
	FailSaleCreate     error
	FailMovementCreate error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{Products: make(map[string]*entity.Product)}
}

// PutProduct registra un producto en el store (setup de tests).
func (s *Store) PutProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.Products[p.ID] = &cp
}

// Product devuelve una copia del producto, o nil si no existe.
func (s *Store) Product(id string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// snapshot copia el estado mutable para poder restaurarlo en el rollback.
func (s *Store) snapshot() (map[string]*entity.Product, []*entity.Sale, []*entity.StockMovement) {
	products := make(map[string]*entity.Product, len(s.Products))
	for id, p := range s.Products {
		cp := *p
		products[id] = &cp
	}
	sales := append([]*entity.Sale(nil), s.Sales...)
	movements := append([]*entity.StockMovement(nil), s.Movements...)
	return products, sales, movements
}

// TxRunner ejecuta la unidad de trabajo serializada por el mutex del store.
// Si fn devuelve error el estado vuelve al snapshot previo: cero efectos
// observables, como un Rollback real.
type TxRunner struct {
	Store *Store
}

// NewTxRunner construye el runner falso sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{Store: store}
}

// Run implementa sales.TxRunner e inventory.TxRunner.
func (r *TxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	products, sales, movements := r.Store.snapshot()
	err := fn(
		&productRepo{store: r.Store},
		&saleRepo{store: r.Store},
		&movementRepo{store: r.Store},
	)
	if err != nil {
		r.Store.Products = products
		r.Store.Sales = sales
		r.Store.Movements = movements
		return err
	}
	return nil
}

// ── repos ligados al store (sin lock propio: corren dentro de Run o en
// lecturas puntuales de tests de un solo goroutine) ──────────────────────────

type productRepo struct{ store *Store }

var _ repository.ProductRepository = (*productRepo)(nil)

func (r *productRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.Products[p.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.Products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) Update(p *entity.Product) error {
	existing, ok := r.store.Products[p.ID]
	if !ok {
		return nil
	}
	cp := *p
	cp.CurrentStock = existing.CurrentStock
	r.store.Products[p.ID] = &cp
	return nil
}

func (r *productRepo) UpdateStock(productID string, newStock int64, updatedAt time.Time) error {
	if p, ok := r.store.Products[productID]; ok {
		p.CurrentStock = newStock
		p.UpdatedAt = updatedAt
	}
	return nil
}

func (r *productRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.store.Products))
	for _, p := range r.store.Products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *productRepo) Delete(id string) error {
	delete(r.store.Products, id)
	return nil
}

type saleRepo struct{ store *Store }

var _ repository.SaleRepository = (*saleRepo)(nil)

func (r *saleRepo) Create(sale *entity.Sale) error {
	if r.store.FailSaleCreate != nil {
		return r.store.FailSaleCreate
	}
	cp := *sale
	r.store.Sales = append(r.store.Sales, &cp)
	return nil
}

type movementRepo struct{ store *Store }

var _ repository.StockMovementRepository = (*movementRepo)(nil)

func (r *movementRepo) Create(m *entity.StockMovement) error {
	if r.store.FailMovementCreate != nil {
		return r.store.FailMovementCreate
	}
	cp := *m
	r.store.Movements = append(r.store.Movements, &cp)
	return nil
}

func (r *movementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var matched []*entity.StockMovement
	for i := len(r.store.Movements) - 1; i >= 0; i-- {
		if r.store.Movements[i].ProductID == productID {
			cp := *r.store.Movements[i]
			matched = append(matched, &cp)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// MovementRepo expone el repo de movimientos para construir casos de uso que
// leen el ledger fuera de la transacción.
func (s *Store) MovementRepo() repository.StockMovementRepository {
	return &movementRepo{store: s}
}

// ProductRepo expone el repo de productos para los casos de uso CRUD que
// operan fuera de la transacción.
func (s *Store) ProductRepo() repository.ProductRepository {
	return &productRepo{store: s}
}

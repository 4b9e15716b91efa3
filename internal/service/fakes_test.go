package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/pawtopia/petshop-api/internal/domain"
)

type fakeAdminRepo struct {
	admins map[string]*domain.Admin
	nextID int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	f.nextID++
	admin.ID = f.nextID
	f.admins[admin.Username] = admin
	return nil
}

func (f *fakeAdminRepo) Update(_ context.Context, admin *domain.Admin) error {
	for username, stored := range f.admins {
		if stored.ID == admin.ID {
			delete(f.admins, username)
			clone := *admin
			f.admins[admin.Username] = &clone
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeAdminRepo) Delete(_ context.Context, id int64) error {
	for username, stored := range f.admins {
		if stored.ID == id {
			delete(f.admins, username)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id int64) (*domain.Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (f *fakeAdminRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.admins[username]
	return ok, nil
}

func (f *fakeAdminRepo) List(_ context.Context) ([]domain.Admin, error) {
	out := make([]domain.Admin, 0, len(f.admins))
	for _, admin := range f.admins {
		out = append(out, *admin)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*domain.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	f.nextID++
	customer.ID = f.nextID
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := f.customers[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.customers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *customer
	return &clone, nil
}

func (f *fakeCustomerRepo) GetByUsername(_ context.Context, username string) (*domain.Customer, error) {
	for _, customer := range f.customers {
		if customer.Username == username {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, customer := range f.customers {
		if customer.Email == email {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCustomerRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		out = append(out, *customer)
	}
	return out, nil
}

type fakeCartRepo struct {
	carts map[int64]*domain.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[int64]*domain.Cart)}
}

func (f *fakeCartRepo) Create(_ context.Context, customerID int64) error {
	if _, ok := f.carts[customerID]; !ok {
		f.carts[customerID] = &domain.Cart{ID: customerID}
	}
	return nil
}

func (f *fakeCartRepo) GetByID(_ context.Context, cartID int64) (*domain.Cart, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return cart, nil
}

func (f *fakeCartRepo) List(_ context.Context) ([]domain.Cart, error) {
	out := make([]domain.Cart, 0, len(f.carts))
	for _, cart := range f.carts {
		out = append(out, *cart)
	}
	return out, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, cartID int64) error {
	if _, ok := f.carts[cartID]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.carts, cartID)
	return nil
}

type fakeProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*domain.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	f.nextID++
	product.ID = f.nextID
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *product
	return &clone, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, *product)
	}
	return out, nil
}

func (f *fakeProductRepo) TotalQuantitySold(_ context.Context) (int, error) {
	total := 0
	for _, product := range f.products {
		total += product.QuantitySold
	}
	return total, nil
}

type fakeOrderRepo struct {
	orders   map[int64]*domain.Order
	nextID   int64
	approved map[[2]int64]bool // (customerID, productID) -> has approved order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[int64]*domain.Order),
		approved: make(map[[2]int64]bool),
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	f.nextID++
	order.ID = f.nextID
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		order.Items[i].ID = int64(i + 1)
	}
	clone := *order
	f.orders[order.ID] = &clone
	return nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *domain.Order) error {
	stored, ok := f.orders[order.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	items := stored.Items
	clone := *order
	clone.Items = items
	f.orders[order.ID] = &clone
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *order
	return &clone, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(f.orders))
	for _, order := range f.orders {
		out = append(out, *order)
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByCustomerID(_ context.Context, customerID int64) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if order.CustomerID == customerID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) TotalIncome(_ context.Context) (float64, error) {
	var total float64
	for _, order := range f.orders {
		total += order.TotalPrice
	}
	return total, nil
}

func (f *fakeOrderRepo) SetPaymentLink(_ context.Context, orderID int64, linkID string) error {
	order, ok := f.orders[orderID]
	if !ok {
		return pgx.ErrNoRows
	}
	order.PaymentLinkID = &linkID
	return nil
}

func (f *fakeOrderRepo) SetPaymentStatus(_ context.Context, orderID int64, status string) error {
	order, ok := f.orders[orderID]
	if !ok {
		return pgx.ErrNoRows
	}
	order.PaymentStatus = status
	return nil
}

func (f *fakeOrderRepo) HasApprovedOrderWithProduct(_ context.Context, customerID, productID int64) (bool, error) {
	return f.approved[[2]int64{customerID, productID}], nil
}

type fakeOrderItemRepo struct {
	items  map[int64]*domain.OrderItem
	nextID int64
}

func newFakeOrderItemRepo() *fakeOrderItemRepo {
	return &fakeOrderItemRepo{items: make(map[int64]*domain.OrderItem)}
}

func (f *fakeOrderItemRepo) Create(_ context.Context, item *domain.OrderItem) error {
	f.nextID++
	item.ID = f.nextID
	clone := *item
	f.items[item.ID] = &clone
	return nil
}

func (f *fakeOrderItemRepo) Update(_ context.Context, item *domain.OrderItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *item
	f.items[item.ID] = &clone
	return nil
}

func (f *fakeOrderItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

func (f *fakeOrderItemRepo) GetByID(_ context.Context, id int64) (*domain.OrderItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *item
	return &clone, nil
}

func (f *fakeOrderItemRepo) List(_ context.Context) ([]domain.OrderItem, error) {
	out := make([]domain.OrderItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews map[int64]*domain.ProductReview
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*domain.ProductReview)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.ProductReview) error {
	f.nextID++
	review.ID = f.nextID
	clone := *review
	f.reviews[review.ID] = &clone
	return nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *domain.ProductReview) error {
	stored, ok := f.reviews[review.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Ratings = review.Ratings
	stored.Comment = review.Comment
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id int64) (*domain.ProductReview, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *review
	return &clone, nil
}

func (f *fakeReviewRepo) List(_ context.Context) ([]domain.ProductReview, error) {
	out := make([]domain.ProductReview, 0, len(f.reviews))
	for _, review := range f.reviews {
		out = append(out, *review)
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByProductID(_ context.Context, productID int64) ([]domain.ProductReview, error) {
	var out []domain.ProductReview
	for _, review := range f.reviews {
		if review.ProductID == productID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ExistsByCustomerAndProduct(_ context.Context, customerID, productID int64) (bool, error) {
	for _, review := range f.reviews {
		if review.CustomerID == customerID && review.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

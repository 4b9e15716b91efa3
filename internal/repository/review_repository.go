package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// ReviewRepository defines persistence access for product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.ProductReview) error
	Update(ctx context.Context, review *domain.ProductReview) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ProductReview, error)
	List(ctx context.Context) ([]domain.ProductReview, error)
	ListByProductID(ctx context.Context, productID int64) ([]domain.ProductReview, error)
	ExistsByCustomerAndProduct(ctx context.Context, customerID, productID int64) (bool, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository returns a Postgres-backed implementation.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

// Reviews join the reviewer's username for display, matching the storefront's
// review listings.
const reviewSelect = `
        SELECT r.review_id, r.product_id, r.customer_id, r.order_id, r.ratings,
               COALESCE(r.comment, ''), c.username, r.created_at, r.updated_at
        FROM product_reviews r
        JOIN customers c ON c.customer_id = r.customer_id`

func (r *reviewRepository) Create(ctx context.Context, review *domain.ProductReview) error {
	const query = `
        INSERT INTO product_reviews (product_id, customer_id, order_id, ratings, comment)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING review_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		review.ProductID,
		review.CustomerID,
		review.OrderID,
		review.Ratings,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.ProductReview) error {
	const query = `
        UPDATE product_reviews SET ratings=$1, comment=$2, updated_at=NOW()
        WHERE review_id=$3`

	cmd, err := r.pool.Exec(ctx, query, review.Ratings, review.Comment, review.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM product_reviews WHERE review_id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*domain.ProductReview, error) {
	var review domain.ProductReview
	if err := r.pool.QueryRow(ctx, reviewSelect+` WHERE r.review_id=$1`, id).Scan(
		&review.ID, &review.ProductID, &review.CustomerID, &review.OrderID,
		&review.Ratings, &review.Comment, &review.Username, &review.CreatedAt, &review.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]domain.ProductReview, error) {
	return r.list(ctx, reviewSelect+` ORDER BY r.review_id`)
}

func (r *reviewRepository) ListByProductID(ctx context.Context, productID int64) ([]domain.ProductReview, error) {
	return r.list(ctx, reviewSelect+` WHERE r.product_id=$1 ORDER BY r.review_id`, productID)
}

func (r *reviewRepository) list(ctx context.Context, query string, args ...any) ([]domain.ProductReview, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.ProductReview
	for rows.Next() {
		var review domain.ProductReview
		if err := rows.Scan(
			&review.ID, &review.ProductID, &review.CustomerID, &review.OrderID,
			&review.Ratings, &review.Comment, &review.Username, &review.CreatedAt, &review.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) ExistsByCustomerAndProduct(ctx context.Context, customerID, productID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM product_reviews WHERE customer_id=$1 AND product_id=$2
        )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, customerID, productID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

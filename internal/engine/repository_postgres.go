package engine

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

// PostgresRepository implements Repository against the `products` table.
type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT product_id, product_name, brand, category, price, rating, review_count, date_added, is_sale, is_new, discount
		FROM products
		ORDER BY product_id
	`
	getProductsByIDsQuery = `
		SELECT product_id, product_name, brand, category, price, rating, review_count, date_added, is_sale, is_new, discount
		FROM products
		WHERE product_id = ANY($1::int[])
		ORDER BY array_position($1::int[], product_id)
	`
	insertProductQuery = `
		INSERT INTO products (product_name, brand, category, price, rating, review_count, date_added, is_sale, is_new, discount)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING product_id
	`
	updateProductQuery = `
		UPDATE products
		SET product_name = $1,
			brand = $2,
			category = $3,
			price = $4,
			rating = $5,
			review_count = $6,
			date_added = $7,
			is_sale = $8,
			is_new = $9,
			discount = $10
		WHERE product_id = $11
	`
	deleteProductQuery = `DELETE FROM products WHERE product_id = $1`
	clearProductsQuery = `DELETE FROM products`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (catalog.Product, error) {
	var (
		p           catalog.Product
		brand       sql.NullString
		category    sql.NullString
		reviewCount sql.NullInt64
		dateAdded   sql.NullString
		isSale      sql.NullBool
		isNew       sql.NullBool
		discount    sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.Name, &brand, &category, &p.Price, &p.Rating, &reviewCount, &dateAdded, &isSale, &isNew, &discount)
	if err != nil {
		return catalog.Product{}, err
	}
	if brand.Valid {
		p.Brand = brand.String
	}
	if category.Valid {
		p.Category = category.String
	}
	if reviewCount.Valid {
		p.ReviewCount = int(reviewCount.Int64)
	}
	if dateAdded.Valid {
		p.DateAdded = dateAdded.String
	}
	if isSale.Valid {
		p.IsSale = isSale.Bool
	}
	if isNew.Valid {
		p.IsNew = isNew.Bool
	}
	if discount.Valid {
		p.Discount = int(discount.Int64)
	}
	return p, nil
}

func (r *PostgresRepository) List() ([]catalog.Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByIDs fetches the given products in the order of the id list; unknown
// ids are simply absent from the result.
func (r *PostgresRepository) GetByIDs(ids []int) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	rows, err := r.db.Query(getProductsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(p catalog.Product) (catalog.Product, error) {
	err := r.db.QueryRow(insertProductQuery,
		p.Name, p.Brand, p.Category, p.Price, p.Rating, p.ReviewCount, p.DateAdded, p.IsSale, p.IsNew, p.Discount,
	).Scan(&p.ID)
	if err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p catalog.Product) (catalog.Product, error) {
	res, err := r.db.Exec(updateProductQuery,
		p.Name, p.Brand, p.Category, p.Price, p.Rating, p.ReviewCount, p.DateAdded, p.IsSale, p.IsNew, p.Discount, id,
	)
	if err != nil {
		return catalog.Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalog.Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Reset(products []catalog.Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(clearProductsQuery); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(insertProductQuery,
			p.Name, p.Brand, p.Category, p.Price, p.Rating, p.ReviewCount, p.DateAdded, p.IsSale, p.IsNew, p.Discount,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

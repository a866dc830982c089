// internal/adapters/db/item_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/pantryos/pantry-be/internal/core/domain"
	"github.com/pantryos/pantry-be/internal/core/ports"
)

// itemRepository implements ports.ItemRepository
type itemRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *Database, logger *slog.Logger) ports.ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "item")),
	}
}

// Upsert inserts a catalog row keyed by barcode, overwriting the mutable
// fields when the barcode already exists. The (xmax = 0) trick reports
// whether the row is new.
func (r *itemRepository) Upsert(ctx context.Context, item *domain.Item) (bool, error) {
	query := `
		INSERT INTO items (barcode, title, alias, description, category)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (barcode) DO UPDATE SET
			title = EXCLUDED.title,
			alias = EXCLUDED.alias,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS created`

	var created bool
	err := r.db.QueryRow(ctx, query,
		item.Barcode, item.Title, item.Alias, item.Description, item.Category,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt, &created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert item: %w", err)
	}

	r.logger.DebugContext(ctx, "item upserted",
		slog.Int64("id", item.ID),
		slog.String("barcode", item.Barcode),
		slog.Bool("created", created))

	return created, nil
}

// GetOrCreate inserts a catalog row unless the barcode exists, in which
// case the existing row is read back into item untouched.
func (r *itemRepository) GetOrCreate(ctx context.Context, item *domain.Item) (bool, error) {
	query := `
		INSERT INTO items (barcode, title, alias, description, category)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (barcode) DO NOTHING
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		item.Barcode, item.Title, item.Alias, item.Description, item.Category,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err == nil {
		return true, nil
	}
	if err != pgx.ErrNoRows {
		return false, fmt.Errorf("failed to insert item: %w", err)
	}

	// Lost the conflict; the existing row wins.
	existing, err := r.FindByBarcode(ctx, item.Barcode)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, fmt.Errorf("item vanished during get-or-create: %s", item.Barcode)
	}
	*item = *existing
	return false, nil
}

// Update overwrites the shared catalog fields of an existing item.
func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items SET
			title = $2, alias = $3, description = $4, category = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		item.ID, item.Title, item.Alias, item.Description, item.Category,
	).Scan(&item.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.logger.DebugContext(ctx, "item updated", slog.Int64("id", item.ID))
	return nil
}

// FindByID retrieves a catalog item by ID, (nil, nil) when absent.
func (r *itemRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `
		SELECT id, barcode, title, alias, description, category, created_at, updated_at
		FROM items
		WHERE id = $1`
	return r.scanItem(r.db.QueryRow(ctx, query, id))
}

// FindByBarcode retrieves a catalog item by barcode, (nil, nil) when absent.
func (r *itemRepository) FindByBarcode(ctx context.Context, barcode string) (*domain.Item, error) {
	query := `
		SELECT id, barcode, title, alias, description, category, created_at, updated_at
		FROM items
		WHERE barcode = $1`
	return r.scanItem(r.db.QueryRow(ctx, query, barcode))
}

// FindForUser retrieves an item the user holds at least one ledger row
// for, with the user's aggregate quantity across locations.
func (r *itemRepository) FindForUser(ctx context.Context, userID, itemID int64) (*domain.Item, error) {
	query := `
		SELECT i.id, i.barcode, i.title, i.alias, i.description, i.category,
			i.created_at, i.updated_at, COALESCE(SUM(q.quantity), 0)::int AS quantity
		FROM items i
		JOIN user_item_quantities q ON q.item_id = i.id AND q.user_id = $1
		WHERE i.id = $2
		GROUP BY i.id`

	item := &domain.Item{}
	err := r.db.QueryRow(ctx, query, userID, itemID).Scan(
		&item.ID, &item.Barcode, &item.Title, &item.Alias, &item.Description,
		&item.Category, &item.CreatedAt, &item.UpdatedAt, &item.Quantity,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item for user: %w", err)
	}
	return item, nil
}

// ListForUser retrieves one page of the user's items with their aggregate
// quantities, plus the total number of distinct items matching the filter.
func (r *itemRepository) ListForUser(ctx context.Context, userID int64, q ports.ItemQuery) ([]*domain.Item, int64, error) {
	base := squirrel.Select().
		From("items i").
		Join("user_item_quantities q ON q.item_id = i.id").
		Where(squirrel.Eq{"q.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		base = base.Where(squirrel.Or{
			squirrel.ILike{"i.title": pattern},
			squirrel.ILike{"i.alias": pattern},
			squirrel.ILike{"i.description": pattern},
			squirrel.ILike{"i.barcode": pattern},
		})
	}

	countSQL, countArgs, err := base.Column("COUNT(DISTINCT i.id)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	qb := base.Columns(
		"i.id", "i.barcode", "i.title", "i.alias", "i.description", "i.category",
		"i.created_at", "i.updated_at", "COALESCE(SUM(q.quantity), 0)::int AS quantity",
	).
		GroupBy("i.id").
		OrderBy("i.title ASC, i.id ASC")

	if q.Limit > 0 {
		qb = qb.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		qb = qb.Offset(uint64(q.Offset))
	}

	listSQL, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		err := rows.Scan(
			&item.ID, &item.Barcode, &item.Title, &item.Alias, &item.Description,
			&item.Category, &item.CreatedAt, &item.UpdatedAt, &item.Quantity,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, totalCount, nil
}

// AggregateQuantity sums the user's ledger quantity for an item across
// all locations.
func (r *itemRepository) AggregateQuantity(ctx context.Context, userID, itemID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)::int
		FROM user_item_quantities
		WHERE user_id = $1 AND item_id = $2`

	var total int
	if err := r.db.QueryRow(ctx, query, userID, itemID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to aggregate quantity: %w", err)
	}
	return total, nil
}

// UpsertQuantity creates or overwrites the ledger row for
// (user, item, location).
func (r *itemRepository) UpsertQuantity(ctx context.Context, userID, itemID, locationID int64, quantity int) error {
	query := `
		INSERT INTO user_item_quantities (user_id, item_id, location_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, item_id, location_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, userID, itemID, locationID, quantity); err != nil {
		return fmt.Errorf("failed to upsert ledger quantity: %w", err)
	}
	return nil
}

// IncrementOrCreate adds one unit to the ledger row for
// (user, item, location), creating it at quantity 1 when absent. The
// increment happens in the database so concurrent adds never lose units.
func (r *itemRepository) IncrementOrCreate(ctx context.Context, userID, itemID, locationID int64) error {
	query := `
		INSERT INTO user_item_quantities (user_id, item_id, location_id, quantity)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, item_id, location_id) DO UPDATE SET
			quantity = user_item_quantities.quantity + 1,
			updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, userID, itemID, locationID); err != nil {
		return fmt.Errorf("failed to increment ledger quantity: %w", err)
	}
	return nil
}

// OverwriteQuantity updates an existing ledger row; it never creates one.
func (r *itemRepository) OverwriteQuantity(ctx context.Context, userID, itemID, locationID int64, quantity int) (bool, error) {
	query := `
		UPDATE user_item_quantities
		SET quantity = $4, updated_at = NOW()
		WHERE user_id = $1 AND item_id = $2 AND location_id = $3`

	tag, err := r.db.Exec(ctx, query, userID, itemID, locationID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to overwrite ledger quantity: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveFromUser deletes the user's ledger rows for an item and, when no
// ledger row anywhere still references it, the catalog row itself. Both
// steps run in one transaction so a concurrent add cannot orphan-delete.
func (r *itemRepository) RemoveFromUser(ctx context.Context, userID, itemID int64) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM user_item_quantities WHERE user_id = $1 AND item_id = $2`,
			userID, itemID,
		); err != nil {
			return fmt.Errorf("failed to delete ledger rows: %w", err)
		}

		tag, err := tx.Exec(ctx, `
			DELETE FROM items
			WHERE id = $1
			  AND NOT EXISTS (
				SELECT 1 FROM user_item_quantities WHERE item_id = $1
			  )`, itemID)
		if err != nil {
			return fmt.Errorf("failed to garbage-collect item: %w", err)
		}

		r.logger.InfoContext(ctx, "item removed from user",
			slog.Int64("item_id", itemID),
			slog.Int64("user_id", userID),
			slog.Bool("catalog_row_deleted", tag.RowsAffected() > 0))

		return nil
	})
}

func (r *itemRepository) scanItem(row pgx.Row) (*domain.Item, error) {
	item := &domain.Item{}
	err := row.Scan(
		&item.ID, &item.Barcode, &item.Title, &item.Alias, &item.Description,
		&item.Category, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// Las líneas de compra, venta y devolución comparten la tabla order_lines
// (los IDs de pedido son UUID, no colisionan entre tablas). Se reescriben
// completas en cada Update: borrar e insertar es más simple que un diff y las
// listas son cortas.

func insertLines(q Querier, orderID string, lines []entity.OrderLine) error {
	for i := range lines {
		l := &lines[i]
		if l.ID == "" {
			l.ID = uuid.New().String()
		}
		l.OrderID = orderID
		_, err := q.Exec(context.Background(),
			`INSERT INTO order_lines (id, order_id, item_id, quantity, unit_price, reason)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			l.ID, l.OrderID, l.ItemID, l.Quantity, l.UnitPrice, l.Reason,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

func replaceLines(q Querier, orderID string, lines []entity.OrderLine) error {
	if _, err := q.Exec(context.Background(),
		`DELETE FROM order_lines WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	return insertLines(q, orderID, lines)
}

func loadLines(q Querier, orderID string) ([]entity.OrderLine, error) {
	rows, err := q.Query(context.Background(),
		`SELECT id, order_id, item_id, quantity, unit_price, reason
		 FROM order_lines WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.Quantity, &l.UnitPrice, &l.Reason); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// loadLinesFor carga en un solo viaje las líneas de varios pedidos y las
// agrupa por pedido. Evita el N+1 en los listados.
func loadLinesFor(q Querier, orderIDs []string) (map[string][]entity.OrderLine, error) {
	if len(orderIDs) == 0 {
		return map[string][]entity.OrderLine{}, nil
	}
	rows, err := q.Query(context.Background(),
		`SELECT id, order_id, item_id, quantity, unit_price, reason
		 FROM order_lines WHERE order_id = ANY($1) ORDER BY id`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()
	byOrder := make(map[string][]entity.OrderLine, len(orderIDs))
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.Quantity, &l.UnitPrice, &l.Reason); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}
	return byOrder, rows.Err()
}

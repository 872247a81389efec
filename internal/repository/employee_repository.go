package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/crewcal/internal/domain"
)

// EmployeeRepository encapsulates roster document persistence.
type EmployeeRepository interface {
	// Create inserts a new employee; returns false when the id is already
	// taken within the partition.
	Create(ctx context.Context, employee *domain.Employee) (bool, error)
	Upsert(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, partition domain.Partition, id string) (bool, error)
	GetByID(ctx context.Context, partition domain.Partition, id string) (*domain.Employee, error)
	ListByPartition(ctx context.Context, partition domain.Partition) ([]domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository instantiates repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) (bool, error) {
	doc, err := json.Marshal(employee)
	if err != nil {
		return false, fmt.Errorf("encode employee: %w", err)
	}
	const query = `
        INSERT INTO employees (region, department, id, doc, updated_at)
        VALUES ($1,$2,$3,$4,NOW())
        ON CONFLICT (region, department, id) DO NOTHING`
	cmd, err := r.pool.Exec(ctx, query, employee.Region, employee.Department, employee.ID, doc)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *employeeRepository) Upsert(ctx context.Context, employee *domain.Employee) error {
	doc, err := json.Marshal(employee)
	if err != nil {
		return fmt.Errorf("encode employee: %w", err)
	}
	const query = `
        INSERT INTO employees (region, department, id, doc, updated_at)
        VALUES ($1,$2,$3,$4,NOW())
        ON CONFLICT (region, department, id)
        DO UPDATE SET doc=EXCLUDED.doc, updated_at=NOW()`
	_, err = r.pool.Exec(ctx, query, employee.Region, employee.Department, employee.ID, doc)
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, partition domain.Partition, id string) (bool, error) {
	const query = `DELETE FROM employees WHERE region=$1 AND department=$2 AND id=$3`
	cmd, err := r.pool.Exec(ctx, query, partition.Region, partition.Department, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, partition domain.Partition, id string) (*domain.Employee, error) {
	const query = `SELECT doc FROM employees WHERE region=$1 AND department=$2 AND id=$3`
	var doc []byte
	if err := r.pool.QueryRow(ctx, query, partition.Region, partition.Department, id).Scan(&doc); err != nil {
		return nil, err
	}
	var employee domain.Employee
	if err := json.Unmarshal(doc, &employee); err != nil {
		return nil, fmt.Errorf("decode employee: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) ListByPartition(ctx context.Context, partition domain.Partition) ([]domain.Employee, error) {
	// Insertion order (updated_at, id) is the tie-break behind SortOrder,
	// applied in memory by domain.SortEmployees.
	const query = `
        SELECT doc FROM employees
        WHERE region=$1 AND department=$2
        ORDER BY updated_at, id`
	rows, err := r.pool.Query(ctx, query, partition.Region, partition.Department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	var result []domain.Employee
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var employee domain.Employee
		if err := json.Unmarshal(doc, &employee); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

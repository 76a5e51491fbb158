package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/utils"
	"github.com/google/uuid"
)

func newTestProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &productRepository{
		db:     &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: l},
		logger: l,
		ids:    utils.NewUUIDGenerator(),
	}
	return repo, mock, db
}

func TestCreateProduct_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	rows := sqlmock.
		NewRows([]string{"id", "name"}).
		AddRow(id, "coffeeMug")

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(sqlmock.AnyArg(), "coffeeMug").
		WillReturnRows(rows)

	created, err := repo.CreateProduct(ctx, "coffeeMug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != id {
		t.Errorf("expected ID %s, got %s", id, created.ID)
	}
	if created.Name != "coffeeMug" {
		t.Errorf("expected name coffeeMug, got %s", created.Name)
	}
}

func TestCreateProduct_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateProduct(ctx, "coffeeMug")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateProduct_ScanError(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(uuid.New())

	mock.ExpectQuery("INSERT INTO products").
		WillReturnRows(rows)

	_, err := repo.CreateProduct(ctx, "coffeeMug")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestGetAllProducts_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "name"}).
		AddRow(uuid.New(), "coffeeMug").
		AddRow(uuid.New(), "wirelessCharger").
		AddRow(uuid.New(), "gamingMouse")

	mock.ExpectQuery("SELECT id, name").
		WillReturnRows(rows)

	products, err := repo.GetAllProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[2].Name != "gamingMouse" {
		t.Errorf("expected gamingMouse, got %s", products[2].Name)
	}
}

func TestGetAllProducts_QueryError(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetAllProducts(ctx)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetAllProducts_ScanError(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(uuid.New())

	mock.ExpectQuery("SELECT id, name").
		WillReturnRows(rows)

	_, err := repo.GetAllProducts(ctx)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

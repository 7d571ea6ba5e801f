package actionlog

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := Added("admin", "component", 7, "core")

	mock.ExpectExec(`INSERT INTO action_log`).
		WithArgs(
			sqlmock.AnyArg(), // action_time
			"admin",          // username
			"component",      // object_type
			int64(7),         // object_id
			"core",           // object_repr
			ActionAddition,   // action_flag
			`added component "core"`,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveDeletion(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := Deleted("admin", "category", 1, "Backend")

	mock.ExpectExec(`INSERT INTO action_log`).
		WithArgs(
			sqlmock.AnyArg(),
			"admin",
			"category",
			int64(1),
			"Backend",
			ActionDeletion,
			`deleted category "Backend"`,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreNilDB(t *testing.T) {
	store := &Store{db: nil}

	// Should not error when db is nil
	err := store.Save(Added("admin", "component", 1, "core"))
	if err != nil {
		t.Errorf("Save() with nil db should not error, got: %v", err)
	}
}

func TestStoreClose(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	store := NewStoreWithDB(db)

	mock.ExpectClose()

	err = store.Close()
	if err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreCloseNilDB(t *testing.T) {
	store := &Store{db: nil}

	err := store.Close()
	if err != nil {
		t.Errorf("Close() with nil db should not error, got: %v", err)
	}
}

func TestNewStoreEmptyURL(t *testing.T) {
	store, err := NewStore("")
	if err != nil {
		t.Errorf("NewStore(\"\") error = %v", err)
	}
	if store != nil {
		t.Errorf("NewStore(\"\") should return nil store, got %v", store)
	}
}

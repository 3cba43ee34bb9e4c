package history

import (
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestInsert_ReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO history").
		WithArgs(7, KindProfileAnalysis, "jane", 0, 0.0, pq.Array([]string{"plants", "running"}), "green thumb", []byte("null"), "2025-01-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	rec, err := repo.Insert(Record{
		AccountID: 7,
		Kind:      KindProfileAnalysis,
		Username:  "jane",
		Interests: []string{"plants", "running"},
		Analysis:  "green thumb",
		CreatedAt: "2025-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if rec.ID != 42 {
		t.Fatalf("expected assigned id 42, got %d", rec.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByAccount_ScansRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	gifts := json.RawMessage(`[{"name":"Mug","price":12}]`)
	rows := sqlmock.NewRows([]string{"id", "account_id", "kind", "username", "age", "budget", "interests", "analysis", "gifts", "created_at"}).
		AddRow(2, 7, KindRecommendations, nil, 30, 50.0, "{}", nil, []byte(gifts), "2025-01-02T00:00:00Z").
		AddRow(1, 7, KindProfileAnalysis, "jane", 0, 0.0, "{plants}", "green thumb", []byte("null"), "2025-01-01T00:00:00Z")
	mock.ExpectQuery("FROM history").WithArgs(7, 20, 0).WillReturnRows(rows)

	records, err := repo.ListByAccount(7, 20, 0)
	if err != nil {
		t.Fatalf("ListByAccount failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Kind != KindRecommendations || string(records[0].Gifts) != string(gifts) {
		t.Fatalf("first record wrong: %+v", records[0])
	}
	if records[1].Username != "jane" || records[1].Interests[0] != "plants" {
		t.Fatalf("second record wrong: %+v", records[1])
	}
	if records[1].Gifts != nil {
		t.Fatalf("null gifts column should stay nil, got %s", records[1].Gifts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

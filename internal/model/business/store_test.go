package business_test

import (
	"testing"

	business "github.com/frontdeskhq/frontdesk/backend/internal/model/business"
)

func TestCreateAssignsID(t *testing.T) {
	store := business.NewMemoryStore()

	created := store.Create(business.Business{Name: "Acme Dental"})
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, ok := store.FindByID(created.ID)
	if !ok {
		t.Fatal("created business not found")
	}
	if got.Name != "Acme Dental" {
		t.Fatalf("unexpected name: %q", got.Name)
	}
}

func TestFindByIDMissing(t *testing.T) {
	store := business.NewMemoryStore()
	if _, ok := store.FindByID("missing"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestDocumentsKeepInsertionOrder(t *testing.T) {
	store := business.NewMemoryStore()
	created := store.Create(business.Business{Name: "Acme Dental"})

	for _, title := range []string{"Hours", "Pricing", "Parking"} {
		if _, ok := store.AddDocument(created.ID, business.Document{Title: title}); !ok {
			t.Fatalf("AddDocument failed for %q", title)
		}
	}

	docs := store.DocumentsByBusiness(created.ID)
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, want := range []string{"Hours", "Pricing", "Parking"} {
		if docs[i].Title != want {
			t.Fatalf("document %d out of order: got %q want %q", i, docs[i].Title, want)
		}
	}
}

func TestAddDocumentUnknownBusiness(t *testing.T) {
	store := business.NewMemoryStore()
	if _, ok := store.AddDocument("missing", business.Document{Title: "x"}); ok {
		t.Fatal("expected AddDocument to reject unknown business")
	}
}

func TestDocumentsByBusinessEmpty(t *testing.T) {
	store := business.NewMemoryStore()
	created := store.Create(business.Business{Name: "Acme Dental"})

	if docs := store.DocumentsByBusiness(created.ID); len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}

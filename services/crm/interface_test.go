package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

func testBooking() models.Booking {
	return models.Booking{
		ID:      "b-1",
		Name:    "Ada Vale",
		Email:   "ada@valeco.example",
		Phone:   "+1 555 0100",
		Company: "Vale & Co",
		Start:   time.Date(2024, time.March, 10, 16, 0, 0, 0, time.UTC),
	}
}

func TestTagBookedContact_PostsTaggedContact(t *testing.T) {
	var got tagContactRequest
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	svc := NewDefaultCRMService(srv.URL, "key-123", srv.Client())
	if err := svc.TagBookedContact(context.Background(), testBooking()); err != nil {
		t.Fatalf("TagBookedContact: %v", err)
	}

	if path != "/contacts/tags" {
		t.Errorf("path = %q, want /contacts/tags", path)
	}
	if auth != "Bearer key-123" {
		t.Errorf("authorization = %q", auth)
	}
	if got.Tag != bookedTag {
		t.Errorf("tag = %q, want %q", got.Tag, bookedTag)
	}
	if got.Email != "ada@valeco.example" {
		t.Errorf("email = %q", got.Email)
	}
	if got.BookedAt != "2024-03-10T16:00:00Z" {
		t.Errorf("bookedAt = %q", got.BookedAt)
	}
}

func TestTagBookedContact_ReportsServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	svc := NewDefaultCRMService(srv.URL, "key-123", srv.Client())
	if err := svc.TagBookedContact(context.Background(), testBooking()); err == nil {
		t.Fatal("expected an error for a 422 response")
	}
}

func TestTagBookedContact_DisabledWithoutBaseURL(t *testing.T) {
	svc := NewDefaultCRMService("", "key-123", nil)
	if err := svc.TagBookedContact(context.Background(), testBooking()); err != nil {
		t.Fatalf("disabled client must be a no-op, got %v", err)
	}
}

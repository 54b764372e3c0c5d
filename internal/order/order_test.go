package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"camper-renderer/internal/camper"
)

func TestCart(t *testing.T) {
	var c Cart
	a := c.Add(camper.Default())
	b := c.Add(camper.Config{Frame: camper.FrameMinimalist, Wheels: camper.WheelsStandard})

	if a.ID == b.ID || a.ID == "" {
		t.Fatalf("ids not unique: %q %q", a.ID, b.ID)
	}
	if c.Len() != 2 {
		t.Fatalf("got %d items, want 2", c.Len())
	}
	if got := c.Total(); got != 16649+4799 {
		t.Fatalf("total = %d, want %d", got, 16649+4799)
	}

	if !c.Remove(a.ID) {
		t.Fatal("Remove returned false for a present item")
	}
	if c.Remove(a.ID) {
		t.Fatal("Remove returned true twice")
	}
	if items := c.Items(); len(items) != 1 || items[0].ID != b.ID {
		t.Fatalf("items after remove = %+v", items)
	}

	c.Clear()
	if c.Len() != 0 || c.Total() != 0 {
		t.Fatal("Clear left items behind")
	}
}

func TestCustomerValidate(t *testing.T) {
	tests := []struct {
		name string
		cust Customer
		ok   bool
	}{
		{"complete", Customer{Name: "Sam", Email: "sam@example.com"}, true},
		{"no email", Customer{Name: "Sam"}, false},
		{"no name", Customer{Email: "sam@example.com"}, false},
		{"blank", Customer{Name: "  ", Email: " "}, false},
	}
	for _, tt := range tests {
		err := tt.cust.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrMissingContact) {
			t.Errorf("%s: got %v, want ErrMissingContact", tt.name, err)
		}
	}
}

func TestDetails(t *testing.T) {
	items := []Item{
		{Build: camper.Config{Frame: camper.FrameHeavy, Wheels: camper.WheelsOffroad}.WithOptions(camper.SideAccessDoors, camper.SidePanels), Price: 10999},
		{Build: camper.Config{Frame: camper.FrameMinimalist, Wheels: camper.WheelsStandard}, Price: 4799},
	}
	want := "CAMPER #1:\n" +
		"Frame Type: Heavy \n" +
		"Wheel Package: Offroad\n" +
		"Accessories: Side Panels, Side Access Doors\n" +
		"Price: $10,999\n" +
		"\n" +
		"CAMPER #2:\n" +
		"Frame Type: Minimalist \n" +
		"Wheel Package: Standard\n" +
		"Accessories: None\n" +
		"Price: $4,799\n"
	if got := Details(items); got != want {
		t.Fatalf("got\n%q\nwant\n%q", got, want)
	}
}

func testRelay(url string) *Relay {
	r := NewRelay(RelayConfig{
		URL:         url,
		CompanyName: "Badland Campers",
		CC:          "shop@example.com",
		OrderPrefix: "BC",
		Timeout:     5 * time.Second,
	})
	r.now = func() time.Time { return time.UnixMilli(1700000000000).UTC() }
	return r
}

func TestRelaySubmit(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", req.Method)
		}
		if ct := req.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cust := Customer{Name: "Sam", Email: "sam@example.com", Phone: "555", Address: "1 Trail Rd"}
	items := []Item{NewItem(camper.Default())}

	rc, err := testRelay(srv.URL).Submit(context.Background(), cust, items)
	if err != nil {
		t.Fatal(err)
	}
	if rc.OrderID != "BC-1700000000000" || rc.Total != 16649 || rc.Count != 1 {
		t.Fatalf("receipt = %+v", rc)
	}

	if got.CustomerName != "Sam" || got.ReplyTo != "sam@example.com" || got.DeliveryAddress != "1 Trail Rd" {
		t.Errorf("customer fields = %+v", got)
	}
	if got.OrderTotal != "$16,649" || got.OrderCount != 1 {
		t.Errorf("total/count = %q/%d", got.OrderTotal, got.OrderCount)
	}
	if got.Subject != "New Badland Campers Order - Sam - $16,649" {
		t.Errorf("subject = %q", got.Subject)
	}
	if got.CC != "shop@example.com" || got.CompanyName != "Badland Campers" || got.OrderID != "BC-1700000000000" {
		t.Errorf("relay fields = %+v", got)
	}
	if !strings.HasPrefix(got.OrderDetails, "CAMPER #1:\n") {
		t.Errorf("details = %q", got.OrderDetails)
	}
}

func TestRelayRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	cust := Customer{Name: "Sam", Email: "sam@example.com"}
	_, err := testRelay(srv.URL).Submit(context.Background(), cust, []Item{NewItem(camper.Default())})
	if err == nil || !strings.Contains(err.Error(), "422") {
		t.Fatalf("got %v, want status 422 error", err)
	}
}

func TestRelayPreconditions(t *testing.T) {
	cust := Customer{Name: "Sam", Email: "sam@example.com"}
	items := []Item{NewItem(camper.Default())}

	tests := []struct {
		name  string
		relay *Relay
		cust  Customer
		items []Item
		want  error
	}{
		{"missing contact", testRelay("http://unused"), Customer{Name: "Sam"}, items, ErrMissingContact},
		{"empty cart", testRelay("http://unused"), cust, nil, ErrEmptyCart},
		{"no relay", testRelay(""), cust, items, ErrRelayNotConfigured},
	}
	for _, tt := range tests {
		_, err := tt.relay.Submit(context.Background(), tt.cust, tt.items)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

package mailer

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderInvoice(t *testing.T) {
	body := RenderInvoice(InvoiceData{
		CustomerName:    "Asha Verma",
		BookingID:       42,
		ServiceName:     "Preventive Maintenance Service",
		CarMake:         "Hyundai",
		CarModel:        "Creta",
		AppointmentDate: "15 Sep 2026",
		Amount:          4900,
		Method:          "UPI",
		TransactionID:   "TXN-ABC123",
		RewardPoints:    100,
	})

	for _, want := range []string{"#42", "Preventive Maintenance Service", "Hyundai", "Creta", "4900.00", "TXN-ABC123", "100 reward points"} {
		if !strings.Contains(body, want) {
			t.Errorf("invoice missing %q", want)
		}
	}
}

func TestRenderInvoiceOmitsEmptySections(t *testing.T) {
	body := RenderInvoice(InvoiceData{
		CustomerName: "Asha Verma",
		BookingID:    42,
		ServiceName:  "Car Care Service",
		Method:       "CASH",
	})
	if strings.Contains(body, "Transaction ID") {
		t.Errorf("cash invoice should carry no transaction row")
	}
	if strings.Contains(body, "reward points") {
		t.Errorf("zero-point invoice should carry no reward line")
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	body := RenderCompletion(CompletionData{
		CustomerName: "<script>alert(1)</script>",
		BookingID:    1,
		ServiceName:  "Car Care Service",
	})
	if strings.Contains(body, "<script>") {
		t.Fatalf("customer input must be escaped")
	}
}

func TestRenderCompletionRewardLine(t *testing.T) {
	withPoints := RenderCompletion(CompletionData{CustomerName: "Asha", BookingID: 7, ServiceName: "Car Care Service", RewardPoints: 100})
	if !strings.Contains(withPoints, "100 reward points") {
		t.Fatalf("reward points missing from completion email")
	}
	noPoints := RenderCompletion(CompletionData{CustomerName: "Asha", BookingID: 7, ServiceName: "Car Care Service"})
	if strings.Contains(noPoints, "reward points") {
		t.Fatalf("zero-point completion should carry no reward line")
	}
}

func TestRenderCancellationRefundLine(t *testing.T) {
	withRefund := RenderCancellation(CancellationData{CustomerName: "Asha", BookingID: 7, ServiceName: "Body Repair Service", RefundAmount: 9000})
	if !strings.Contains(withRefund, "9000.00") {
		t.Fatalf("refund amount missing")
	}
	noRefund := RenderCancellation(CancellationData{CustomerName: "Asha", BookingID: 7, ServiceName: "Body Repair Service"})
	if strings.Contains(noRefund, "refund") {
		t.Fatalf("no-refund cancellation should carry no refund line")
	}
}

func TestClientSkipsWithoutAPIKey(t *testing.T) {
	c := &Client{baseURL: "http://127.0.0.1:0", httpClient: http.DefaultClient}
	if err := c.Send("asha@example.com", "subject", "<p>hi</p>"); err != nil {
		t.Fatalf("unconfigured client should skip, got %v", err)
	}
}

func TestClientSendsAuthorizedRequest(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer server.Close()

	c := &Client{
		baseURL:    server.URL,
		apiKey:     "re_test_key",
		from:       "Car Service <noreply@carservice.local>",
		httpClient: server.Client(),
	}
	if err := c.Send("asha@example.com", "subject", "<p>hi</p>"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if gotAuth != "Bearer re_test_key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotPath != "/emails" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	c := &Client{
		baseURL:    server.URL,
		apiKey:     "re_test_key",
		httpClient: server.Client(),
	}
	if err := c.Send("asha@example.com", "subject", "<p>hi</p>"); err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/walletscope/walletscope/pkg/errors"
	"github.com/walletscope/walletscope/pkg/model"
)

const testWallet = "4Nd1m5Wg7qW9vPq2kzjW3x8H6T2cVb1sJd9yQh5rKp8L"

type stubFetcher struct {
	records []model.TransferRecord
	err     error
}

func (f *stubFetcher) FetchTransfers(ctx context.Context, wallet string, limit int) ([]model.TransferRecord, error) {
	return f.records, f.err
}

func testServer(f Fetcher) *httptest.Server {
	return httptest.NewServer(New(Options{Fetcher: f}).Router())
}

func TestGraphEndpoint(t *testing.T) {
	srv := testServer(&stubFetcher{records: []model.TransferRecord{
		{Sender: testWallet, Recipient: "recipient1111111111111111111111111", Label: "1.0000 SOL 2025-01-01 00:00"},
	}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/graph?wallet=" + testWallet)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var doc struct {
		Wallet string `json:"wallet"`
		Nodes  []struct {
			ID string `json:"id"`
		} `json:"nodes"`
		Edges []struct {
			Label string `json:"label"`
		} `json:"edges"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if doc.Wallet != testWallet {
		t.Errorf("wallet = %q, want %q", doc.Wallet, testWallet)
	}
	if len(doc.Nodes) != 2 || len(doc.Edges) != 1 {
		t.Errorf("got %d nodes, %d edges; want 2 and 1", len(doc.Nodes), len(doc.Edges))
	}
}

func TestGraphEndpointInvalidAddress(t *testing.T) {
	srv := testServer(&stubFetcher{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/graph?wallet=nope")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Code != string(errors.ErrCodeInvalidAddress) {
		t.Errorf("code = %q, want %q", body.Code, errors.ErrCodeInvalidAddress)
	}
}

func TestGraphEndpointUpstreamFailure(t *testing.T) {
	srv := testServer(&stubFetcher{err: errors.New(errors.ErrCodeNetwork, "rpc unreachable")})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/graph?wallet=" + testWallet)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestScoreEndpoint(t *testing.T) {
	srv := testServer(&stubFetcher{records: []model.TransferRecord{
		{Sender: testWallet, Recipient: "recipient1111111111111111111111111", Label: "5.0000 SOL 2025-06-01 12:00"},
	}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/score?wallet=" + testWallet)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Wallet string `json:"wallet"`
		Score  struct {
			Total int `json:"total"`
		} `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Score.Total <= 0 || body.Score.Total > 1000 {
		t.Errorf("total = %d, want within (0, 1000]", body.Score.Total)
	}
}

func TestIndexServesHTML(t *testing.T) {
	srv := testServer(&stubFetcher{records: []model.TransferRecord{
		{Sender: testWallet, Recipient: "recipient1111111111111111111111111", Label: "1.0000 SOL 2025-01-01 00:00"},
	}})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?wallet=" + testWallet)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}

func TestHealthz(t *testing.T) {
	srv := testServer(&stubFetcher{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

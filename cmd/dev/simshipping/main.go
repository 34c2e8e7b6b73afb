package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tovrr/belmobile-backend/pkg/config"
)

// Sends a signed fake carrier webhook at a locally running API, e.g.:
//
//	go run ./cmd/dev/simshipping -token <track-token> -status delivered
func main() {
	var (
		webhookURL = flag.String("webhook-url", "", "webhook url (defaults to http://localhost<HTTP_ADDR>/v1/webhooks/shipping)")
		orderToken = flag.String("token", "", "order track token")
		status     = flag.String("status", "delivered", "parcel status (announced|at_drop_point|received_at_hub|shipped|delivered)")
		tracking   = flag.String("tracking", "BE0000000001", "carrier tracking number")
		secret     = flag.String("webhook-secret", "", "SHIPPING_WEBHOOK_SECRET used by server")
	)
	flag.Parse()

	if *orderToken == "" {
		fmt.Fprintln(os.Stderr, "missing -token")
		os.Exit(2)
	}

	cfg := config.Load()

	if *webhookURL == "" {
		*webhookURL = defaultWebhookURL(cfg.HTTPAddr)
	}

	// Prefer explicit flag, otherwise take from config/env (.env is loaded by config.Load()).
	if *secret == "" {
		*secret = cfg.Shipping.WebhookSecret
	}
	if *secret == "" {
		fmt.Fprintln(os.Stderr, "missing -webhook-secret (or SHIPPING_WEBHOOK_SECRET in env/.env)")
		os.Exit(2)
	}

	payload := map[string]any{
		"trackingNumber": *tracking,
		"orderToken":     *orderToken,
		"status":         *status,
		"occurredAt":     time.Now().UTC().Format(time.RFC3339),
	}
	body, _ := json.Marshal(payload)

	mac := hmac.New(sha256.New, []byte(*secret))
	_, _ = mac.Write(body)
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequest(http.MethodPost, *webhookURL, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shipping-Signature", sig)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "send: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s\n%s\n", resp.Status, string(respBody))
}

func defaultWebhookURL(httpAddr string) string {
	addr := httpAddr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/v1/webhooks/shipping"
}

package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL = "https://connect.squareupsandbox.com"
	squareVersion  = "2023-08-16"
	currency       = "USD"
)

// Charger est le contrat local du processeur de paiement. Le montant est en
// cents, une seule tentative par appel, aucun retry.
type Charger interface {
	Charge(ctx context.Context, amountCents int64, sourceID, idempotencyKey string) (map[string]interface{}, error)
}

// GatewayError couvre à la fois un refus du processeur (carte déclinée) et
// une panne de transport : l'appelant ne peut pas distinguer les deux et ne
// doit donc jamais réessayer de lui-même.
type GatewayError struct {
	Detail string
}

func (e *GatewayError) Error() string {
	return e.Detail
}

// Client appelle l'API Payments de Square.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	locationID  string
}

func NewClient() *Client {
	baseURL := os.Getenv("SQUARE_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     baseURL,
		accessToken: os.Getenv("SQUARE_ACCESS_TOKEN"),
		locationID:  os.Getenv("SQUARE_LOCATION_ID"),
	}
}

type chargeRequest struct {
	SourceID       string      `json:"source_id"`
	IdempotencyKey string      `json:"idempotency_key"`
	AmountMoney    amountMoney `json:"amount_money"`
	LocationID     string      `json:"location_id"`
}

type amountMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type chargeResponse struct {
	Payment map[string]interface{} `json:"payment"`
	Errors  []squareError          `json:"errors"`
}

type squareError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

// Charge encaisse la carte. Retourne l'objet payment renvoyé par Square,
// que l'API relaie tel quel au front.
func (c *Client) Charge(ctx context.Context, amountCents int64, sourceID, idempotencyKey string) (map[string]interface{}, error) {
	body, err := json.Marshal(chargeRequest{
		SourceID:       sourceID,
		IdempotencyKey: idempotencyKey,
		AmountMoney:    amountMoney{Amount: amountCents, Currency: currency},
		LocationID:     c.locationID,
	})
	if err != nil {
		return nil, &GatewayError{Detail: "Payment failed"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/payments", bytes.NewReader(body))
	if err != nil {
		return nil, &GatewayError{Detail: "Payment failed"}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Square-Version", squareVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Println("❌ Erreur transport Square:", err)
		return nil, &GatewayError{Detail: "Payment failed"}
	}
	defer resp.Body.Close()

	var decoded chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Println("❌ Réponse Square illisible:", err)
		return nil, &GatewayError{Detail: "Payment failed"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := "Payment failed"
		if len(decoded.Errors) > 0 && decoded.Errors[0].Detail != "" {
			detail = decoded.Errors[0].Detail
		}
		log.Printf("❌ Square a refusé le paiement (%d): %s", resp.StatusCode, detail)
		return nil, &GatewayError{Detail: detail}
	}

	return decoded.Payment, nil
}

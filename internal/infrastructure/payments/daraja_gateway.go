package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"duka_payments/internal/config"
	"duka_payments/internal/usecase/interfaces"
)

const (
	oauthPath   = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath = "/mpesa/stkpush/v1/processrequest"

	transactionType = "CustomerPayBillOnline"
	timestampLayout = "20060102150405"

	// Refresh the cached token slightly before Daraja expires it.
	tokenExpirySlack = 30 * time.Second
)

var ErrMissingDarajaCredentials = errors.New("missing MPESA_CONSUMER_KEY/MPESA_CONSUMER_SECRET")

// DarajaGateway talks to the Safaricom Daraja API: OAuth client-credentials
// exchange plus the Lipa na M-Pesa Online (STK push) request.
//
// The access token is cached until shortly before expiry so bursts of
// initiations do not hammer the auth endpoint.

type DarajaGateway struct {
	cfg        config.MpesaConfig
	httpClient *http.Client
	location   *time.Location

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

var _ interfaces.IMpesaGateway = (*DarajaGateway)(nil)

func NewDarajaGateway(cfg config.MpesaConfig) (*DarajaGateway, error) {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		log.Printf("[mpesa][gateway] missing consumer credentials")
		return nil, ErrMissingDarajaCredentials
	}

	// Timestamp and Password must be derived in the same timezone Daraja
	// validates against (GMT+3 for production shortcodes).
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[mpesa][gateway] unknown timezone %q, falling back to UTC", cfg.Timezone)
		loc = time.UTC
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	log.Printf("[mpesa][gateway] initialized environment=%s shortcode=%s", cfg.Environment, cfg.ShortCode)
	return &DarajaGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		location:   loc,
	}, nil
}

type oauthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

func (g *DarajaGateway) Token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && time.Now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+oauthPath, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.cfg.ConsumerKey, g.cfg.ConsumerSecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[mpesa][gateway] token request failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[mpesa][gateway] token request rejected status=%d", resp.StatusCode)
		return "", fmt.Errorf("daraja oauth returned status %d", resp.StatusCode)
	}

	var parsed oauthResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.AccessToken == "" {
		return "", errors.New("daraja oauth response missing access_token")
	}

	ttl := 3600 * time.Second
	if secs, err := strconv.Atoi(parsed.ExpiresIn); err == nil && secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}
	g.token = parsed.AccessToken
	g.tokenExpiry = time.Now().Add(ttl - tokenExpirySlack)

	log.Printf("[mpesa][gateway] token acquired ttl=%s", ttl)
	return g.token, nil
}

type stkPushAPIRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushAPIResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`

	// Populated instead of the fields above when Daraja rejects the request.
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

func (g *DarajaGateway) StkPush(ctx context.Context, token string, req interfaces.StkPushRequest) (interfaces.StkPushResult, error) {
	timestamp := time.Now().In(g.location).Format(timestampLayout)
	password := base64.StdEncoding.EncodeToString([]byte(g.cfg.ShortCode + g.cfg.Passkey + timestamp))

	payload, err := json.Marshal(stkPushAPIRequest{
		BusinessShortCode: g.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   transactionType,
		Amount:            req.Amount,
		PartyA:            req.Phone,
		PartyB:            g.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       g.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.Description,
	})
	if err != nil {
		return interfaces.StkPushResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+stkPushPath, bytes.NewReader(payload))
	if err != nil {
		return interfaces.StkPushResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	log.Printf("[mpesa][gateway] stk push start phone=%s amount=%d account_reference=%s", req.Phone, req.Amount, req.AccountReference)
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[mpesa][gateway] stk push transport failure err=%v", err)
		return interfaces.StkPushResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.StkPushResult{}, err
	}

	var parsed stkPushAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("[mpesa][gateway] stk push unparseable response status=%d", resp.StatusCode)
		return interfaces.StkPushResult{}, fmt.Errorf("daraja stk push returned status %d with unparseable body", resp.StatusCode)
	}

	if parsed.ErrorCode != "" || parsed.ErrorMessage != "" {
		log.Printf("[mpesa][gateway] stk push rejected error_code=%s error_message=%q", parsed.ErrorCode, parsed.ErrorMessage)
		return interfaces.StkPushResult{}, &interfaces.StkPushRejection{Code: parsed.ErrorCode, Message: parsed.ErrorMessage}
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[mpesa][gateway] stk push failed status=%d", resp.StatusCode)
		return interfaces.StkPushResult{}, fmt.Errorf("daraja stk push returned status %d", resp.StatusCode)
	}
	if parsed.ResponseCode != "" && parsed.ResponseCode != "0" {
		log.Printf("[mpesa][gateway] stk push declined response_code=%s desc=%q", parsed.ResponseCode, parsed.ResponseDescription)
		return interfaces.StkPushResult{}, &interfaces.StkPushRejection{Code: parsed.ResponseCode, Message: parsed.ResponseDescription}
	}

	log.Printf("[mpesa][gateway] stk push accepted checkout_request_id=%s merchant_request_id=%s", parsed.CheckoutRequestID, parsed.MerchantRequestID)
	return interfaces.StkPushResult{
		MerchantRequestID:   parsed.MerchantRequestID,
		CheckoutRequestID:   parsed.CheckoutRequestID,
		ResponseCode:        parsed.ResponseCode,
		ResponseDescription: parsed.ResponseDescription,
		CustomerMessage:     parsed.CustomerMessage,
	}, nil
}

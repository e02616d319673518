// internal/adapters/catalog/client.go
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vegatek/stocktake/internal/core/domain"
	"github.com/vegatek/stocktake/internal/core/ports"
)

// Wire DTOs. The remote API's field naming (including the accented
// "stokAdı" key) is a fixed contract; these types are the only place the
// raw keys appear.

type depotDTO struct {
	Ind      int    `json:"Ind"`
	DepoAdi  string `json:"DepoAdi"`
	DepoKodu string `json:"DepoKodu"`
}

type depotEnvelope struct {
	Success bool       `json:"success"`
	Data    []depotDTO `json:"data"`
}

type productDTO struct {
	Barcode     string  `json:"Barcode"`
	Ind         int     `json:"Ind"`
	MalInCinsi  string  `json:"MalInCinsi"`
	StokKodu    string  `json:"StokKodu"`
	AnaBirim    string  `json:"AnaBirim"`
	Depo        string  `json:"Depo"`
	Kod1        string  `json:"Kod1"`
	Kod2        string  `json:"Kod2"`
	Kod3        string  `json:"Kod3"`
	DalisFiyati float64 `json:"DalisFiyati"`
}

type productEnvelope struct {
	Success bool       `json:"success"`
	Data    productDTO `json:"data"`
}

type countItemDTO struct {
	StokKodu  string  `json:"stokKodu"`
	StokAdi   string  `json:"stokAdı"`
	Miktar    float64 `json:"miktar"`
	DepoAdi   string  `json:"depoAdi"`
	Aciklama  string  `json:"aciklama"`
	SayimTipi string  `json:"sayimTipi"`
	Yil       int     `json:"yil"`
	Ay        int     `json:"ay"`
}

type submitEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// submissionRefHeader carries a client-generated id so a batch can be
// correlated in server logs.
const submissionRefHeader = "X-Submission-Ref"

// Client talks to the remote catalog and inventory endpoints. It performs no
// retries; every failure is surfaced immediately with displayable context.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Statically assert that *Client implements the CatalogGateway port.
var _ ports.CatalogGateway = (*Client)(nil)

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(slog.String("component", "catalog")),
	}
}

// Depots fetches the full depot list from GET {base}/Depo.
func (c *Client) Depots(ctx context.Context) ([]domain.Depot, error) {
	var envelope depotEnvelope
	if err := c.get(ctx, c.baseURL+"/Depo", &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("%w: depot list request not successful", domain.ErrServerRejected)
	}

	depots := make([]domain.Depot, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		depots = append(depots, domain.Depot{
			ID:   d.Ind,
			Name: d.DepoAdi,
			Code: d.DepoKodu,
		})
	}

	c.logger.DebugContext(ctx, "fetched depot list",
		slog.Int("count", len(depots)))
	return depots, nil
}

// ProductByBarcode resolves a product from GET {base}?barcode={code}.
func (c *Client) ProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	endpoint := fmt.Sprintf("%s?barcode=%s", c.baseURL, url.QueryEscape(barcode))

	var envelope productEnvelope
	if err := c.get(ctx, endpoint, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, domain.ErrProductNotFound
	}

	d := envelope.Data
	product := &domain.Product{
		Barcode:       d.Barcode,
		ID:            d.Ind,
		Name:          d.MalInCinsi,
		StockCode:     d.StokKodu,
		Unit:          d.AnaBirim,
		Depot:         d.Depo,
		Code1:         d.Kod1,
		Code2:         d.Kod2,
		Code3:         d.Kod3,
		PurchasePrice: decimal.NewFromFloat(d.DalisFiyati),
	}

	c.logger.DebugContext(ctx, "resolved product",
		slog.String("barcode", barcode),
		slog.String("stock_code", product.StockCode))
	return product, nil
}

// SubmitCounts posts the whole list to POST {base}/SendToVega.
func (c *Client) SubmitCounts(ctx context.Context, items []domain.CountItem) (*domain.SubmissionAck, error) {
	payload := make([]countItemDTO, 0, len(items))
	for _, item := range items {
		payload = append(payload, countItemDTO{
			StokKodu:  item.StockCode,
			StokAdi:   item.StockName,
			Miktar:    item.Quantity.InexactFloat64(),
			DepoAdi:   item.DepotName,
			Aciklama:  item.Note,
			SayimTipi: item.CountType,
			Yil:       item.Year,
			Ay:        item.Month,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode count list: %v", domain.ErrCatalogUnavailable, err)
	}

	ref := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/SendToVega", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(submissionRefHeader, ref)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var envelope submitEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrCatalogUnavailable, err)
	}

	if !envelope.Success {
		msg := envelope.Message
		if msg == "" {
			msg = "submission rejected"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrServerRejected, msg)
	}

	c.logger.InfoContext(ctx, "count batch accepted",
		slog.String("submission_ref", ref),
		slog.Int("entries", len(items)))
	return &domain.SubmissionAck{Accepted: true, Message: envelope.Message}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: unexpected status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", domain.ErrCatalogUnavailable, err)
	}
	return nil
}

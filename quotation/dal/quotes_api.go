package dal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/ferremax/portal/quotation/domain"
)

const documentsAPITimeout = 30 * time.Second

// QuotesAPI persists quotation snapshots through the documents HTTP API
// instead of writing to Firestore directly. Deployments behind the corporate
// gateway use this path; everything else uses QuotesFirestore.
type QuotesAPI struct {
	client *resty.Client
}

type createQuoteResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

type apiErrorResponse struct {
	Error string `json:"error"`
}

func NewQuotesAPI(baseURL, apiKey string) *QuotesAPI {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(documentsAPITimeout).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetRetryCount(2)

	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	return &QuotesAPI{
		client: client,
	}
}

// CreateQuote submits the quotation snapshot to the documents API. The server
// assigns the document id and the sequential quotation number.
func (d *QuotesAPI) CreateQuote(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error) {
	var (
		created createQuoteResponse
		apiErr  apiErrorResponse
	)

	res, err := d.client.R().
		SetContext(ctx).
		SetBody(quotation).
		SetResult(&created).
		SetError(&apiErr).
		Post("/v1/documents/quotations")
	if err != nil {
		return nil, err
	}

	if res.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("documents api responded %d: %s", res.StatusCode(), apiErr.Error)
	}

	quotation.ID = created.ID
	quotation.Number = created.Number

	return quotation, nil
}

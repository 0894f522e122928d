package payments

import (
	"context"
	"errors"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// moeda fixa do checkout
const CurrencyID = "MXN"

const ProviderName = "mercadopago"

var ErrNotConfigured = errors.New("mercado pago access token not configured")

type Gateway struct {
	pref    preference.Client
	payment payment.Client

	baseURL string
}

// NewGateway cria o cliente do Mercado Pago. Sem token configurado a API
// sobe normalmente; só as rotas de pagamento respondem 500.
func NewGateway(accessToken, publicBaseURL string) (*Gateway, error) {
	if accessToken == "" {
		return nil, ErrNotConfigured
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Gateway{
		pref:    preference.NewClient(cfg),
		payment: payment.NewClient(cfg),
		baseURL: publicBaseURL,
	}, nil
}

// ======================================================
// Preferência de checkout
// ======================================================

type PreferenceInput struct {
	AppointmentID string
	Title         string
	Description   string
	Price         float64
	ClientEmail   string
	ClientName    string
}

type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

func (g *Gateway) CreatePreference(
	ctx context.Context,
	in PreferenceInput,
) (*Preference, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          in.AppointmentID,
				Title:       in.Title,
				Description: in.Description,
				Quantity:    1,
				CurrencyID:  CurrencyID,
				UnitPrice:   in.Price,
			},
		},
		Payer: &preference.PayerRequest{
			Name:  in.ClientName,
			Email: in.ClientEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: fmt.Sprintf("%s/client?payment=success", g.baseURL),
			Failure: fmt.Sprintf("%s/client?payment=failure", g.baseURL),
			Pending: fmt.Sprintf("%s/client?payment=pending", g.baseURL),
		},
		AutoReturn:        "approved",
		ExternalReference: in.AppointmentID,
		NotificationURL:   fmt.Sprintf("%s/api/payments/webhook", g.baseURL),
	}

	resp, err := g.pref.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Preference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

// ======================================================
// Detalhe de pagamento (webhook)
// ======================================================

type PaymentDetail struct {
	ID                int
	Status            string
	ExternalReference string
	TransactionAmount float64
}

func (g *Gateway) GetPayment(ctx context.Context, id int) (*PaymentDetail, error) {
	resp, err := g.payment.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PaymentDetail{
		ID:                resp.ID,
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		TransactionAmount: resp.TransactionAmount,
	}, nil
}

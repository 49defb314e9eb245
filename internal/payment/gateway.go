package payment

import (
	"context"
	"fmt"

	"shopsphere-be/internal/logger"

	xendit "github.com/xendit/xendit-go/v6"
	"github.com/xendit/xendit-go/v6/invoice"
	"go.uber.org/zap"
)

// Gateway creates payment links for placed orders.
type Gateway interface {
	CreateInvoice(ctx context.Context, externalID, payerEmail string, amount float64) (string, error)
}

type xenditGateway struct {
	client *xendit.APIClient
}

func NewXenditGateway(client *xendit.APIClient) Gateway {
	return &xenditGateway{client: client}
}

func (g *xenditGateway) CreateInvoice(ctx context.Context, externalID, payerEmail string, amount float64) (string, error) {
	req := *invoice.NewCreateInvoiceRequest(externalID, amount)
	req.SetPayerEmail(payerEmail)
	req.SetDescription(fmt.Sprintf("Payment for order %s", externalID))

	inv, _, err := g.client.InvoiceApi.CreateInvoice(ctx).
		CreateInvoiceRequest(req).
		Execute()
	if err != nil {
		logger.L().Error("xendit invoice creation failed",
			zap.String("external_id", externalID),
			zap.Error(err))
		return "", fmt.Errorf("failed to create invoice: %w", err)
	}

	logger.L().Info("payment link created",
		zap.String("external_id", externalID),
		zap.Float64("amount", amount))

	return inv.GetInvoiceUrl(), nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bizedge/bizedge_backend/internal/apperrors"
	"github.com/bizedge/bizedge_backend/internal/core/domain"
	portsrepo "github.com/bizedge/bizedge_backend/internal/core/ports/repositories"
	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
	}
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice posts an invoice. Stock adjustments run first, one
// atomic increment per line item; items with malformed product ids are
// skipped without failing the request. The sequence is not
// transactional: deltas already applied stay applied if the invoice
// insert fails afterwards.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (string, error) {
	inv := toDomainInvoice(req)

	for _, item := range inv.Items {
		delta := inv.StockDelta(item)
		if err := s.productRepo.AdjustStock(ctx, item.ProductID, delta); err != nil {
			if errors.Is(err, apperrors.ErrInvalidID) {
				s.LogDebug(ctx, "Skipping stock adjustment for malformed product id",
					slog.String("product_id", item.ProductID))
				continue
			}
			s.LogError(ctx, err, "Failed to adjust stock",
				slog.String("product_id", item.ProductID),
				slog.Float64("delta", delta))
			return "", fmt.Errorf("failed to adjust stock: %w", err)
		}
	}

	id, err := s.invoiceRepo.SaveInvoice(ctx, inv)
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_number", inv.Number))
		return "", fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", id),
		slog.String("invoice_type", string(inv.Type)),
		slog.Int("item_count", len(inv.Items)))
	return id, nil
}

// ListInvoices returns all stored invoices.
func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	return invoices, nil
}

// toDomainInvoice maps the request onto a domain invoice, applying the
// type and mode defaults.
func toDomainInvoice(req dto.CreateInvoiceRequest) domain.Invoice {
	items := make([]domain.InvoiceItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.InvoiceItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     *it.Price,
			GSTRate:   it.GSTRate,
			Total:     *it.Total,
		}
	}

	inv := domain.Invoice{
		Type:      domain.InvoiceType(req.Type),
		Number:    req.Number,
		PartyID:   req.PartyID,
		PartyName: req.PartyName,
		Items:     items,
		Subtotal:  *req.Subtotal,
		GSTAmount: req.GSTAmount,
		Discount:  req.Discount,
		RoundOff:  req.RoundOff,
		Total:     *req.Total,
		Paid:      req.Paid,
		Mode:      domain.PaymentMode(req.Mode),
		Notes:     req.Notes,
		Date:      req.Date,
	}
	if inv.Type == "" {
		inv.Type = domain.InvoiceSale
	}
	if inv.Mode == "" {
		inv.Mode = domain.ModeUPI
	}
	return inv
}

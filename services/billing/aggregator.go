package billing

import (
	"context"
	"fmt"
	"time"

	"scooply/models"
	"scooply/services/payment"
	"scooply/services/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CustomerSource is the slice of customer storage the aggregator reads.
type CustomerSource interface {
	GetActiveCustomers(ctx context.Context) ([]models.Customer, error)
}

// Catalog is the read-only price book lookup.
type Catalog interface {
	GetServiceType(ctx context.Context, serviceTypeID string) (*models.ServiceType, error)
}

// VisitSource is the slice of visit storage the aggregator reads.
type VisitSource interface {
	GetForCustomerInRange(ctx context.Context, customerID, startDate, endDate string) ([]models.ScheduledVisit, error)
}

// InvoiceStore is the slice of invoice storage the aggregator writes.
type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	MarkPaid(ctx context.Context, invoiceID, paymentRef string) error
}

// Aggregator turns a month of completed billable visits into one invoice per
// customer, charging autopay customers as it goes. Each customer is processed
// independently; nothing aborts the whole run.
type Aggregator struct {
	Customers CustomerSource
	Catalog   Catalog
	Visits    VisitSource
	Invoices  InvoiceStore
	Payments  payment.Processor
	Logger    *zap.Logger

	// ChargeTimeout bounds each charge request so a hung payment call
	// stalls only its own customer. Zero means 30s.
	ChargeTimeout time.Duration
}

// RunMonthlyBilling bills every active customer for the given calendar month.
// Invoice numbers are drawn from a counter threaded through the loop, unique
// across the whole run. Month is 1..12.
func (a *Aggregator) RunMonthlyBilling(ctx context.Context, month, year int) models.BillingRunResult {
	result := models.BillingRunResult{Month: month, Year: year, Errors: []string{}}
	if month < 1 || month > 12 {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid billing month %d", month))
		return result
	}

	customers, err := a.Customers.GetActiveCustomers(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("fetch active customers: %v", err))
		return result
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	startDate := firstDay.Format(models.DateLayout)
	endDate := lastDay.Format(models.DateLayout)
	dueDate := time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
	numberPrefix := fmt.Sprintf("INV-%04d%02d", year, month)

	seq := 0
	for i := range customers {
		cust := &customers[i]
		a.billCustomer(ctx, cust, startDate, endDate, dueDate, numberPrefix, &seq, &result)
	}

	a.Logger.Info("monthly billing run complete",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("customers", len(customers)),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
		zap.Int("charged", result.Charged),
		zap.Int("errors", len(result.Errors)))
	return result
}

func (a *Aggregator) billCustomer(ctx context.Context, cust *models.Customer, startDate, endDate, dueDate, numberPrefix string, seq *int, result *models.BillingRunResult) {
	// Configuration problems skip the customer without counting as a failure.
	if cust.ServiceTypeID == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: no service type assigned", cust.ID))
		return
	}
	serviceType, err := a.Catalog.GetServiceType(ctx, cust.ServiceTypeID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: %v", cust.ID, err))
		return
	}
	if !serviceType.BasePrice.IsPositive() || serviceType.PricePerExtraUnit.IsNegative() {
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: service type %s has invalid pricing", cust.ID, serviceType.ID))
		return
	}

	visits, err := a.Visits.GetForCustomerInRange(ctx, cust.ID, startDate, endDate)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: fetch visits: %v", cust.ID, err))
		return
	}
	billableCount := 0
	for _, v := range visits {
		if v.Status == models.VisitStatusCompleted && v.Billable {
			billableCount++
		}
	}
	if billableCount == 0 {
		// No zero-amount invoices.
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: no completed billable visits in period", cust.ID))
		return
	}

	perVisit, err := pricing.PriceForVisit(serviceType, cust.DogCount)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: %v", cust.ID, err))
		return
	}
	amount := models.NewMoney(perVisit.Decimal.Mul(decimal.NewFromInt(int64(billableCount))).Round(2))

	*seq++
	invoice := &models.Invoice{
		ID:            uuid.New().String(),
		CustomerID:    cust.ID,
		InvoiceNumber: fmt.Sprintf("%s-%04d", numberPrefix, *seq),
		Amount:        amount,
		Status:        models.InvoiceStatusUnpaid,
		DueDate:       dueDate,
		Description:   fmt.Sprintf("%s: %d visits x %s", serviceType.Name, billableCount, perVisit),
	}
	if err := a.Invoices.Create(ctx, invoice); err != nil {
		// No invoice means nothing is owed yet, so no charge is attempted.
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: create invoice: %v", cust.ID, err))
		return
	}
	result.Success++

	if !cust.Autopay || cust.PaymentMethodID == "" || cust.StripeCustomerID == "" {
		return
	}
	a.chargeInvoice(ctx, cust, invoice, result)
}

// chargeInvoice requests the autopay charge for a freshly created invoice.
// A failed charge leaves the invoice unpaid and is recorded; the invoice is
// the source of truth for what is owed.
func (a *Aggregator) chargeInvoice(ctx context.Context, cust *models.Customer, invoice *models.Invoice, result *models.BillingRunResult) {
	timeout := a.ChargeTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	chargeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ref, err := a.Payments.ChargeOffSession(chargeCtx, cust.StripeCustomerID, cust.PaymentMethodID, invoice.Amount.MinorUnits())
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: charge for invoice %s: %v", cust.ID, invoice.InvoiceNumber, err))
		return
	}
	result.Charged++
	if err := a.Invoices.MarkPaid(ctx, invoice.ID, ref); err != nil {
		// The money moved; only the bookkeeping write failed.
		result.Errors = append(result.Errors, fmt.Sprintf("customer %s: mark invoice %s paid: %v", cust.ID, invoice.InvoiceNumber, err))
	}
}

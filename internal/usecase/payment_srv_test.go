package usecase

import (
	"context"
	"errors"
	"testing"

	"eldercare-booking/internal/data/entity"
	"eldercare-booking/internal/data/repository"
	"eldercare-booking/internal/dto/request"
	"eldercare-booking/pkg/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProcessor struct {
	amounts    []int64
	currencies []string
	err        error
}

func (f *fakeProcessor) CreateIntent(_ context.Context, amount int64, currency string) (*payment.Intent, error) {
	f.amounts = append(f.amounts, amount)
	f.currencies = append(f.currencies, currency)
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Intent{
		ID:           "pi_test_123",
		ClientSecret: "pi_test_123_secret_xyz",
	}, nil
}

type fakeIntentRepo struct {
	records []*entity.PaymentIntent
	err     error
}

func (f *fakeIntentRepo) Create(_ context.Context, intent *entity.PaymentIntent) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, intent)
	return nil
}

func (f *fakeIntentRepo) FindByIntentID(_ context.Context, intentID string) (*entity.PaymentIntent, error) {
	for _, record := range f.records {
		if record.IntentID == intentID {
			return record, nil
		}
	}
	return nil, nil
}

func newPaymentServiceForTest(t *testing.T) (PaymentService, *fakeProcessor, *fakeIntentRepo) {
	t.Helper()
	processor := &fakeProcessor{}
	intents := &fakeIntentRepo{}
	svc := NewPaymentService(&repository.Repository{PaymentIntent: intents}, processor, "inr", zap.NewNop())
	return svc, processor, intents
}

func TestCreateIntent_ConvertsToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		minor  int64
	}{
		{"whole amount", 10.00, 1000},
		{"half unit", 499.5, 49950},
		{"paise precision", 123.45, 12345},
		{"minimum", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, processor, _ := newPaymentServiceForTest(t)

			resp, err := svc.CreateIntent(context.Background(), uuid.New(), &request.PaymentIntentRequest{Amount: tt.amount})
			require.NoError(t, err)
			require.Equal(t, "pi_test_123_secret_xyz", resp.ClientSecret)
			require.Equal(t, []int64{tt.minor}, processor.amounts)
			require.Equal(t, []string{"inr"}, processor.currencies)
		})
	}
}

func TestCreateIntent_RejectsInvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"below minimum", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, processor, intents := newPaymentServiceForTest(t)

			_, err := svc.CreateIntent(context.Background(), uuid.New(), &request.PaymentIntentRequest{Amount: tt.amount})
			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid amount")

			// Processor is never contacted and nothing is recorded
			require.Empty(t, processor.amounts)
			require.Empty(t, intents.records)
		})
	}
}

func TestCreateIntent_ProcessorErrorStaysGeneric(t *testing.T) {
	svc, processor, intents := newPaymentServiceForTest(t)
	processor.err = errors.New("card_declined: sk_live leaked detail")

	_, err := svc.CreateIntent(context.Background(), uuid.New(), &request.PaymentIntentRequest{Amount: 25})
	require.Error(t, err)
	require.Equal(t, "payment failed", err.Error())
	require.NotContains(t, err.Error(), "card_declined")
	require.Empty(t, intents.records)
}

func TestCreateIntent_RecordsIntentForUser(t *testing.T) {
	svc, _, intents := newPaymentServiceForTest(t)
	userID := uuid.New()

	_, err := svc.CreateIntent(context.Background(), userID, &request.PaymentIntentRequest{Amount: 120.75})
	require.NoError(t, err)

	require.Len(t, intents.records, 1)
	record := intents.records[0]
	require.Equal(t, userID, record.UserID)
	require.Equal(t, "pi_test_123", record.IntentID)
	require.Equal(t, int64(12075), record.Amount)
	require.Equal(t, "inr", record.Currency)
	require.Equal(t, entity.PaymentIntentCreated, record.Status)
}

func TestCreateIntent_RecordFailureDoesNotVoidIntent(t *testing.T) {
	processor := &fakeProcessor{}
	intents := &fakeIntentRepo{err: errors.New("db down")}
	svc := NewPaymentService(&repository.Repository{PaymentIntent: intents}, processor, "inr", zap.NewNop())

	// The client already holds a usable secret, so the response succeeds
	resp, err := svc.CreateIntent(context.Background(), uuid.New(), &request.PaymentIntentRequest{Amount: 10})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ClientSecret)
}

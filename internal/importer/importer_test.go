package importer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GlebRadaev/pointpay/internal/domain"
	"github.com/GlebRadaev/pointpay/internal/service/paymentservice"
	"github.com/GlebRadaev/pointpay/internal/tier"
	"github.com/GlebRadaev/pointpay/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func NewMock(t *testing.T) (*Service, *MockPayer, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	payer := NewMockPayer(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(payer, client, 4)
	t.Cleanup(service.Close)
	return service, payer, client
}

func pay(ctx context.Context, amount, customerID int64) (*domain.Receipt, error) {
	rate := tier.Default().Rate(amount)
	return &domain.Receipt{Amount: amount, PointRate: rate, Point: tier.Points(amount, rate)}, nil
}

func TestImportReader(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		prepareMock func(payer *MockPayer)
		expected    Summary
	}{
		{
			name:  "All lines paid",
			input: "customer_id,amount\n1,10000\n2,50000\n1,19\n",
			prepareMock: func(payer *MockPayer) {
				payer.EXPECT().Pay(gomock.Any(), int64(10_000), int64(1)).DoAndReturn(pay)
				payer.EXPECT().Pay(gomock.Any(), int64(50_000), int64(2)).DoAndReturn(pay)
				payer.EXPECT().Pay(gomock.Any(), int64(19), int64(1)).DoAndReturn(pay)
			},
			expected: Summary{Processed: 3, Points: 1_000 + 25_000 + 1},
		},
		{
			name:  "Without header and with comments",
			input: "# exported 2024-05-01\n7, 100\n",
			prepareMock: func(payer *MockPayer) {
				payer.EXPECT().Pay(gomock.Any(), int64(100), int64(7)).DoAndReturn(pay)
			},
			expected: Summary{Processed: 1, Points: 10},
		},
		{
			name:  "Rejected payments are counted",
			input: "1,-10\n404,10000\n2,10000\n",
			prepareMock: func(payer *MockPayer) {
				payer.EXPECT().Pay(gomock.Any(), int64(-10), int64(1)).
					Return(nil, fmt.Errorf("%w -10 for customer 1", paymentservice.ErrInvalidAmount))
				payer.EXPECT().Pay(gomock.Any(), int64(10_000), int64(404)).
					Return(nil, fmt.Errorf("%w: 404", paymentservice.ErrCustomerNotFound))
				payer.EXPECT().Pay(gomock.Any(), int64(10_000), int64(2)).DoAndReturn(pay)
			},
			expected: Summary{Processed: 1, Failed: 2, Points: 1_000},
		},
		{
			name:  "Malformed lines are skipped",
			input: "abc,100\n1,ten\n1,2,3\n3,10000\n",
			prepareMock: func(payer *MockPayer) {
				payer.EXPECT().Pay(gomock.Any(), int64(10_000), int64(3)).DoAndReturn(pay)
			},
			expected: Summary{Processed: 1, Failed: 3, Points: 1_000},
		},
		{
			name:        "Empty input",
			input:       "",
			prepareMock: func(payer *MockPayer) {},
			expected:    Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, payer, _ := NewMock(t)
			tt.prepareMock(payer)

			summary, err := service.ImportReader(context.Background(), strings.NewReader(tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, summary)
		})
	}
}

func TestImportReader_ManyLinesSameCustomer(t *testing.T) {
	service, payer, _ := NewMock(t)
	const lines = 200

	var b strings.Builder
	for i := 0; i < lines; i++ {
		b.WriteString("42,10000\n")
	}
	payer.EXPECT().Pay(gomock.Any(), int64(10_000), int64(42)).DoAndReturn(pay).Times(lines)

	summary, err := service.ImportReader(context.Background(), strings.NewReader(b.String()))

	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: lines, Points: lines * 1_000}, summary)
}

func TestImportReader_CancelledContext(t *testing.T) {
	service, _, _ := NewMock(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := service.ImportReader(ctx, strings.NewReader("1,10000\n"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), summary.Processed)
	assert.Equal(t, int64(1), summary.Failed)
}

func TestImport_File(t *testing.T) {
	service, payer, _ := NewMock(t)
	path := filepath.Join(t.TempDir(), "payments.csv")
	require.NoError(t, os.WriteFile(path, []byte("customer_id,amount\n5,50000\n"), 0o600))

	payer.EXPECT().Pay(gomock.Any(), int64(50_000), int64(5)).DoAndReturn(pay)

	summary, err := service.Import(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1, Points: 25_000}, summary)
}

func TestImport_MissingFile(t *testing.T) {
	service, _, _ := NewMock(t)

	_, err := service.Import(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImport_URL(t *testing.T) {
	const url = "http://exports.local/payments.csv"

	tests := []struct {
		name        string
		prepareMock func(payer *MockPayer, client *clients.MockHTTPClientI)
		expected    Summary
		expectedErr error
	}{
		{
			name: "Fetched",
			prepareMock: func(payer *MockPayer, client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), url, nil).Return(http.StatusOK, []byte("9,10000\n"), http.Header{}, nil)
				payer.EXPECT().Pay(gomock.Any(), int64(10_000), int64(9)).DoAndReturn(pay)
			},
			expected: Summary{Processed: 1, Points: 1_000},
		},
		{
			name: "Unexpected status",
			prepareMock: func(payer *MockPayer, client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), url, nil).Return(http.StatusNotFound, nil, http.Header{}, nil)
			},
			expectedErr: ErrUnexpectedStatus,
		},
		{
			name: "Transport failure",
			prepareMock: func(payer *MockPayer, client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), url, nil).Return(0, nil, nil, errors.New("connection refused"))
			},
			expectedErr: errors.New("can't fetch " + url + ": connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, payer, client := NewMock(t)
			tt.prepareMock(payer, client)

			summary, err := service.Import(context.Background(), url)

			switch {
			case tt.expectedErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, summary)
			case errors.Is(tt.expectedErr, ErrUnexpectedStatus):
				assert.ErrorIs(t, err, ErrUnexpectedStatus)
			default:
				assert.EqualError(t, err, tt.expectedErr.Error())
			}
		})
	}
}

func TestImportReader_WithMockPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	payer := NewMockPayer(ctrl)
	pool := NewMockWorkerPoolI(ctrl)
	service := &Service{payer: payer, workerPool: pool, workers: 1}

	pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(errors.New("pool closed"))

	summary, err := service.ImportReader(context.Background(), strings.NewReader("1,10000\n"))

	assert.EqualError(t, err, "pool closed")
	assert.Equal(t, Summary{Failed: 1}, summary)
}

func TestImportReader_MalformedLineNumbersCountComments(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	service, payer, _ := NewMock(t)
	payer.EXPECT().Pay(gomock.Any(), int64(10_000), int64(1)).DoAndReturn(pay)

	input := "# exported 2024-05-01\n" +
		"# customer_id,amount\n" +
		"1,10000\n" +
		"1,ten\n" +
		"# trailing note\n" +
		"1,2,3\n"

	summary, err := service.ImportReader(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1, Failed: 2, Points: 1_000}, summary)

	var lines []int64
	for _, entry := range logs.FilterMessage("skipping malformed line").All() {
		lines = append(lines, entry.ContextMap()["line"].(int64))
	}
	assert.ElementsMatch(t, []int64{4, 6}, lines)
}

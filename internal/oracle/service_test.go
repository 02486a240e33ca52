package oracle

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"strconv"
	"testing"
	"time"

	"priceoracle/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockPriceSource struct{ mock.Mock }

func (m *MockPriceSource) FetchUSDPrice(ctx context.Context, token string) (float64, error) {
	args := m.Called(ctx, token)
	price, _ := args.Get(0).(float64)
	return price, args.Error(1)
}

type MockSigner struct{ mock.Mock }

func (m *MockSigner) Sign(digest [32]byte) ([]byte, error) {
	args := m.Called(digest)
	sig, _ := args.Get(0).([]byte)
	return sig, args.Error(1)
}

func (m *MockSigner) PublicKey() ed25519.PublicKey {
	args := m.Called()
	pub, _ := args.Get(0).(ed25519.PublicKey)
	return pub
}

var fixedTime = time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

// --- SignPrice ---

func TestService_SignPrice_Success(t *testing.T) {
	source := new(MockPriceSource)
	signer := NewEd25519Signer(testKey(t))
	svc := NewService(source, signer, clockwork.NewFakeClockAt(fixedTime), time.Second)

	source.On("FetchUSDPrice", mock.Anything, "solana").Return(150.123456, nil).Once()

	got, err := svc.SignPrice(context.Background(), "solana")

	require.NoError(t, err)
	require.Equal(t, "150123456", got.Price)
	require.Equal(t, strconv.FormatInt(fixedTime.Unix(), 10), got.Timestamp)
	require.Len(t, got.Signature, 128)
	require.Regexp(t, "^[0-9a-f]{128}$", got.Signature)

	sig, err := hex.DecodeString(got.Signature)
	require.NoError(t, err)
	digest := Hash(Encode(150123456, fixedTime.Unix()))
	require.True(t, ed25519.Verify(signer.PublicKey(), digest[:], sig))

	// re-signing the same pair with the same key is byte-identical
	again, err := signer.Sign(digest)
	require.NoError(t, err)
	require.Equal(t, got.Signature, hex.EncodeToString(again))
	source.AssertExpectations(t)
}

func TestService_SignPrice_TimestampReadAfterFetch(t *testing.T) {
	source := new(MockPriceSource)
	clock := clockwork.NewFakeClockAt(fixedTime)
	svc := NewService(source, NewEd25519Signer(testKey(t)), clock, time.Second)

	source.On("FetchUSDPrice", mock.Anything, "solana").
		Return(1.0, nil).
		Run(func(mock.Arguments) { clock.Advance(3 * time.Second) }).
		Once()

	got, err := svc.SignPrice(context.Background(), "solana")

	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(fixedTime.Add(3*time.Second).Unix(), 10), got.Timestamp)
}

func TestService_SignPrice_FetchGetsDeadline(t *testing.T) {
	source := new(MockPriceSource)
	svc := NewService(source, NewEd25519Signer(testKey(t)), clockwork.NewFakeClockAt(fixedTime), 250*time.Millisecond)

	source.On("FetchUSDPrice", mock.Anything, "solana").
		Return(1.0, nil).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, ok := ctx.Deadline()
			require.True(t, ok)
		}).
		Once()

	_, err := svc.SignPrice(context.Background(), "solana")
	require.NoError(t, err)
}

func TestService_SignPrice_PropagatesSourceErrors(t *testing.T) {
	cases := []struct {
		name    string
		srcErr  error
		wantErr error
	}{
		{name: "not found", srcErr: errors.Join(domain.ErrPriceNotFound, errors.New("usd price for token \"x\" not found")), wantErr: domain.ErrPriceNotFound},
		{name: "upstream", srcErr: domain.ErrUpstreamFetchFailed, wantErr: domain.ErrUpstreamFetchFailed},
		{name: "unclassified", srcErr: errors.New("connection reset"), wantErr: domain.ErrUpstreamFetchFailed},
		{name: "deadline", srcErr: context.DeadlineExceeded, wantErr: domain.ErrUpstreamFetchFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := new(MockPriceSource)
			signer := new(MockSigner)
			svc := NewService(source, signer, clockwork.NewFakeClockAt(fixedTime), time.Second)

			source.On("FetchUSDPrice", mock.Anything, "x").Return(0.0, tc.srcErr).Once()

			_, err := svc.SignPrice(context.Background(), "x")

			require.ErrorIs(t, err, tc.wantErr)
			signer.AssertNotCalled(t, "Sign", mock.Anything)
			source.AssertExpectations(t)
		})
	}
}

func TestService_SignPrice_InvalidPrice(t *testing.T) {
	source := new(MockPriceSource)
	signer := new(MockSigner)
	svc := NewService(source, signer, clockwork.NewFakeClockAt(fixedTime), time.Second)

	source.On("FetchUSDPrice", mock.Anything, "solana").Return(-1.5, nil).Once()

	_, err := svc.SignPrice(context.Background(), "solana")

	require.ErrorIs(t, err, domain.ErrInvalidPrice)
	signer.AssertNotCalled(t, "Sign", mock.Anything)
}

func TestService_SignPrice_SignerError(t *testing.T) {
	source := new(MockPriceSource)
	signer := new(MockSigner)
	svc := NewService(source, signer, clockwork.NewFakeClockAt(fixedTime), time.Second)

	source.On("FetchUSDPrice", mock.Anything, "solana").Return(2.0, nil).Once()
	wantDigest := Hash(Encode(2_000_000, fixedTime.Unix()))
	signer.On("Sign", wantDigest).Return(nil, errors.New("hsm offline")).Once()

	_, err := svc.SignPrice(context.Background(), "solana")

	require.ErrorIs(t, err, domain.ErrSigningFailed)
	require.ErrorContains(t, err, "hsm offline")
	signer.AssertExpectations(t)
}

func TestService_PublicKeyInfo(t *testing.T) {
	k := testKey(t)
	svc := NewService(new(MockPriceSource), NewEd25519Signer(k), nil, 0)

	info := svc.PublicKeyInfo()

	require.Equal(t, hex.EncodeToString(k.PublicKey()), info.PublicKey)
	require.Equal(t, "ed25519", info.Scheme)
	require.Equal(t, "keccak256", info.Hash)
	require.Equal(t, "1000000", info.Scale)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(new(MockPriceSource), new(MockSigner), nil, 0)
	require.NotNil(t, svc.clock)
	require.Equal(t, defaultFetchTimeout, svc.fetchTimeout)
}

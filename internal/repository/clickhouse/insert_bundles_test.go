package clickhouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/smartcoin-wallet/internal/model"
)

func TestRepository_InsertBundles(t *testing.T) {
	ctx := context.Background()
	bundle := model.BundleRecord{
		Network:    model.Testnet,
		BundleID:   model.Bytes32{1},
		Kind:       "mint",
		CoinSpends: 4,
		Inputs:     3,
		Change:     2,
		CreatedAt:  time.Unix(1700000000, 0).UTC(),
	}
	appendArgs := []interface{}{
		string(bundle.Network),
		bundle.BundleID.String(),
		bundle.Kind,
		bundle.CoinSpends,
		bundle.Inputs,
		bundle.Change,
		bundle.CreatedAt,
	}

	tests := []struct {
		name    string
		bundles []model.BundleRecord
		setup   func(t *testing.T) *Repository
		wantErr error
	}{
		{
			name:    "empty input still records metrics",
			bundles: nil,
			setup: func(t *testing.T) *Repository {
				ctrl := gomock.NewController(t)
				mockMetrics := NewMockMetrics(ctrl)
				mockMetrics.EXPECT().
					Observe("insert_bundles", model.Network(""), nil, gomock.AssignableToTypeOf(time.Time{}))

				return &Repository{conn: nil, metrics: mockMetrics}
			},
		},
		{
			name:    "prepare batch error",
			bundles: []model.BundleRecord{bundle},
			setup: func(t *testing.T) *Repository {
				ctrl := gomock.NewController(t)
				mockConn := NewMockConn(ctrl)
				mockMetrics := NewMockMetrics(ctrl)

				gomock.InOrder(
					mockConn.EXPECT().PrepareBatch(ctx, insertBundlesQuery).Return(nil, errPrepare),
					mockMetrics.EXPECT().Observe("insert_bundles", model.Testnet, errMatcher{errPrepare}, gomock.Any()),
				)
				return &Repository{conn: mockConn, metrics: mockMetrics}
			},
			wantErr: errPrepare,
		},
		{
			name:    "append error",
			bundles: []model.BundleRecord{bundle},
			setup: func(t *testing.T) *Repository {
				ctrl := gomock.NewController(t)
				mockConn := NewMockConn(ctrl)
				mockBatch := NewMockBatch(ctrl)
				mockMetrics := NewMockMetrics(ctrl)

				gomock.InOrder(
					mockConn.EXPECT().PrepareBatch(ctx, insertBundlesQuery).Return(mockBatch, nil),
					mockBatch.EXPECT().Append(appendArgs...).Return(errAppend),
					mockMetrics.EXPECT().Observe("insert_bundles", model.Testnet, errMatcher{errAppend}, gomock.Any()),
				)
				return &Repository{conn: mockConn, metrics: mockMetrics}
			},
			wantErr: errAppend,
		},
		{
			name:    "send error",
			bundles: []model.BundleRecord{bundle},
			setup: func(t *testing.T) *Repository {
				ctrl := gomock.NewController(t)
				mockConn := NewMockConn(ctrl)
				mockBatch := NewMockBatch(ctrl)
				mockMetrics := NewMockMetrics(ctrl)

				gomock.InOrder(
					mockConn.EXPECT().PrepareBatch(ctx, insertBundlesQuery).Return(mockBatch, nil),
					mockBatch.EXPECT().Append(appendArgs...).Return(nil),
					mockBatch.EXPECT().Send().Return(errSend),
					mockMetrics.EXPECT().Observe("insert_bundles", model.Testnet, errMatcher{errSend}, gomock.Any()),
				)
				return &Repository{conn: mockConn, metrics: mockMetrics}
			},
			wantErr: errSend,
		},
		{
			name:    "success",
			bundles: []model.BundleRecord{bundle},
			setup: func(t *testing.T) *Repository {
				ctrl := gomock.NewController(t)
				mockConn := NewMockConn(ctrl)
				mockBatch := NewMockBatch(ctrl)
				mockMetrics := NewMockMetrics(ctrl)

				gomock.InOrder(
					mockConn.EXPECT().PrepareBatch(ctx, insertBundlesQuery).Return(mockBatch, nil),
					mockBatch.EXPECT().Append(appendArgs...).Return(nil),
					mockBatch.EXPECT().Send().Return(nil),
					mockMetrics.EXPECT().Observe("insert_bundles", model.Testnet, nil, gomock.Any()),
				)
				return &Repository{conn: mockConn, metrics: mockMetrics}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.setup(t)
			err := repo.InsertBundles(ctx, tt.bundles)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("InsertBundles() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

var (
	errPrepare = errors.New("prepare failed")
	errAppend  = errors.New("append failed")
	errSend    = errors.New("send failed")
	errQuery   = errors.New("query failed")
)

// errMatcher matches an error wrapping target.
type errMatcher struct {
	target error
}

func (m errMatcher) Matches(x interface{}) bool {
	err, ok := x.(error)
	return ok && errors.Is(err, m.target)
}

func (m errMatcher) String() string {
	return "error wrapping " + m.target.Error()
}

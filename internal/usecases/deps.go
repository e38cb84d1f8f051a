package usecases

import (
	"context"
	"mime/multipart"

	"sahaaya.backend/internal/domain/entities"
	"sahaaya.backend/internal/infrastructure/email"
	"sahaaya.backend/internal/infrastructure/gateway"
	"sahaaya.backend/internal/infrastructure/storage"
)

// PaymentGateway is the slice of the gateway client the usecases need.
type PaymentGateway interface {
	KeyID() string
	Secret() string
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*gateway.Order, error)
	CreateSubscription(ctx context.Context, amount int64, currency string, frequency entities.SubscriptionFrequency) (*gateway.Subscription, error)
	CancelSubscription(ctx context.Context, gatewaySubscriptionID string) error
	CreateRefund(ctx context.Context, paymentID string, amount int64) (*gateway.Refund, error)
}

// MailDispatcher accepts messages fire-and-forget; a mail failure never
// fails the request that triggered it.
type MailDispatcher interface {
	Dispatch(ctx context.Context, msg email.Message)
}

// AssetStore uploads and deletes binary assets.
type AssetStore interface {
	Upload(ctx context.Context, file multipart.File) (*storage.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

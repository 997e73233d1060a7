// Package midtrans клиент платёжного шлюза Midtrans Snap
//
// Оборачивает официальный SDK в узкий интерфейс "создать платёжную сессию":
// остальной код сервиса ничего не знает про протокол Snap
package midtrans

import (
	"context"

	midtranssdk "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Midtrans Snap
type Client struct {
	snap snap.Client
	log  Logger
}

// NewClient создает новый экземпляр клиента Midtrans
// production=false использует sandbox-окружение
func NewClient(serverKey string, production bool, log Logger) *Client {
	env := midtranssdk.Sandbox
	if production {
		env = midtranssdk.Production
	}

	var c snap.Client
	c.New(serverKey, env)

	return &Client{snap: c, log: log}
}

// CreateSession создает платёжную сессию Snap
//
// SDK Midtrans не принимает context — ctx оставлен в сигнатуре, чтобы
// контракт клиента не менялся при смене транспорта
func (c *Client) CreateSession(_ context.Context, req *SessionRequest) (*Session, error) {
	c.log.Info("Midtrans: creating snap session reference=%s amount=%d", req.Reference, req.Amount)

	snapReq := &snap.Request{
		TransactionDetails: midtranssdk.TransactionDetails{
			OrderID:  req.Reference,
			GrossAmt: req.Amount,
		},
		Items: &[]midtranssdk.ItemDetails{
			{
				ID:    req.Reference,
				Name:  req.CourtName,
				Price: req.Amount,
				Qty:   1,
			},
		},
		CustomerDetail: &midtranssdk.CustomerDetails{
			FName: req.Customer.FirstName,
			Email: req.Customer.Email,
		},
		Callbacks: &snap.Callbacks{
			Finish: req.RedirectURL,
		},
	}

	resp, snapErr := c.snap.CreateTransaction(snapReq)
	if snapErr != nil {
		c.log.Error("Midtrans: snap session failed reference=%s: %v", req.Reference, snapErr.GetMessage())
		return nil, &GatewayError{
			StatusCode: snapErr.GetStatusCode(),
			Message:    snapErr.GetMessage(),
		}
	}

	if resp.Token == "" {
		c.log.Error("Midtrans: snap session without token reference=%s", req.Reference)
		return nil, ErrEmptyToken
	}

	c.log.Info("Midtrans: snap session created reference=%s", req.Reference)
	return &Session{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

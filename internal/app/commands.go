package app

import (
	"context"
	"encoding/json"
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/xenking/snapbuy-client/internal/client"
	"github.com/xenking/snapbuy-client/internal/domain/delivery"
	"github.com/xenking/snapbuy-client/internal/domain/order"
	"github.com/xenking/snapbuy-client/internal/domain/product"
	"github.com/xenking/snapbuy-client/internal/session"
)

// commandEnv carries the wired dependencies into command handlers.
type commandEnv struct {
	cfg        *Config
	api        *client.Client
	sessions   *session.Manager
	orders     *order.Service
	deliveries *delivery.Service
}

// restore brings back a persisted session when one exists. A missing or
// rejected session degrades to browsing logged out instead of failing.
func (e *commandEnv) restore(ctx context.Context, lg *zap.Logger) *session.Session {
	sess, err := e.sessions.Restore(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			lg.Warn("Stored session rejected, continuing logged out", zap.Error(err))
		}
		return nil
	}
	lg.Info("Session restored",
		zap.String("username", sess.Customer.Username),
		zap.String("status", string(sess.Status())),
	)
	return sess
}

func (e *commandEnv) showStore(ctx context.Context, lg *zap.Logger) error {
	s, err := e.api.Store(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch store")
	}
	lg.Info("Store",
		zap.String("name", s.Name),
		zap.String("phone", s.Phone),
		zap.String("email", s.Email),
	)

	vars, err := e.api.Vars(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch vars")
	}
	lg.Info("Store variables", zap.Int("count", len(vars)))
	return nil
}

func (e *commandEnv) listProducts(ctx context.Context, lg *zap.Logger) error {
	sess := e.restore(ctx, lg)

	products, err := e.api.Products(ctx, client.PageQuery{
		Limit:   e.cfg.Limit,
		StartAt: e.cfg.StartAt,
	})
	if err != nil {
		return errors.Wrap(err, "fetch products")
	}

	for i := range products {
		p := &products[i]
		quote := product.Resolve(p, e.cfg.Quantity, sess.Status())
		fields := []zap.Field{
			zap.String("id", p.ID),
			zap.String("name", p.Name),
			zap.String("unit_price", quote.UnitPrice.String()),
		}
		if quote.SavingsPercent.IsPositive() {
			fields = append(fields, zap.String("savings_percent", quote.SavingsPercent.StringFixed(1)))
		}
		lg.Info("Product", fields...)
	}
	lg.Info("Products listed", zap.Int("count", len(products)))
	return nil
}

func (e *commandEnv) showProduct(ctx context.Context, lg *zap.Logger) error {
	if e.cfg.ProductID == "" {
		return errors.New("product id is required: set SNAPBUY_PRODUCT_ID")
	}
	sess := e.restore(ctx, lg)

	p, err := e.api.Product(ctx, e.cfg.ProductID)
	if err != nil {
		return errors.Wrapf(err, "fetch product %s", e.cfg.ProductID)
	}

	quote := product.Resolve(p, e.cfg.Quantity, sess.Status())
	lg.Info("Product",
		zap.String("id", p.ID),
		zap.String("name", p.Name),
		zap.String("type", string(p.Type)),
		zap.Int("quantity", e.cfg.Quantity),
		zap.String("unit_price", quote.UnitPrice.String()),
		zap.String("savings_percent", quote.SavingsPercent.StringFixed(1)),
	)
	return nil
}

func (e *commandEnv) showDelivery(ctx context.Context, lg *zap.Logger) error {
	opts, err := e.api.DeliveryOptions(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch delivery options")
	}

	prices, err := e.deliveries.PricesByOption(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "fetch delivery prices")
	}

	for _, opt := range opts {
		lg.Info("Delivery option",
			zap.String("id", opt.ID),
			zap.String("name", opt.Name),
			zap.Int("destinations", len(prices[opt.ID])),
		)
	}
	return nil
}

func (e *commandEnv) login(ctx context.Context, lg *zap.Logger) error {
	if e.cfg.Username == "" || e.cfg.Password == "" {
		return errors.New("username and password are required")
	}

	sess, err := e.sessions.Login(ctx, e.cfg.Username, e.cfg.Password)
	if err != nil {
		return err
	}
	lg.Info("Logged in",
		zap.String("username", sess.Customer.Username),
		zap.String("status", string(sess.Status())),
	)
	return nil
}

func (e *commandEnv) showProfile(ctx context.Context, lg *zap.Logger) error {
	sess, err := e.sessions.Restore(ctx)
	if err != nil {
		return err
	}
	lg.Info("Profile",
		zap.String("username", sess.Customer.Username),
		zap.String("firstname", sess.Customer.Firstname),
		zap.String("lastname", sess.Customer.Lastname),
		zap.String("status", string(sess.Status())),
	)
	return nil
}

func (e *commandEnv) listOrders(ctx context.Context, lg *zap.Logger) error {
	sess, err := e.sessions.Restore(ctx)
	if err != nil {
		return err
	}

	orders, err := e.api.Orders(ctx, sess.Token)
	if err != nil {
		return errors.Wrap(err, "fetch orders")
	}
	for _, o := range orders {
		lg.Info("Order",
			zap.String("id", o.ID),
			zap.String("status", string(o.Status)),
			zap.String("total_price", o.TotalPrice.String()),
		)
	}
	lg.Info("Orders listed", zap.Int("count", len(orders)))
	return nil
}

func (e *commandEnv) showOrder(ctx context.Context, lg *zap.Logger) error {
	if e.cfg.OrderID == "" {
		return errors.New("order id is required: set SNAPBUY_ORDER_ID")
	}
	sess, err := e.sessions.Restore(ctx)
	if err != nil {
		return err
	}

	o, err := e.api.Order(ctx, e.cfg.OrderID, sess.Token)
	if err != nil {
		return errors.Wrapf(err, "fetch order %s", e.cfg.OrderID)
	}
	lg.Info("Order",
		zap.String("id", o.ID),
		zap.String("status", string(o.Status)),
		zap.String("total_price", o.TotalPrice.String()),
		zap.Int("products", len(o.Products)),
		zap.Int("packs", len(o.Packs)),
	)
	return nil
}

func (e *commandEnv) submitOrder(ctx context.Context, lg *zap.Logger) error {
	if e.cfg.DraftFile == "" {
		return errors.New("draft file is required: set SNAPBUY_DRAFT_FILE")
	}
	sess := e.restore(ctx, lg)

	raw, err := os.ReadFile(e.cfg.DraftFile)
	if err != nil {
		return errors.Wrap(err, "read draft file")
	}
	var draft order.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return errors.Wrap(err, "decode draft file")
	}

	var token string
	if sess != nil {
		token = sess.Token
	}
	o, err := e.orders.Submit(ctx, draft, token)
	if err != nil {
		return err
	}
	lg.Info("Order placed",
		zap.String("id", o.ID),
		zap.String("status", string(o.Status)),
		zap.String("total_price", o.TotalPrice.String()),
	)
	return nil
}

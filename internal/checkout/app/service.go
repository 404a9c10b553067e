package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/comics-storefront/internal/checkout/domain"
	"github.com/dwikikusuma/comics-storefront/internal/pricing"
	"github.com/dwikikusuma/comics-storefront/pkg/apperr"
)

var ErrEmptyCart = fmt.Errorf("%w: cart is empty", apperr.ErrInvalidInput)

type Service struct {
	Cart    CartReader
	Library LibraryGranter
	tokens  TokenSource
	log     *slog.Logger

	maxConcurrent int
}

func NewService(cart CartReader, library LibraryGranter, tokens TokenSource, maxConcurrent int, log *slog.Logger) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		Cart:          cart,
		Library:       library,
		tokens:        tokens,
		log:           log,
		maxConcurrent: maxConcurrent,
	}
}

// Quote snapshots the mirrored cart. Prices are the server's unit prices.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items := s.Cart.Lines(ctx)
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, 0, len(items))
	total := decimal.Zero
	count := 0
	for _, it := range items {
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines = append(lines, domain.QuoteLine{
			CartItemID:   it.ID,
			ComicID:      it.ComicID,
			Title:        it.Title,
			PurchaseType: it.PurchaseType,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			LineTotal:    lineTotal,
		})
		total = total.Add(lineTotal)
		count += it.Quantity
	}

	return domain.Quote{Lines: lines, TotalItems: count, Total: total}, nil
}

// PlaceOrder grants every digital line to the library, then empties the cart.
// No payment is taken.
func (s *Service) PlaceOrder(ctx context.Context) (domain.Receipt, error) {
	if s.tokens.Token() == "" {
		return domain.Receipt{}, apperr.ErrUnauthenticated
	}

	quote, err := s.Quote(ctx)
	if err != nil {
		return domain.Receipt{}, err
	}

	var comicIDs []string
	seen := make(map[string]struct{})
	for _, l := range quote.Lines {
		if l.PurchaseType != pricing.Digital {
			continue
		}
		if _, ok := seen[l.ComicID]; ok {
			continue
		}
		seen[l.ComicID] = struct{}{}
		comicIDs = append(comicIDs, l.ComicID)
	}

	granted := make([]bool, len(comicIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range comicIDs {
		g.Go(func() error {
			id := comicIDs[idx]
			if err := s.Library.Grant(gctx, id); err != nil {
				// one failed grant must not block the rest of the order
				s.log.Warn("library grant failed", slog.String("comic_id", id), slog.Any("err", err))
				return nil
			}
			granted[idx] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Receipt{}, err
	}

	receipt := domain.Receipt{Quote: quote, Granted: make([]string, 0, len(comicIDs))}
	for idx, ok := range granted {
		if ok {
			receipt.Granted = append(receipt.Granted, comicIDs[idx])
		}
	}

	s.Cart.Clear(ctx)
	s.log.Info("order placed",
		slog.Int("lines", len(quote.Lines)),
		slog.String("total", quote.Total.StringFixed(2)),
		slog.Int("granted", len(receipt.Granted)),
	)
	return receipt, nil
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
	"github.com/pacoca/pacoca-pos/internal/domain/repository"
	"github.com/pacoca/pacoca-pos/internal/domain/stats"
	"github.com/pacoca/pacoca-pos/pkg/money"
)

// HistoryFilter filtros opcionais do histórico. Data é casada por prefixo
// sobre a data formatada dd/mm/aaaa, como o campo de busca da tela original.
type HistoryFilter struct {
	Date          string
	PaymentMethod string
}

// HistoryUseCase monta o histórico de vendas com status de recência e o
// resumo (contagem, total, vendas de hoje, participação por forma de
// pagamento). O backend só devolve a lista crua; todo o derivado é daqui.
type HistoryUseCase struct {
	repo repository.SaleRepository
	now  func() time.Time
}

// NewHistoryUseCase constrói o caso de uso.
func NewHistoryUseCase(repo repository.SaleRepository) *HistoryUseCase {
	return NewHistoryUseCaseAt(repo, time.Now)
}

// NewHistoryUseCaseAt permite fixar o relógio usado no cálculo de recência.
func NewHistoryUseCaseAt(repo repository.SaleRepository, now func() time.Time) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, now: now}
}

// List busca o histórico, aplica os filtros e calcula o resumo sobre o
// conjunto filtrado.
func (uc *HistoryUseCase) List(ctx context.Context, filter HistoryFilter) (*dto.HistoryResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	sales := make([]dto.SaleResponse, 0, len(all))
	for _, s := range all {
		if !matches(s, filter) {
			continue
		}
		sales = append(sales, dto.SaleResponse{
			ID:            s.ID,
			Date:          s.Date,
			CustomerID:    s.Customer.ID,
			CustomerName:  s.Customer.Name,
			ProductID:     s.Product.ID,
			ProductName:   s.Product.Name,
			Quantity:      s.Quantity,
			UnitPrice:     s.UnitPrice,
			Total:         s.Total,
			PaymentMethod: s.PaymentMethod,
			Status:        stats.RecencyBucket(s.Date, now),
		})
	}

	return &dto.HistoryResponse{
		Sales:   sales,
		Summary: summarize(sales),
	}, nil
}

func matches(s *entity.Sale, f HistoryFilter) bool {
	if f.PaymentMethod != "" && s.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.Date != "" && !strings.HasPrefix(s.Date.Format("02/01/2006"), f.Date) {
		return false
	}
	return true
}

// summarize agrega o conjunto já filtrado. A participação por forma de
// pagamento segue a ordem de primeira aparição no histórico.
func summarize(sales []dto.SaleResponse) dto.HistorySummaryResponse {
	total := decimal.Zero
	today := 0
	byMethod := map[string]decimal.Decimal{}
	order := make([]string, 0, 4)

	for _, s := range sales {
		total = total.Add(s.Total)
		if s.Status == stats.BucketHoje {
			today++
		}
		if _, seen := byMethod[s.PaymentMethod]; !seen {
			order = append(order, s.PaymentMethod)
		}
		byMethod[s.PaymentMethod] = byMethod[s.PaymentMethod].Add(s.Total)
	}

	items := make([]stats.Item, 0, len(order))
	for _, m := range order {
		items = append(items, stats.Item{Label: m, Value: byMethod[m]})
	}
	shares := make([]dto.PaymentShareResponse, 0, len(items))
	for _, sh := range stats.RevenueShare(items) {
		shares = append(shares, dto.PaymentShareResponse{
			PaymentMethod: sh.Label,
			Value:         sh.Value,
			Percent:       sh.Percent,
		})
	}

	return dto.HistorySummaryResponse{
		Count:           len(sales),
		TotalValue:      total,
		TotalFormatted:  money.FormatBRL(total),
		TodayCount:      today,
		ByPaymentMethod: shares,
	}
}

package pdf

import (
	"fmt"
	"strconv"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/service"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// EstimateRenderer превращает заказ и пересчитанную смету в PDF документ
type EstimateRenderer interface {
	RenderEstimate(order *ds.PrintOrder, estimate *service.Estimate) ([]byte, error)
}

// MarotoRenderer - реализация на maroto
type MarotoRenderer struct{}

func NewMarotoRenderer() *MarotoRenderer {
	return &MarotoRenderer{}
}

func (r *MarotoRenderer) RenderEstimate(order *ds.PrintOrder, estimate *service.Estimate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(12, "ESTIMATE", props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRow(6, text.NewCol(12, "Issue date: "+time.Now().Format("2006-01-02"), props.Text{
		Size:  9,
		Align: align.Right,
	}))
	m.AddRow(6, text.NewCol(12, "Order: "+order.ID, props.Text{
		Size:  9,
		Align: align.Right,
	}))

	m.AddRow(4, line.NewCol(12))

	m.AddRow(8, text.NewCol(12, order.ClinicName, props.Text{Size: 12, Style: fontstyle.Bold}))
	m.AddRow(6, text.NewCol(12, order.Email, props.Text{Size: 9}))

	m.AddRow(4, line.NewCol(12))

	m.AddRow(8,
		text.NewCol(6, "Item", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(3, "Quantity", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(3, "Amount", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(7,
		text.NewCol(6, productLabel(order), props.Text{Size: 10}),
		text.NewCol(3, quantityLabel(order), props.Text{Size: 10, Align: align.Right}),
		text.NewCol(3, yen(estimate.Breakdown.BasePrice), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(7,
		text.NewCol(6, "Design fee", props.Text{Size: 10}),
		text.NewCol(3, "", props.Text{}),
		text.NewCol(3, yen(estimate.Breakdown.DesignFee), props.Text{Size: 10, Align: align.Right}),
	)

	m.AddRow(4, line.NewCol(12))

	m.AddRow(9,
		text.NewCol(9, "Total", props.Text{Size: 12, Style: fontstyle.Bold}),
		text.NewCol(3, yen(estimate.Breakdown.Total), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Delivery: %d days", estimate.DeliveryDays), props.Text{Size: 9}))

	if order.Notes != nil && *order.Notes != "" {
		m.AddRow(6, text.NewCol(12, "Notes: "+*order.Notes, props.Text{Size: 9}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate estimate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func productLabel(order *ds.PrintOrder) string {
	if order.ProductType == nil {
		return "-"
	}
	return *order.ProductType
}

func quantityLabel(order *ds.PrintOrder) string {
	if order.Quantity == nil {
		return "-"
	}
	return strconv.Itoa(*order.Quantity)
}

func yen(v int) string {
	return "JPY " + strconv.Itoa(v)
}

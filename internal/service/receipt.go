// internal/service/receipt.go
package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/w1df33r/sunmi-esc-pos-printer-lan/internal/model"
)

// buildReceiptDocument translates a structured receipt into a renderable
// document. Item rows use a three-column layout: name, quantity times
// unit price, line total.
func buildReceiptDocument(req *model.ReceiptRequest, defaultWidth int) (*model.PrintRequest, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("receipt requires at least one item")
	}

	width := req.DeviceWidth
	if width == 0 {
		width = defaultWidth
	}
	if width != 384 && width != 576 {
		width = 384
	}

	doc := &model.PrintRequest{
		DeviceWidth: width,
		Cut:         true,
		OpenDrawer:  req.OpenDrawer,
	}

	doc.Elements = append(doc.Elements, model.DocumentElement{
		Type:       "text",
		Text:       req.StoreName,
		Align:      "center",
		Bold:       true,
		CharWidth:  2,
		CharHeight: 2,
	})
	for _, line := range req.HeaderLines {
		doc.Elements = append(doc.Elements, model.DocumentElement{
			Type:  "text",
			Text:  line,
			Align: "center",
		})
	}
	doc.Elements = append(doc.Elements, separator(width))

	// Half the line for the name, a quarter each for quantity and total.
	nameWidth := width / 2
	qtyWidth := width / 4
	itemColumns := []model.ColumnSpec{
		{Width: nameWidth, Align: "left"},
		{Width: qtyWidth, Align: "right"},
		{Width: 0, Align: "right"},
	}

	total := decimal.Zero
	for _, item := range req.Items {
		lineTotal := item.Total()
		total = total.Add(lineTotal)

		doc.Elements = append(doc.Elements, model.DocumentElement{
			Type:    "columns",
			Columns: itemColumns,
			Cells: []string{
				item.Name,
				fmt.Sprintf("%s x %s", item.Quantity.String(), item.UnitPrice.StringFixed(2)),
				lineTotal.StringFixed(2),
			},
		})
	}

	doc.Elements = append(doc.Elements, separator(width))
	doc.Elements = append(doc.Elements, model.DocumentElement{
		Type: "columns",
		Columns: []model.ColumnSpec{
			{Width: width / 2, Align: "left"},
			{Width: 0, Align: "right"},
		},
		Cells: []string{"TOTAL", total.StringFixed(2)},
	})

	for _, line := range req.FooterLines {
		doc.Elements = append(doc.Elements, model.DocumentElement{
			Type:  "text",
			Text:  line,
			Align: "center",
		})
	}

	if req.BarcodeData != "" {
		doc.Elements = append(doc.Elements, model.DocumentElement{
			Type:      "barcode",
			Symbology: "code128",
			Data:      req.BarcodeData,
			HRI:       2,
		})
	}
	if req.QRData != "" {
		doc.Elements = append(doc.Elements, model.DocumentElement{
			Type:    "qrcode",
			Data:    req.QRData,
			Module:  6,
			ECLevel: 1,
		})
	}

	return doc, nil
}

// separator renders a full-width dashed rule. Glyph cells are 12 dots
// wide for ASCII, so the dash count follows from the device width.
func separator(width int) model.DocumentElement {
	dashes := width / 12
	line := make([]byte, dashes)
	for i := range line {
		line[i] = '-'
	}
	return model.DocumentElement{
		Type: "text",
		Text: string(line),
	}
}
